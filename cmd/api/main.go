package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"runway-analyzer/internal/api/handlers"
	"runway-analyzer/internal/api/middleware"
	"runway-analyzer/internal/cache"
	"runway-analyzer/internal/config"
)

func main() {
	cfgPath := os.Getenv("RUNWAY_CONFIG")
	var cfg *config.Config
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("load config %s: %v", cfgPath, err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s", cfgPath)
	} else {
		cfg = config.Default()
	}

	// Env overrides the file for the port, matching container conventions.
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}

	if cfg.Server.Mode == "release" || os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := buildCache(cfg)

	router := gin.New()
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window.Std())
	defer limiter.Stop()

	analyzeHandler := handlers.NewAnalyzeHandler(cfg, store)
	scenariosHandler := handlers.NewScenariosHandler(cfg)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimit(limiter))
	{
		api.POST("/analyze", analyzeHandler.Analyze)
		api.POST("/scenarios", scenariosHandler.Scenarios)
		api.GET("/policy", handlers.Policy(cfg))
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildCache prefers redis when configured and reachable, and falls back to
// the bounded in-memory cache otherwise.
func buildCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.RedisAddr != "" {
		r := cache.NewRedisCache(cfg.Cache.RedisAddr)
		if err := r.Ping(); err != nil {
			log.Printf("redis %s unreachable (%v), using in-memory cache", cfg.Cache.RedisAddr, err)
		} else {
			log.Printf("Using redis cache at %s", cfg.Cache.RedisAddr)
			return r
		}
	}
	return cache.NewMemoryCache(cfg.Cache.MaxEntries)
}
