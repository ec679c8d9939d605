package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"runway-analyzer/internal/api/models"
	"runway-analyzer/internal/cache"
	"runway-analyzer/internal/config"
	"runway-analyzer/internal/engine"
)

// AnalyzeHandler runs full analyses. Responses for seeded (deterministic)
// requests are cached by request hash; unseeded runs are never cached.
type AnalyzeHandler struct {
	cfg   *config.Config
	cache cache.Cache
}

func NewAnalyzeHandler(cfg *config.Config, c cache.Cache) *AnalyzeHandler {
	return &AnalyzeHandler{cfg: cfg, cache: c}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	months := req.MonthsOr(h.cfg.Defaults.Months)
	runs := req.RunsOr(h.cfg.Defaults.MonteCarloRuns)

	var key string
	if req.Seed != 0 && h.cache != nil {
		key = cacheKey(req)
		if raw, ok := h.cache.Get(key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(raw))
			return
		}
	}

	analysis := engine.FullAnalysis(req.Inputs(), months, runs, engine.NewRNG(req.Seed))
	resp := models.NewAnalyzeResponse(analysis)

	if key != "" {
		if raw, err := json.Marshal(resp); err == nil {
			_ = h.cache.Set(key, string(raw), h.cfg.Cache.TTL.Std())
		}
	}

	c.JSON(http.StatusOK, resp)
}

func cacheKey(req models.AnalyzeRequest) string {
	raw, _ := json.Marshal(req)
	sum := sha256.Sum256(raw)
	return "analyze:" + hex.EncodeToString(sum[:])
}
