package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"runway-analyzer/internal/engine"
)

// Validation bounds enforced at the request boundary. The engine itself does
// not guard these.
const (
	MinMonths = 6
	MaxMonths = 36
	MinRuns   = 1000
	MaxRuns   = 50000
)

// Config is the on-disk configuration shape (YAML) for the API server.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Defaults  DefaultsConfig  `yaml:"defaults"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port        string   `yaml:"port"`
	Mode        string   `yaml:"mode"` // "debug" or "release"
	CORSOrigins []string `yaml:"cors_origins"`
}

// DefaultsConfig overrides the engine defaults applied when a request omits
// months or monte_carlo_runs. Both must stay within the validation bounds.
type DefaultsConfig struct {
	Months         int `yaml:"months"`
	MonteCarloRuns int `yaml:"monte_carlo_runs"`
}

type CacheConfig struct {
	RedisAddr  string        `yaml:"redis_addr"` // empty = in-memory cache
	TTL        Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"` // in-memory cache bound
}

type RateLimitConfig struct {
	Capacity int           `yaml:"capacity"` // requests per window per client IP
	Window   Duration `yaml:"window"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "debug",
		},
		Defaults: DefaultsConfig{
			Months:         engine.DefaultMonths,
			MonteCarloRuns: engine.DefaultRuns,
		},
		Cache: CacheConfig{
			TTL:        Duration(10 * time.Minute),
			MaxEntries: 1024,
		},
		RateLimit: RateLimitConfig{
			Capacity: 30,
			Window:   Duration(time.Minute),
		},
	}
}

// Load reads a YAML config and validates it. Missing fields keep their
// defaults.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config over the defaults but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if c.Defaults.Months < MinMonths || c.Defaults.Months > MaxMonths {
		return fmt.Errorf("defaults.months must be in [%d, %d]", MinMonths, MaxMonths)
	}
	if c.Defaults.MonteCarloRuns < MinRuns || c.Defaults.MonteCarloRuns > MaxRuns {
		return fmt.Errorf("defaults.monte_carlo_runs must be in [%d, %d]", MinRuns, MaxRuns)
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl must be >= 0")
	}
	if c.RateLimit.Capacity <= 0 {
		return errors.New("rate_limit.capacity must be > 0")
	}
	if c.RateLimit.Window <= 0 {
		return errors.New("rate_limit.window must be > 0")
	}
	return nil
}
