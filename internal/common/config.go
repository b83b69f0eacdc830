// Package common provides shared utilities for finplan
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for finplan
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	Logging     LoggingConfig   `toml:"logging"`
	Cache       CacheConfig     `toml:"cache"`
	RateLimit   RateLimitConfig `toml:"rate_limit"`
	Planner     PlannerConfig   `toml:"planner"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// CacheConfig holds result cache configuration. Plans are pure functions of
// their inputs, so cached entries never go stale; TTL only bounds memory.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Address string `toml:"address"` // redis address; empty = in-memory cache
	TTL     string `toml:"ttl"`
}

// GetTTL parses and returns the cache entry TTL
func (c *CacheConfig) GetTTL() time.Duration {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 1 * time.Hour
	}
	return d
}

// RateLimitConfig holds per-client request rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// PlannerConfig holds the economic assumptions used by the planning engines.
// Values of zero fall back to the published defaults at load time.
type PlannerConfig struct {
	Inflation            float64 `toml:"inflation"`
	PostRetirementReturn float64 `toml:"post_retirement_return"`
	SIPStepUp            float64 `toml:"sip_stepup"`
	LifeExpectancy       int     `toml:"life_expectancy"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     "1h",
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 20,
			Burst:             40,
		},
		Planner: PlannerConfig{
			Inflation:            0.06,
			PostRetirementReturn: 0.05,
			SIPStepUp:            0.15,
			LifeExpectancy:       90,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := validatePlanner(&config.Planner); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FINPLAN_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("FINPLAN_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("FINPLAN_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("FINPLAN_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if addr := os.Getenv("FINPLAN_CACHE_ADDRESS"); addr != "" {
		config.Cache.Address = addr
		config.Cache.Enabled = true
	}

	if v := os.Getenv("FINPLAN_CACHE_ENABLED"); v != "" {
		config.Cache.Enabled = v == "true" || v == "1"
	}
}

// validatePlanner rejects assumption values that would make the simulations
// meaningless rather than letting them surface as solver garbage.
func validatePlanner(p *PlannerConfig) error {
	if p.Inflation < 0 || p.Inflation > 1 {
		return fmt.Errorf("planner.inflation must be a fraction in [0,1], got %v", p.Inflation)
	}
	if p.PostRetirementReturn < 0 || p.PostRetirementReturn > 1 {
		return fmt.Errorf("planner.post_retirement_return must be a fraction in [0,1], got %v", p.PostRetirementReturn)
	}
	if p.SIPStepUp < 0 || p.SIPStepUp > 1 {
		return fmt.Errorf("planner.sip_stepup must be a fraction in [0,1], got %v", p.SIPStepUp)
	}
	if p.LifeExpectancy < 50 || p.LifeExpectancy > 120 {
		return fmt.Errorf("planner.life_expectancy must be within [50,120], got %d", p.LifeExpectancy)
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
