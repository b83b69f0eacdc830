// Package cache provides the optional result cache. Plan and assessment
// responses are pure functions of their inputs, so entries never go stale;
// the cache only trades memory for repeated solver runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/amitrb/finplan/internal/common"
	"github.com/amitrb/finplan/internal/interfaces"
)

// Key derives a stable cache key from a request record. The prefix keeps
// retirement and insurance requests in separate namespaces.
func Key(prefix string, request interface{}) (string, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to build cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:16]), nil
}

// New builds a cache from configuration: redis when an address is set,
// otherwise an in-process map. Returns nil when caching is disabled.
func New(cfg common.CacheConfig, logger *common.Logger) interfaces.Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Address != "" {
		logger.Info().Str("address", cfg.Address).Msg("Using redis result cache")
		return NewRedisCache(cfg.Address, cfg.GetTTL())
	}
	logger.Info().Msg("Using in-memory result cache")
	return NewMemoryCache()
}
