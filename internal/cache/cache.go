package cache

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/internal/entity"
	"github.com/nftshinessy/montoks/pkg/metrics"
)

// TokenCache is a bounded LRU store of assembled token records. Entries
// expire a fixed interval after insertion regardless of access pattern.
// Records are stored and returned by value, a cached record is never
// mutated after insertion.
type TokenCache struct {
	lru    *expirable.LRU[string, entity.TokenRecord]
	logger *zap.Logger
}

// NewTokenCache creates a TokenCache holding at most maxEntries records
// for at most ttl each.
func NewTokenCache(maxEntries int, ttl time.Duration, logger *zap.Logger) *TokenCache {
	return &TokenCache{
		lru:    expirable.NewLRU[string, entity.TokenRecord](maxEntries, nil, ttl),
		logger: logger.Named("TokenCache"),
	}
}

// Get returns the cached record for a contract address, if present and
// unexpired. Addresses are compared case-insensitively.
func (c *TokenCache) Get(address string) (entity.TokenRecord, bool) {
	record, ok := c.lru.Get(strings.ToLower(address))
	if ok {
		metrics.CacheHitsTotal.Inc()
		c.logger.Debug("Token cache hit", zap.String("address", address))
	} else {
		metrics.CacheMissesTotal.Inc()
	}
	return record, ok
}

// Set stores a record under its contract address.
func (c *TokenCache) Set(address string, record entity.TokenRecord) {
	c.lru.Add(strings.ToLower(address), record)
}

// Len returns the number of live entries.
func (c *TokenCache) Len() int {
	return c.lru.Len()
}
