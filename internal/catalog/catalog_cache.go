package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKey = "catalog:items"

// CacheProvider fronts another provider with a Redis snapshot so repeated
// session starts do not hammer the upstream catalog. Cache trouble is never
// fatal: it falls through to the inner provider.
type CacheProvider struct {
	inner  Provider
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCacheProvider(inner Provider, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CacheProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheProvider{
		inner:  inner,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.Named("catalog.cache"),
	}
}

func (p *CacheProvider) Fetch(ctx context.Context) ([]Item, error) {
	raw, err := p.rdb.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var items []Item
		if err := json.Unmarshal(raw, &items); err == nil {
			p.logger.Debug("catalog cache hit", zap.Int("items", len(items)))
			return items, nil
		}
		// Poisoned entry; drop it and refetch.
		p.rdb.Del(ctx, cacheKey)
	} else if err != redis.Nil {
		p.logger.Warn("catalog cache read failed", zap.Error(err))
	}

	items, err := p.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(items); err == nil {
		if err := p.rdb.Set(ctx, cacheKey, raw, p.ttl).Err(); err != nil {
			p.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}

	return items, nil
}
