// Package cache implements the overview read-through cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/velvetcart/admin-api/internal/application/dto"
	"github.com/velvetcart/admin-api/internal/application/inventory"
	"github.com/velvetcart/admin-api/pkg/logger"
)

var _ inventory.OverviewCache = (*OverviewCache)(nil)

const overviewKey = "inventory:overview"

// OverviewCache caches the inventory overview envelope in Redis. A nil
// client makes every operation a no-op, so the API works without Redis
// and any Redis failure degrades to a recompute instead of an error.
type OverviewCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewOverviewCache builds the cache. Pass a nil client to disable caching.
func NewOverviewCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *OverviewCache {
	return &OverviewCache{client: client, ttl: ttl, log: log}
}

// Get returns the cached overview, or false on miss or any Redis error.
func (c *OverviewCache) Get(ctx context.Context) (*dto.OverviewResponse, bool) {
	if c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, overviewKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Msg("overview cache read failed")
		}
		return nil, false
	}
	var overview dto.OverviewResponse
	if err := json.Unmarshal(data, &overview); err != nil {
		c.log.Warn().Err(err).Msg("overview cache entry corrupt, dropping")
		_ = c.client.Del(ctx, overviewKey).Err()
		return nil, false
	}
	return &overview, true
}

// Set stores the overview with the configured TTL.
func (c *OverviewCache) Set(ctx context.Context, overview *dto.OverviewResponse) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(overview)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, overviewKey, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("overview cache write failed")
	}
}

// Invalidate drops the cached overview after a stock mutation.
func (c *OverviewCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, overviewKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("overview cache invalidation failed")
	}
}
