package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"findmygym/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const featuredCacheKey = "gyms:featured"

// RedisFeaturedCache keeps the featured list in Redis as JSON.
type RedisFeaturedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFeaturedCache(client *redis.Client, ttl time.Duration) *RedisFeaturedCache {
	return &RedisFeaturedCache{client: client, ttl: ttl}
}

func (c *RedisFeaturedCache) Get(ctx context.Context) ([]GymSummary, bool) {
	data, err := c.client.Get(ctx, featuredCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", featuredCacheKey).Msg("featured cache read failed")
		}
		metrics.CacheMiss("featured")
		return nil, false
	}

	var gyms []GymSummary
	if err := json.Unmarshal(data, &gyms); err != nil {
		log.Warn().Err(err).Str("key", featuredCacheKey).Msg("featured cache entry is corrupt")
		metrics.CacheMiss("featured")
		return nil, false
	}

	metrics.CacheHit("featured")
	return gyms, true
}

func (c *RedisFeaturedCache) Set(ctx context.Context, gyms []GymSummary) {
	data, err := json.Marshal(gyms)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, featuredCacheKey, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", featuredCacheKey).Msg("featured cache write failed")
	}
}

// Invalidate drops the cached list so the next read goes to the store.
func (c *RedisFeaturedCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, featuredCacheKey).Err()
}
