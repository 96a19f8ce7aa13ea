// Package filter_cache keeps the computed filter metadata warm between
// requests. Facet counts only drift as the scrapers run, so a short TTL is
// plenty and saves three aggregation passes per storefront page load.
package filter_cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/halfsy-shop/halfsy-backend/models"
	"github.com/redis/go-redis/v9"
)

const (
	TTL = 5 * time.Minute

	key = "halfsy:filter-metadata"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context) (*models.FilterMetadata, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// Cache misses are routine; anything else gets logged and treated
		// the same way.
		if err != redis.Nil {
			log.Printf("⚠️  filter cache read failed: %v", err)
		}
		return nil, false
	}

	var meta models.FilterMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		log.Printf("⚠️  filter cache entry corrupt, dropping: %v", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return &meta, true
}

func (c *RedisCache) Set(ctx context.Context, meta *models.FilterMetadata) {
	data, err := json.Marshal(meta)
	if err != nil {
		log.Printf("⚠️  filter cache marshal failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, key, data, TTL).Err(); err != nil {
		log.Printf("⚠️  filter cache write failed: %v", err)
	}
}

// Invalidate drops the cached entry (call after bulk product imports).
func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		log.Printf("⚠️  filter cache invalidate failed: %v", err)
	}
}
