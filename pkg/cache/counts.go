package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const countsKey = "blog:category_counts"

// CountsCache holds the derived category -> post count aggregate with a
// bounded staleness window. It is an optimization only: every method is a
// best-effort no-op when redis is absent or down, so cache failures can never
// block a read or a write.
type CountsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCountsCache(client *redis.Client, ttl time.Duration) *CountsCache {
	return &CountsCache{client: client, ttl: ttl}
}

// Get returns the cached counts and whether the lookup hit. Errors and
// absence both read as a miss.
func (c *CountsCache) Get(ctx context.Context) (map[string]int64, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, countsKey).Result()
	if err != nil {
		return nil, false
	}

	var counts map[string]int64
	if err := json.Unmarshal([]byte(raw), &counts); err != nil {
		return nil, false
	}
	return counts, true
}

func (c *CountsCache) Set(ctx context.Context, counts map[string]int64) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(counts)
	if err != nil {
		return
	}
	c.client.Set(ctx, countsKey, raw, c.ttl)
}

// Invalidate drops the aggregate so the next read recomputes from the
// database. Mutation paths call this before reporting success.
func (c *CountsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, countsKey)
}
