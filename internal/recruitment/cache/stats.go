// Package cache holds the Redis-backed cache for dashboard statistics.
// Counts are expensive full-table aggregates; the dashboard polls them on
// every page load, so they are served from Redis for a short TTL.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyDomainCounts = "recruitdesk:stats:domain-counts"
	keyTotal        = "recruitdesk:stats:total"
)

// StatsCache caches dashboard aggregates in Redis. A nil *StatsCache is a
// valid no-op cache for deployments without Redis.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	if rdb == nil {
		return nil
	}
	return &StatsCache{rdb: rdb, ttl: ttl}
}

// GetDomainCounts returns the cached per-domain counts. Any Redis or decode
// failure reads as a miss; the caller recomputes.
func (c *StatsCache) GetDomainCounts(ctx context.Context) (map[string]int, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, keyDomainCounts).Bytes()
	if err != nil {
		return nil, false
	}
	var counts map[string]int
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, false
	}
	return counts, true
}

func (c *StatsCache) SetDomainCounts(ctx context.Context, counts map[string]int) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("marshal domain counts: %w", err)
	}
	if err := c.rdb.Set(ctx, keyDomainCounts, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache domain counts: %w", err)
	}
	return nil
}

// GetTotal returns the cached overall registration count.
func (c *StatsCache) GetTotal(ctx context.Context) (int, bool) {
	if c == nil {
		return 0, false
	}
	n, err := c.rdb.Get(ctx, keyTotal).Int()
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *StatsCache) SetTotal(ctx context.Context, total int) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Set(ctx, keyTotal, total, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache total registrations: %w", err)
	}
	return nil
}

// Invalidate drops both stat keys. Called after bulk mutations so the
// dashboard never shows counts older than the last write for long.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, keyDomainCounts, keyTotal).Err(); err != nil {
		return fmt.Errorf("invalidate stats cache: %w", err)
	}
	return nil
}
