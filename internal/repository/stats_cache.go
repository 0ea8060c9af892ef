package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/4pillsAday/dive-globe/internal/domain"
)

// ErrCacheMiss is returned by StatsCache.Get when no entry exists
var ErrCacheMiss = errors.New("stats cache miss")

// StatsCache holds SiteStats in front of the site_stats table.
// Set overwrites and is used by writers holding freshly computed stats.
// Fill only writes when no entry exists and is used by read-through, so a
// reader that loaded the row before a concurrent recompute cannot replace
// the recomputed entry.
type StatsCache interface {
	Get(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error)
	Set(ctx context.Context, stats *domain.SiteStats) error
	Fill(ctx context.Context, stats *domain.SiteStats) error
	Invalidate(ctx context.Context, siteID uuid.UUID) error
}

type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache returns a redis backed cache, or a no-op cache when client is nil
func NewStatsCache(client *redis.Client, ttl time.Duration) StatsCache {
	if client == nil {
		return noopStatsCache{}
	}
	return &redisStatsCache{client: client, ttl: ttl}
}

func statsCacheKey(siteID uuid.UUID) string {
	return fmt.Sprintf("site_stats:%s", siteID.String())
}

func (c *redisStatsCache) Get(ctx context.Context, siteID uuid.UUID) (*domain.SiteStats, error) {
	raw, err := c.client.Get(ctx, statsCacheKey(siteID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var stats domain.SiteStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *redisStatsCache) Set(ctx context.Context, stats *domain.SiteStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsCacheKey(stats.SiteID), raw, c.ttl).Err()
}

func (c *redisStatsCache) Fill(ctx context.Context, stats *domain.SiteStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.SetNX(ctx, statsCacheKey(stats.SiteID), raw, c.ttl).Err()
}

func (c *redisStatsCache) Invalidate(ctx context.Context, siteID uuid.UUID) error {
	return c.client.Del(ctx, statsCacheKey(siteID)).Err()
}

type noopStatsCache struct{}

func (noopStatsCache) Get(context.Context, uuid.UUID) (*domain.SiteStats, error) {
	return nil, ErrCacheMiss
}

func (noopStatsCache) Set(context.Context, *domain.SiteStats) error { return nil }

func (noopStatsCache) Fill(context.Context, *domain.SiteStats) error { return nil }

func (noopStatsCache) Invalidate(context.Context, uuid.UUID) error { return nil }
