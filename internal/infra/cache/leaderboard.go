// Package cache holds Redis-backed read caches.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"safezone/config"
	"safezone/internal/domain/entity"
	"safezone/internal/domain/service"
	"safezone/internal/errors"

	"github.com/redis/go-redis/v9"
)

const leaderboardKeyPrefix = "safezone:leaderboard:"

type leaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewLeaderboardCache returns a Redis cache, or nil when Redis is not
// configured. The profile service reads straight from the database then.
func NewLeaderboardCache(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.LeaderboardCache {
	if client == nil {
		return nil
	}

	ttl := time.Minute
	if cfg.Redis != nil && cfg.Redis.LeaderboardTTL > 0 {
		ttl = cfg.Redis.LeaderboardTTL
	}

	return &leaderboardCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func leaderboardKey(limit int) string {
	return leaderboardKeyPrefix + strconv.Itoa(limit)
}

func (c *leaderboardCache) Get(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, bool, error) {
	val, err := c.client.Get(ctx, leaderboardKey(limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to read leaderboard cache")
	}

	var entries []*entity.LeaderboardEntry
	if err := json.Unmarshal(val, &entries); err != nil {
		// A payload from an older layout is treated as a miss.
		c.logger.Warn("Discarding unreadable leaderboard cache entry", slog.Any("error", err))

		return nil, false, nil
	}

	return entries, true, nil
}

func (c *leaderboardCache) Set(ctx context.Context, limit int, entries []*entity.LeaderboardEntry) error {
	val, err := json.Marshal(entries)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := c.client.Set(ctx, leaderboardKey(limit), val, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write leaderboard cache")
	}

	return nil
}

// Invalidate drops every cached limit variant.
func (c *leaderboardCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, leaderboardKeyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan leaderboard cache")
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate leaderboard cache")
	}

	return nil
}
