package service

import (
	"context"

	"safezone/internal/domain/entity"
)

// LeaderboardCache caches the top-N leaderboard listing.
type LeaderboardCache interface {
	// Get returns the cached listing and whether it was present.
	Get(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, bool, error)
	Set(ctx context.Context, limit int, entries []*entity.LeaderboardEntry) error
	// Invalidate drops every cached listing.
	Invalidate(ctx context.Context) error
}
