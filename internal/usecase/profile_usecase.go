package usecase

import (
	"context"

	"safezone/internal/domain/entity"
)

// Leaderboard size bounds.
const (
	DefaultLeaderboardLimit = 100
	MaxLeaderboardLimit     = 100
)

// TierView is the derived presentation of a tier.
type TierView struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Reward    string `json:"reward"`
	MinPoints int    `json:"min_points"`
}

// ProfileView is a profile with every derived field filled in.
type ProfileView struct {
	*entity.ScoreProfile
	Tier               TierView        `json:"tier"`
	NextTier           *TierView       `json:"next_tier,omitempty"`
	PointsToNextTier   int             `json:"points_to_next_tier"`
	AccuracyPercentage float64         `json:"accuracy_percentage"`
	Badges             []*entity.Badge `json:"badges"`
}

// ProfileUsecase serves profile and leaderboard reads.
type ProfileUsecase interface {
	// GetMyProfile returns the caller's profile, creating an empty one first.
	GetMyProfile(ctx context.Context, deviceID string) (*ProfileView, error)
	GetMyBadges(ctx context.Context, deviceID string) ([]*entity.Badge, error)

	// Leaderboard lists the top profiles by points.
	Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error)
}
