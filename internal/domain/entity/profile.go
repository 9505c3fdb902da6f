package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScoreProfile is the scoring state of one device identity. CurrentTier is
// always derived from TotalPoints.
type ScoreProfile struct {
	ID                 uuid.UUID `json:"id"`
	IdentityHash       string    `json:"-"`
	SealedIdentity     string    `json:"-"`
	TotalPoints        int       `json:"total_points"`
	ReportsCount       int       `json:"reports_count"`
	ConfirmationsCount int       `json:"confirmations_count"`
	VerifiedReports    int       `json:"verified_reports"`
	CurrentTier        int       `json:"current_tier"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BadgeType names an achievement.
type BadgeType string

const (
	BadgeFirstResponder    BadgeType = "first_responder"
	BadgeTruthTriangulator BadgeType = "truth_triangulator"
	BadgeNightOwl          BadgeType = "night_owl"
	BadgeAccuracyAce       BadgeType = "accuracy_ace"
)

// Badge is awarded once per (profile, type) and never changes.
type Badge struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"-"`
	BadgeType BadgeType `json:"badge_type"`
	EarnedAt  time.Time `json:"earned_at"`
}

// Confirmation records that an identity vouched for an incident.
type Confirmation struct {
	ID           uuid.UUID `json:"id"`
	IncidentID   int64     `json:"incident_id"`
	IdentityHash string    `json:"-"`
	ConfirmedAt  time.Time `json:"confirmed_at"`
}

// LeaderboardEntry is the public summary of a profile.
type LeaderboardEntry struct {
	ID                 uuid.UUID `json:"id"`
	TotalPoints        int       `json:"total_points"`
	ReportsCount       int       `json:"reports_count"`
	ConfirmationsCount int       `json:"confirmations_count"`
	CurrentTier        int       `json:"current_tier"`
	TierName           string    `json:"tier_name"`
	TierIcon           string    `json:"tier_icon"`
	AccuracyPercentage float64   `json:"accuracy_percentage"`
}
