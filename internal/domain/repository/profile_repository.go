package repository

import (
	"context"
	"time"

	"safezone/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProfileNotFound is returned when no score profile exists.
	ErrProfileNotFound = errors.New("score profile not found")
	// ErrDuplicateConfirmation is returned when an identity confirms an incident twice.
	ErrDuplicateConfirmation = errors.New("incident already confirmed by this identity")
)

// ProfileDelta is a set of counter increments applied in one row write.
type ProfileDelta struct {
	Points          int
	Reports         int
	Confirmations   int
	VerifiedReports int
}

// ProfileRepository stores score profiles and their badges.
type ProfileRepository interface {
	// GetOrCreateProfile returns the profile for identityHash, inserting an
	// empty one when absent. Concurrent callers converge on the same row.
	GetOrCreateProfile(ctx context.Context, identityHash, sealedIdentity string) (*entity.ScoreProfile, error)

	// FindProfileByIdentityHash returns ErrProfileNotFound when absent.
	FindProfileByIdentityHash(ctx context.Context, identityHash string) (*entity.ScoreProfile, error)

	// ApplyDelta increments counters atomically, recomputes the tier in the
	// same statement and returns the updated row.
	ApplyDelta(ctx context.Context, profileID uuid.UUID, delta ProfileDelta) (*entity.ScoreProfile, error)

	// TopProfiles lists profiles by total points, highest first.
	TopProfiles(ctx context.Context, limit int) ([]*entity.ScoreProfile, error)

	// AwardBadge inserts the badge unless the profile already holds it.
	// It reports whether a new badge was written.
	AwardBadge(ctx context.Context, profileID uuid.UUID, badgeType entity.BadgeType, at time.Time) (bool, error)

	// FindBadgesByProfile lists badges in the order they were earned.
	FindBadgesByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Badge, error)
}

// ConfirmationRepository stores incident confirmations.
type ConfirmationRepository interface {
	// CreateConfirmation returns ErrDuplicateConfirmation on a second
	// confirmation of the same incident by the same identity.
	CreateConfirmation(ctx context.Context, confirmation *entity.Confirmation) error

	// CountByIncident counts confirmations recorded for an incident.
	CountByIncident(ctx context.Context, incidentID int64) (int64, error)
}
