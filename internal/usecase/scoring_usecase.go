package usecase

import (
	"context"
	"time"

	"safezone/internal/domain/entity"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/scoring"
)

// ScoringService applies the scoring rules to stored profiles. Every method
// runs on the repositories of the caller's transaction.
type ScoringService interface {
	// AwardReportPoints adds report points, with the time bonus when the
	// incident is at most an hour old, and increments ReportsCount.
	AwardReportPoints(ctx context.Context, repos repository.RepositoryFactory, profile *entity.ScoreProfile, incidentCreatedAt time.Time) (*scoring.ScoreResult, error)

	// AwardConfirmationPoints adds confirmation points, increments
	// ConfirmationsCount and awards truth_triangulator when due.
	AwardConfirmationPoints(ctx context.Context, repos repository.RepositoryFactory, profile *entity.ScoreProfile) (*scoring.ScoreResult, error)

	// AwardReportBadges checks first_responder and night_owl for a new report
	// and returns the badges newly earned.
	AwardReportBadges(ctx context.Context, repos repository.RepositoryFactory, profile *entity.ScoreProfile, incident *entity.Incident) ([]entity.BadgeType, error)

	// RecordVerifiedReport credits the reporter of a newly verified incident
	// and awards accuracy_ace when due. Anonymous incidents are ignored.
	RecordVerifiedReport(ctx context.Context, repos repository.RepositoryFactory, incident *entity.Incident) error
}
