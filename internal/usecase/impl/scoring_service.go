package impl

import (
	"context"
	"log/slog"
	"time"

	"safezone/internal/domain/entity"
	"safezone/internal/domain/geo"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/scoring"
	"safezone/internal/errors"
	"safezone/internal/usecase"
)

type scoringService struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewScoringService creates the service that applies the scoring rules.
func NewScoringService(logger *slog.Logger) usecase.ScoringService {
	return &scoringService{
		logger: logger,
		now:    time.Now,
	}
}

// AwardReportPoints credits a new report. profile is refreshed in place.
func (srv *scoringService) AwardReportPoints(
	ctx context.Context,
	repos repository.RepositoryFactory,
	profile *entity.ScoreProfile,
	incidentCreatedAt time.Time,
) (*scoring.ScoreResult, error) {
	base, bonus := scoring.ReportPoints(incidentCreatedAt, srv.now())

	return srv.apply(ctx, repos.NewProfileRepository(), profile, base, bonus, repository.ProfileDelta{
		Points:  base + bonus,
		Reports: 1,
	})
}

// AwardConfirmationPoints credits a confirmation. profile is refreshed in place.
func (srv *scoringService) AwardConfirmationPoints(
	ctx context.Context,
	repos repository.RepositoryFactory,
	profile *entity.ScoreProfile,
) (*scoring.ScoreResult, error) {
	profileRepo := repos.NewProfileRepository()

	result, err := srv.apply(ctx, profileRepo, profile, scoring.ConfirmationPoints, 0, repository.ProfileDelta{
		Points:        scoring.ConfirmationPoints,
		Confirmations: 1,
	})
	if err != nil {
		return nil, err
	}

	if scoring.QualifiesTruthTriangulator(profile) {
		if _, err := srv.award(ctx, profileRepo, profile, entity.BadgeTruthTriangulator); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// AwardReportBadges checks the badges a single report can earn.
func (srv *scoringService) AwardReportBadges(
	ctx context.Context,
	repos repository.RepositoryFactory,
	profile *entity.ScoreProfile,
	incident *entity.Incident,
) ([]entity.BadgeType, error) {
	profileRepo := repos.NewProfileRepository()
	earned := make([]entity.BadgeType, 0)

	first, err := srv.isFirstResponder(ctx, repos.NewIncidentRepository(), incident)
	if err != nil {
		return nil, err
	}
	if first {
		awarded, err := srv.award(ctx, profileRepo, profile, entity.BadgeFirstResponder)
		if err != nil {
			return nil, err
		}
		if awarded {
			earned = append(earned, entity.BadgeFirstResponder)
		}
	}

	if scoring.IsNightOwl(incident.CreatedAt) {
		awarded, err := srv.award(ctx, profileRepo, profile, entity.BadgeNightOwl)
		if err != nil {
			return nil, err
		}
		if awarded {
			earned = append(earned, entity.BadgeNightOwl)
		}
	}

	return earned, nil
}

// RecordVerifiedReport credits the reporter once per verified incident.
func (srv *scoringService) RecordVerifiedReport(ctx context.Context, repos repository.RepositoryFactory, incident *entity.Incident) error {
	if !incident.HasReporter() {
		return nil
	}

	profileRepo := repos.NewProfileRepository()

	profile, err := profileRepo.FindProfileByIdentityHash(ctx, *incident.ReporterHash)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.logger.Warn("Verified incident has no reporter profile", slog.Int64("incident_id", incident.ID))

			return nil
		}

		return errors.Wrap(err, "failed to find reporter profile")
	}

	updated, err := profileRepo.ApplyDelta(ctx, profile.ID, repository.ProfileDelta{VerifiedReports: 1})
	if err != nil {
		return errors.Wrap(err, "failed to record verified report")
	}

	if scoring.QualifiesAccuracyAce(updated) {
		if _, err := srv.award(ctx, profileRepo, updated, entity.BadgeAccuracyAce); err != nil {
			return err
		}
	}

	return nil
}

func (srv *scoringService) apply(
	ctx context.Context,
	profileRepo repository.ProfileRepository,
	profile *entity.ScoreProfile,
	base, bonus int,
	delta repository.ProfileDelta,
) (*scoring.ScoreResult, error) {
	updated, err := profileRepo.ApplyDelta(ctx, profile.ID, delta)
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply score delta")
	}
	*profile = *updated

	// Points only grow and the delta is applied atomically, so the tier before
	// this award follows from the new total even if profile was stale.
	previousTier := scoring.TierFor(updated.TotalPoints - delta.Points).Level

	return scoring.NewScoreResult(base, bonus, updated.TotalPoints, previousTier, updated.CurrentTier), nil
}

func (srv *scoringService) award(
	ctx context.Context,
	profileRepo repository.ProfileRepository,
	profile *entity.ScoreProfile,
	badge entity.BadgeType,
) (bool, error) {
	awarded, err := profileRepo.AwardBadge(ctx, profile.ID, badge, srv.now().UTC())
	if err != nil {
		return false, errors.Wrapf(err, "failed to award %s", badge)
	}
	if awarded {
		srv.logger.Info("Badge awarded", slog.String("profile_id", profile.ID.String()), slog.String("badge", string(badge)))
	}

	return awarded, nil
}

// isFirstResponder reports whether no other incident of the same category
// was reported within range during the preceding window.
func (srv *scoringService) isFirstResponder(ctx context.Context, incidentRepo repository.IncidentRepository, incident *entity.Incident) (bool, error) {
	point := geo.NewPoint(incident.Latitude, incident.Longitude)
	bound := geo.BoundAround(point, scoring.FirstResponderRadiusMeters)

	earlier, err := incidentRepo.ListIncidents(ctx, repository.IncidentFilter{
		Category:  incident.Category,
		Since:     incident.CreatedAt.Add(-scoring.FirstResponderWindow),
		Within:    &bound,
		ExcludeID: incident.ID,
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to look up earlier incidents")
	}

	for _, other := range earlier {
		if other.CreatedAt.After(incident.CreatedAt) {
			continue
		}
		if geo.Distance(point, geo.NewPoint(other.Latitude, other.Longitude)) <= scoring.FirstResponderRadiusMeters {
			return false, nil
		}
	}

	return true, nil
}
