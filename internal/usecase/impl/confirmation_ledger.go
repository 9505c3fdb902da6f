package impl

import (
	"context"
	"log/slog"
	"time"

	"safezone/config"
	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/scoring"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	"safezone/internal/usecase"

	"github.com/google/uuid"
)

type confirmationLedger struct {
	txManager       repository.TransactionManager
	identity        service.IdentityProtector
	scoring         usecase.ScoringService
	confirmationCap int
	defaultCount    int
	logger          *slog.Logger
	now             func() time.Time
}

// NewConfirmationLedger creates the confirmation ledger.
func NewConfirmationLedger(
	cfg *config.Config,
	txManager repository.TransactionManager,
	identity service.IdentityProtector,
	scoringSvc usecase.ScoringService,
	logger *slog.Logger,
) usecase.ConfirmationLedger {
	return &confirmationLedger{
		txManager:       txManager,
		identity:        identity,
		scoring:         scoringSvc,
		confirmationCap: cfg.Scoring.ConfirmationCap,
		defaultCount:    cfg.Scoring.DefaultConfirmationCount,
		logger:          logger,
		now:             time.Now,
	}
}

// Confirm records the confirmation, recounts and scores in one transaction.
// Uniqueness is left to the database constraint.
func (l *confirmationLedger) Confirm(ctx context.Context, incidentID int64, deviceID string) (*usecase.ConfirmationResult, error) {
	identity, err := protectIdentity(l.identity, deviceID)
	if err != nil {
		return nil, err
	}

	var result *usecase.ConfirmationResult

	err = l.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		incidentRepo := repos.NewIncidentRepository()

		// 1. The incident must exist; its row lock orders concurrent recounts
		incident, err := incidentRepo.FindIncidentByIDForUpdate(ctx, incidentID)
		if err != nil {
			if errors.Is(err, repository.ErrIncidentNotFound) {
				return errors.Wrap(domainerrors.ErrIncidentNotFound, "incident not found")
			}

			return errors.Wrap(err, "failed to find incident")
		}

		// 2. The confirming identity always has a profile
		profile, err := repos.NewProfileRepository().GetOrCreateProfile(ctx, identity.Hash, identity.Sealed)
		if err != nil {
			return errors.Wrap(err, "failed to load score profile")
		}

		// 3. Insert, letting the unique index reject repeats
		now := l.now().UTC()
		confirmationRepo := repos.NewConfirmationRepository()
		if err := confirmationRepo.CreateConfirmation(ctx, &entity.Confirmation{
			ID:           uuid.New(),
			IncidentID:   incident.ID,
			IdentityHash: identity.Hash,
			ConfirmedAt:  now,
		}); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateConfirmation):
				return errors.Wrap(domainerrors.ErrAlreadyConfirmed, "duplicate confirmation")
			case errors.Is(err, repository.ErrIncidentNotFound):
				return errors.Wrap(domainerrors.ErrIncidentNotFound, "incident not found")
			default:
				return errors.Wrap(err, "failed to record confirmation")
			}
		}

		// 4. Recount instead of incrementing
		confirmations, err := confirmationRepo.CountByIncident(ctx, incident.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count confirmations")
		}
		count := l.defaultCount + int(confirmations)
		if err := incidentRepo.UpdateConfirmationCount(ctx, incident.ID, count); err != nil {
			return errors.Wrap(err, "failed to update confirmation count")
		}
		incident.ConfirmationCount = count

		if err := l.markVerified(ctx, repos, incident, now); err != nil {
			return err
		}

		// 5. Score within the cap
		result = &usecase.ConfirmationResult{
			TotalPoints:       profile.TotalPoints,
			ConfirmationCount: count,
			Message:           usecase.MessageConfirmedCapReached,
		}
		if !scoring.EarnsConfirmationPoints(int(confirmations), l.confirmationCap) {
			return nil
		}

		score, err := l.scoring.AwardConfirmationPoints(ctx, repos, profile)
		if err != nil {
			return errors.Wrap(err, "failed to award confirmation points")
		}

		result.PointsEarned = score.Earned
		result.TotalPoints = score.TotalPoints
		result.TierChanged = score.TierChanged
		result.NewTier = score.NewTier
		result.Message = usecase.MessageConfirmed
		if score.NewTier != nil {
			if tier, ok := scoring.TierByLevel(*score.NewTier); ok {
				result.TierName = tier.Name
				result.TierIcon = tier.Icon
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to confirm incident")
	}

	l.logger.Info("Incident confirmed",
		slog.Int64("incident_id", incidentID),
		slog.Int("confirmation_count", result.ConfirmationCount),
		slog.Int("points_earned", result.PointsEarned),
	)

	return result, nil
}

// markVerified credits the reporter the first time the count reaches the
// verification threshold.
func (l *confirmationLedger) markVerified(ctx context.Context, repos repository.RepositoryFactory, incident *entity.Incident, now time.Time) error {
	if incident.VerifiedAt != nil || incident.ConfirmationCount < scoring.VerifiedConfirmationCount {
		return nil
	}

	marked, err := repos.NewIncidentRepository().MarkVerified(ctx, incident.ID, now)
	if err != nil {
		return errors.Wrap(err, "failed to mark incident verified")
	}
	if !marked {
		return nil
	}
	incident.VerifiedAt = &now

	if err := l.scoring.RecordVerifiedReport(ctx, repos, incident); err != nil {
		return errors.Wrap(err, "failed to record verified report")
	}

	return nil
}
