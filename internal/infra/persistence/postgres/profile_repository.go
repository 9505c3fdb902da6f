package postgres

import (
	"context"
	"strconv"
	"strings"
	"time"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/scoring"
	"safezone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// GetOrCreateProfile inserts an empty profile unless one exists, then reads it.
func (repo *profileRepository) GetOrCreateProfile(ctx context.Context, identityHash, sealedIdentity string) (*entity.ScoreProfile, error) {
	now := repo.db.NowFunc()
	profileM := &model.ScoreProfileModel{
		ID:             uuid.New(),
		IdentityHash:   identityHash,
		SealedIdentity: sealedIdentity,
		CurrentTier:    scoring.TierFor(0).Level,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity_hash"}},
			DoNothing: true,
		}).
		Create(profileM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create score profile")
	}

	return repo.FindProfileByIdentityHash(ctx, identityHash)
}

// FindProfileByIdentityHash retrieves the profile for an identity.
func (repo *profileRepository) FindProfileByIdentityHash(ctx context.Context, identityHash string) (*entity.ScoreProfile, error) {
	var profileM model.ScoreProfileModel

	if err := repo.db.WithContext(ctx).
		Where("identity_hash = ?", identityHash).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find score profile")
	}

	return toProfileDomain(&profileM), nil
}

// ApplyDelta increments counters and rederives the tier in one UPDATE.
func (repo *profileRepository) ApplyDelta(ctx context.Context, profileID uuid.UUID, delta repository.ProfileDelta) (*entity.ScoreProfile, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ScoreProfileModel{}).
		Where("id = ?", profileID).
		Updates(map[string]any{
			"total_points":        gorm.Expr("total_points + ?", delta.Points),
			"reports_count":       gorm.Expr("reports_count + ?", delta.Reports),
			"confirmations_count": gorm.Expr("confirmations_count + ?", delta.Confirmations),
			"verified_reports":    gorm.Expr("verified_reports + ?", delta.VerifiedReports),
			"current_tier":        gorm.Expr(tierCaseExpr(delta.Points)),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update score profile")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProfileNotFound
	}

	var profileM model.ScoreProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", profileID).First(&profileM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to reload score profile")
	}

	return toProfileDomain(&profileM), nil
}

// tierCaseExpr builds "CASE WHEN total_points + d >= min THEN level ... END"
// from the tier table. SET expressions see the pre-update row, hence the
// added delta. Integers are inlined so PostgreSQL types the CASE as integer.
func tierCaseExpr(pointsDelta int) string {
	var sb strings.Builder
	delta := strconv.Itoa(pointsDelta)

	sb.WriteString("CASE")
	for _, tier := range scoring.Tiers[:len(scoring.Tiers)-1] {
		sb.WriteString(" WHEN total_points + " + delta + " >= " + strconv.Itoa(tier.MinPoints))
		sb.WriteString(" THEN " + strconv.Itoa(tier.Level))
	}
	sb.WriteString(" ELSE " + strconv.Itoa(scoring.Tiers[len(scoring.Tiers)-1].Level) + " END")

	return sb.String()
}

// TopProfiles lists profiles by total points, highest first.
func (repo *profileRepository) TopProfiles(ctx context.Context, limit int) ([]*entity.ScoreProfile, error) {
	var profileModels []*model.ScoreProfileModel

	if err := repo.db.WithContext(ctx).
		Order("total_points DESC").
		Order("created_at ASC").
		Limit(limit).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list top profiles")
	}

	profiles := make([]*entity.ScoreProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// AwardBadge inserts the badge; an existing (profile, type) pair is left untouched.
func (repo *profileRepository) AwardBadge(ctx context.Context, profileID uuid.UUID, badgeType entity.BadgeType, at time.Time) (bool, error) {
	badgeM := &model.BadgeModel{
		ID:        uuid.New(),
		ProfileID: profileID,
		BadgeType: string(badgeType),
		EarnedAt:  at,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "badge_type"}},
			DoNothing: true,
		}).
		Create(badgeM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to award badge")
	}

	return result.RowsAffected == 1, nil
}

// FindBadgesByProfile lists badges in earning order.
func (repo *profileRepository) FindBadgesByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.Badge, error) {
	var badgeModels []*model.BadgeModel

	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("earned_at ASC").
		Find(&badgeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find badges")
	}

	badges := make([]*entity.Badge, 0, len(badgeModels))
	for _, badgeM := range badgeModels {
		badges = append(badges, &entity.Badge{
			ID:        badgeM.ID,
			ProfileID: badgeM.ProfileID,
			BadgeType: entity.BadgeType(badgeM.BadgeType),
			EarnedAt:  badgeM.EarnedAt,
		})
	}

	return badges, nil
}

type confirmationRepository struct {
	db *gorm.DB
}

// NewConfirmationRepository is the constructor for confirmationRepository.
func NewConfirmationRepository(db *gorm.DB) repository.ConfirmationRepository {
	return &confirmationRepository{
		db: db,
	}
}

// CreateConfirmation relies on the (incident_id, identity_hash) unique key to
// reject repeats.
func (repo *confirmationRepository) CreateConfirmation(ctx context.Context, confirmation *entity.Confirmation) error {
	if confirmation.ID == uuid.Nil {
		confirmation.ID = uuid.New()
	}
	if confirmation.ConfirmedAt.IsZero() {
		confirmation.ConfirmedAt = repo.db.NowFunc()
	}

	confirmationM := &model.ConfirmationModel{
		ID:           confirmation.ID,
		IncidentID:   confirmation.IncidentID,
		IdentityHash: confirmation.IdentityHash,
		ConfirmedAt:  confirmation.ConfirmedAt,
	}

	if err := repo.db.WithContext(ctx).Create(confirmationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateConfirmation
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrIncidentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create confirmation")
	}

	return nil
}

// CountByIncident counts confirmations for an incident.
func (repo *confirmationRepository) CountByIncident(ctx context.Context, incidentID int64) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ConfirmationModel{}).
		Where("incident_id = ?", incidentID).
		Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count confirmations")
	}

	return count, nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ScoreProfileModel) *entity.ScoreProfile {
	if data == nil {
		return nil
	}

	return &entity.ScoreProfile{
		ID:                 data.ID,
		IdentityHash:       data.IdentityHash,
		SealedIdentity:     data.SealedIdentity,
		TotalPoints:        data.TotalPoints,
		ReportsCount:       data.ReportsCount,
		ConfirmationsCount: data.ConfirmationsCount,
		VerifiedReports:    data.VerifiedReports,
		CurrentTier:        data.CurrentTier,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
