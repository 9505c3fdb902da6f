package postgres

import (
	"context"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/repository"
	"safezone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateAttempt appends one delivery attempt.
func (repo *notificationRepository) CreateAttempt(ctx context.Context, attempt *entity.NotificationAttempt) error {
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.SentAt.IsZero() {
		attempt.SentAt = repo.db.NowFunc()
	}
	attemptM := fromAttemptDomain(attempt)

	if err := repo.db.WithContext(ctx).Create(attemptM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrIncidentNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification attempt")
	}

	return nil
}

// FindAttemptsByIncident lists attempts for an incident, oldest first.
func (repo *notificationRepository) FindAttemptsByIncident(ctx context.Context, incidentID int64) ([]*entity.NotificationAttempt, error) {
	var attemptModels []*model.NotificationAttemptModel

	if err := repo.db.WithContext(ctx).
		Where("incident_id = ?", incidentID).
		Order("sent_at ASC").
		Find(&attemptModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification attempts")
	}

	attempts := make([]*entity.NotificationAttempt, 0, len(attemptModels))
	for _, attemptM := range attemptModels {
		attempts = append(attempts, toAttemptDomain(attemptM))
	}

	return attempts, nil
}

// SummarizeByIncident aggregates attempt outcomes for an incident.
func (repo *notificationRepository) SummarizeByIncident(ctx context.Context, incidentID int64) (*entity.NotificationSummary, error) {
	summary := &entity.NotificationSummary{IncidentID: incidentID}
	base := func() *gorm.DB {
		return repo.db.WithContext(ctx).Model(&model.NotificationAttemptModel{}).Where("incident_id = ?", incidentID)
	}

	if err := base().Count(&summary.Total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count notification attempts")
	}
	if summary.Total == 0 {
		return summary, nil
	}

	if err := base().Where("success = ?", true).Count(&summary.Succeeded).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count successful attempts")
	}
	summary.Failed = summary.Total - summary.Succeeded

	var last model.NotificationAttemptModel
	if err := base().Order("sent_at DESC").Limit(1).Find(&last).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find latest attempt")
	}
	if !last.SentAt.IsZero() {
		sentAt := last.SentAt
		summary.LastSentAt = &sentAt
	}

	return summary, nil
}

// --- Mapper Functions ---

func toAttemptDomain(data *model.NotificationAttemptModel) *entity.NotificationAttempt {
	if data == nil {
		return nil
	}

	return &entity.NotificationAttempt{
		ID:           data.ID,
		IncidentID:   data.IncidentID,
		IdentityHash: data.IdentityHash,
		FCMToken:     data.FCMToken,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}

func fromAttemptDomain(data *entity.NotificationAttempt) *model.NotificationAttemptModel {
	if data == nil {
		return nil
	}

	return &model.NotificationAttemptModel{
		ID:           data.ID,
		IncidentID:   data.IncidentID,
		IdentityHash: data.IdentityHash,
		FCMToken:     data.FCMToken,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
