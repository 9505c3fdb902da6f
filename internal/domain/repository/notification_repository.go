package repository

import (
	"context"

	"safezone/internal/domain/entity"
)

// NotificationRepository stores push delivery attempts.
type NotificationRepository interface {
	// CreateAttempt appends a single delivery attempt.
	CreateAttempt(ctx context.Context, attempt *entity.NotificationAttempt) error

	// FindAttemptsByIncident lists attempts for an incident, oldest first.
	FindAttemptsByIncident(ctx context.Context, incidentID int64) ([]*entity.NotificationAttempt, error)

	// SummarizeByIncident aggregates attempt outcomes for an incident.
	SummarizeByIncident(ctx context.Context, incidentID int64) (*entity.NotificationSummary, error)
}
