package usecase

import (
	"context"

	"safezone/internal/domain/entity"
	"safezone/internal/domain/scoring"
)

// Nearby search bounds in kilometers.
const (
	DefaultNearbyRadiusKm = 5.0
	MaxSearchRadiusKm     = 50.0
)

// CreateIncidentInput is a new report as submitted by a client.
type CreateIncidentInput struct {
	Category     entity.IncidentCategory `json:"category" validate:"required"`
	Latitude     float64                 `json:"latitude" validate:"latitude"`
	Longitude    float64                 `json:"longitude" validate:"longitude"`
	Title        string                  `json:"title" validate:"required,max=200"`
	Description  *string                 `json:"description" validate:"omitempty,max=2000"`
	NotifyNearby *bool                   `json:"notify_nearby"`
}

// CreateIncidentOutput is the stored incident plus the reporter's award.
// Score and Badges are empty for anonymous reports.
type CreateIncidentOutput struct {
	Incident *entity.Incident     `json:"incident"`
	Score    *scoring.ScoreResult `json:"score,omitempty"`
	Badges   []entity.BadgeType   `json:"new_badges,omitempty"`
}

// ListIncidentsInput pages through incidents.
type ListIncidentsInput struct {
	Category entity.IncidentCategory
	Limit    int
	Offset   int
}

// NearbyQuery searches around a point. RadiusKm of zero means the default.
type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Limit     int
}

// IncidentUsecase covers reporting and reading incidents.
type IncidentUsecase interface {
	// CreateIncident stores the report, scores the reporter when deviceID is
	// set and starts the notification fanout. Fanout failures are not
	// reported.
	CreateIncident(ctx context.Context, deviceID string, input *CreateIncidentInput) (*CreateIncidentOutput, error)

	ListIncidents(ctx context.Context, input *ListIncidentsInput) ([]*entity.Incident, error)
	GetIncident(ctx context.Context, id int64) (*entity.Incident, error)

	// FindNearby returns incidents within the radius, closest first.
	FindNearby(ctx context.Context, query *NearbyQuery) ([]*entity.NearbyIncident, error)

	// ListMine returns incidents reported by the calling device.
	ListMine(ctx context.Context, deviceID string, limit, offset int) ([]*entity.Incident, error)

	// NotificationSummary aggregates delivery attempts for an incident.
	NotificationSummary(ctx context.Context, id int64) (*entity.NotificationSummary, error)
}
