package usecase

import (
	"context"

	"safezone/internal/domain/entity"
)

// Alert feed defaults.
const (
	DefaultAlertWindowHours = 24
	DefaultAlertRadiusKm    = 10.0
	DefaultAlertLimit       = 100
)

// AlertQuery filters the alert feed. A location filter applies only when
// both coordinates are set.
type AlertQuery struct {
	Severity  entity.AlertSeverity
	AlertType entity.AlertType
	Hours     int
	Latitude  *float64
	Longitude *float64
	RadiusKm  float64
	Limit     int
}

// AlertUsecase derives alerts from recent incidents.
type AlertUsecase interface {
	ListAlerts(ctx context.Context, query *AlertQuery) ([]*entity.Alert, error)
}
