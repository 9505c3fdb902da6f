package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/geo"
	"safezone/internal/domain/repository"
	"safezone/internal/errors"
	"safezone/internal/usecase"
)

type alertService struct {
	incidentRepo repository.IncidentRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewAlertService creates the alert feed service.
func NewAlertService(incidentRepo repository.IncidentRepository, logger *slog.Logger) usecase.AlertUsecase {
	return &alertService{
		incidentRepo: incidentRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// ListAlerts derives alerts from incidents in the time window, optionally
// restricted to a radius around a point.
func (srv *alertService) ListAlerts(ctx context.Context, query *usecase.AlertQuery) ([]*entity.Alert, error) {
	hours := query.Hours
	if hours <= 0 {
		hours = usecase.DefaultAlertWindowHours
	}
	limit := clampLimit(query.Limit, usecase.DefaultAlertLimit, usecase.DefaultAlertLimit)
	filter := repository.IncidentFilter{
		Since: srv.now().UTC().Add(-time.Duration(hours) * time.Hour),
	}

	var alerts []*entity.Alert
	if query.Latitude != nil && query.Longitude != nil {
		if !geo.IsValidCoordinate(*query.Latitude, *query.Longitude) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCoordinates)
		}

		radiusKm := query.RadiusKm
		if radiusKm <= 0 {
			radiusKm = usecase.DefaultAlertRadiusKm
		}
		radiusKm = min(radiusKm, usecase.MaxSearchRadiusKm)

		nearby, err := findWithin(ctx, srv.incidentRepo, filter, geo.NewPoint(*query.Latitude, *query.Longitude), radiusKm*1000)
		if err != nil {
			return nil, err
		}
		for _, incident := range nearby {
			alert := entity.NewAlert(&incident.Incident)
			distance := incident.DistanceMeters
			alert.DistanceMeters = &distance
			alerts = append(alerts, alert)
		}
		// The feed is newest first whether or not it is filtered by distance.
		sort.SliceStable(alerts, func(i, j int) bool {
			return alerts[i].Timestamp.After(alerts[j].Timestamp)
		})
	} else {
		incidents, err := srv.incidentRepo.ListIncidents(ctx, filter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list recent incidents")
		}
		for _, incident := range incidents {
			alerts = append(alerts, entity.NewAlert(incident))
		}
	}

	filtered := make([]*entity.Alert, 0, len(alerts))
	for _, alert := range alerts {
		if query.Severity != "" && alert.Severity != query.Severity {
			continue
		}
		if query.AlertType != "" && alert.AlertType != query.AlertType {
			continue
		}
		filtered = append(filtered, alert)
		if len(filtered) == limit {
			break
		}
	}

	return filtered, nil
}
