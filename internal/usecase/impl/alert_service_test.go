package impl

import (
	"context"
	"testing"
	"time"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/errors"
	"safezone/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertService_ListAlerts(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewAlertService(f.incidents, newDiscardLogger())
	svc.(*alertService).now = fixedClock(now)

	fire := f.createIncident(t, &entity.Incident{Category: entity.CategoryFire, Latitude: 25.0400, Longitude: 121.5654, CreatedAt: now.Add(-3 * time.Hour)})
	theft := f.createIncident(t, &entity.Incident{Category: entity.CategoryTheft, Latitude: 25.0331, Longitude: 121.5654, CreatedAt: now.Add(-5 * time.Hour)})
	noise := f.createIncident(t, &entity.Incident{Category: entity.CategoryNoise, Latitude: 26.5, Longitude: 121.5654, CreatedAt: now.Add(-time.Hour)})
	f.createIncident(t, &entity.Incident{Category: entity.CategoryFire, Latitude: 25.0330, Longitude: 121.5654, CreatedAt: now.Add(-30 * time.Hour)})

	t.Run("defaults to the last day, newest first", func(t *testing.T) {
		alerts, err := svc.ListAlerts(ctx, &usecase.AlertQuery{})

		require.NoError(t, err)
		require.Len(t, alerts, 3)
		assert.Equal(t, []int64{noise.ID, fire.ID, theft.ID}, []int64{alerts[0].IncidentID, alerts[1].IncidentID, alerts[2].IncidentID})
		assert.Equal(t, "Fire Reported Nearby", alerts[1].Title)
		assert.Equal(t, entity.SeverityHigh, alerts[1].Severity)
		assert.Nil(t, alerts[0].DistanceMeters)
	})

	t.Run("location keeps newest first and sets distance", func(t *testing.T) {
		alerts, err := svc.ListAlerts(ctx, &usecase.AlertQuery{Latitude: floatPtr(25.0330), Longitude: floatPtr(121.5654)})

		require.NoError(t, err)
		require.Len(t, alerts, 2)
		assert.Equal(t, fire.ID, alerts[0].IncidentID)
		assert.Equal(t, theft.ID, alerts[1].IncidentID)
		require.NotNil(t, alerts[1].DistanceMeters)
		assert.Less(t, *alerts[1].DistanceMeters, *alerts[0].DistanceMeters)
	})

	t.Run("severity and type filters", func(t *testing.T) {
		high, err := svc.ListAlerts(ctx, &usecase.AlertQuery{Severity: entity.SeverityHigh})
		require.NoError(t, err)
		require.Len(t, high, 1)
		assert.Equal(t, fire.ID, high[0].IncidentID)

		crowd, err := svc.ListAlerts(ctx, &usecase.AlertQuery{AlertType: entity.AlertTypeEventCrowd})
		require.NoError(t, err)
		require.Len(t, crowd, 1)
		assert.Equal(t, noise.ID, crowd[0].IncidentID)
	})

	t.Run("window and limit", func(t *testing.T) {
		alerts, err := svc.ListAlerts(ctx, &usecase.AlertQuery{Hours: 48, Limit: 2})

		require.NoError(t, err)
		assert.Len(t, alerts, 2)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		_, err := svc.ListAlerts(ctx, &usecase.AlertQuery{Latitude: floatPtr(200), Longitude: floatPtr(0)})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
	})
}
