package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"safezone/internal/domain/entity"
	"safezone/internal/domain/geo"
	"safezone/internal/errors"
	mockRepo "safezone/internal/mocks/repository"
	mockSvc "safezone/internal/mocks/service"
	mockUC "safezone/internal/mocks/usecase"
	"safezone/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notifierFixtures struct {
	notifier   usecase.IncidentNotifier
	zoneIndex  *mockUC.MockSafeZoneIndex
	deviceRepo *mockRepo.MockDeviceRepository
	dispatcher *mockUC.MockNotificationDispatcher
}

func createTestNotifier(t *testing.T) notifierFixtures {
	zoneIndex := mockUC.NewMockSafeZoneIndex(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	dispatcher := mockUC.NewMockNotificationDispatcher(t)

	return notifierFixtures{
		notifier:   NewIncidentNotifier(zoneIndex, deviceRepo, dispatcher, newDiscardLogger()),
		zoneIndex:  zoneIndex,
		deviceRepo: deviceRepo,
		dispatcher: dispatcher,
	}
}

func testIncident() *entity.Incident {
	return &entity.Incident{
		ID:           42,
		Category:     entity.CategoryTheft,
		Latitude:     25.033,
		Longitude:    121.5654,
		Title:        "Bike stolen outside the station",
		NotifyNearby: true,
		ReporterHash: strPtr("hash-reporter"),
		CreatedAt:    time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
	}
}

func TestIncidentNotifier_OptedOut(t *testing.T) {
	fx := createTestNotifier(t)
	incident := testIncident()
	incident.NotifyNearby = false

	fx.notifier.OnIncidentCreated(context.Background(), incident)
}

func TestIncidentNotifier_NoZonesMatched(t *testing.T) {
	fx := createTestNotifier(t)
	ctx := context.Background()
	incident := testIncident()

	fx.zoneIndex.EXPECT().MatchDevices(ctx, geo.NewPoint(incident.Latitude, incident.Longitude)).Return([]string{}, nil)

	fx.notifier.OnIncidentCreated(ctx, incident)
}

func TestIncidentNotifier_ExcludesReporter(t *testing.T) {
	fx := createTestNotifier(t)
	ctx := context.Background()
	incident := testIncident()

	fx.zoneIndex.EXPECT().MatchDevices(ctx, mock.Anything).Return([]string{"hash-reporter", "hash-neighbor", "hash-idle"}, nil)
	fx.deviceRepo.EXPECT().
		FindActiveByIdentityHashes(ctx, []string{"hash-neighbor", "hash-idle"}).
		Return([]*entity.UserDevice{{IdentityHash: "hash-neighbor", FCMToken: "token-neighbor", IsActive: true}}, nil)

	var payload *usecase.IncidentPayload
	fx.dispatcher.EXPECT().
		Dispatch(ctx, mock.Anything, []usecase.DispatchTarget{{IdentityHash: "hash-neighbor", FCMToken: "token-neighbor"}}).
		RunAndReturn(func(_ context.Context, p *usecase.IncidentPayload, _ []usecase.DispatchTarget) *usecase.DispatchResult {
			payload = p

			return &usecase.DispatchResult{SuccessCount: 1, Failures: []string{}}
		})

	fx.notifier.OnIncidentCreated(ctx, incident)

	require.NotNil(t, payload)
	assert.Equal(t, int64(42), payload.IncidentID)
	assert.Equal(t, "⚠️ Theft Reported Nearby", payload.Title)
	assert.Equal(t, "Bike stolen outside the station", payload.Body)
	assert.Equal(t, map[string]string{
		"incident_id": "42",
		"category":    "theft",
		"latitude":    "25.033",
		"longitude":   "121.5654",
		"timestamp":   "2026-03-01T08:30:00Z",
		"type":        "incident_alert",
	}, payload.Data)
}

func TestIncidentNotifier_OnlyReporterMatched(t *testing.T) {
	fx := createTestNotifier(t)
	ctx := context.Background()

	fx.zoneIndex.EXPECT().MatchDevices(ctx, mock.Anything).Return([]string{"hash-reporter"}, nil)

	fx.notifier.OnIncidentCreated(ctx, testIncident())
}

func TestIncidentNotifier_AnonymousIncident(t *testing.T) {
	fx := createTestNotifier(t)
	ctx := context.Background()
	incident := testIncident()
	incident.ReporterHash = nil

	fx.zoneIndex.EXPECT().MatchDevices(ctx, mock.Anything).Return([]string{"hash-a"}, nil)
	fx.deviceRepo.EXPECT().FindActiveByIdentityHashes(ctx, []string{"hash-a"}).Return(nil, nil)

	fx.notifier.OnIncidentCreated(ctx, incident)
}

func TestIncidentNotifier_ErrorsAndPanicsStayInside(t *testing.T) {
	t.Run("match error", func(t *testing.T) {
		fx := createTestNotifier(t)
		ctx := context.Background()
		fx.zoneIndex.EXPECT().MatchDevices(ctx, mock.Anything).Return(nil, errors.New("db down"))

		assert.NotPanics(t, func() { fx.notifier.OnIncidentCreated(ctx, testIncident()) })
	})

	t.Run("device lookup error", func(t *testing.T) {
		fx := createTestNotifier(t)
		ctx := context.Background()
		fx.zoneIndex.EXPECT().MatchDevices(ctx, mock.Anything).Return([]string{"hash-a"}, nil)
		fx.deviceRepo.EXPECT().FindActiveByIdentityHashes(ctx, mock.Anything).Return(nil, errors.New("db down"))

		assert.NotPanics(t, func() { fx.notifier.OnIncidentCreated(ctx, testIncident()) })
	})

	t.Run("dispatcher panic", func(t *testing.T) {
		fx := createTestNotifier(t)
		ctx := context.Background()
		fx.zoneIndex.EXPECT().MatchDevices(ctx, mock.Anything).Return([]string{"hash-a"}, nil)
		fx.deviceRepo.EXPECT().FindActiveByIdentityHashes(ctx, mock.Anything).
			Return([]*entity.UserDevice{{IdentityHash: "hash-a", FCMToken: "token-a"}}, nil)
		fx.dispatcher.EXPECT().Dispatch(ctx, mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, *usecase.IncidentPayload, []usecase.DispatchTarget) *usecase.DispatchResult {
				panic("boom")
			})

		assert.NotPanics(t, func() { fx.notifier.OnIncidentCreated(ctx, testIncident()) })
	})
}

func TestBuildIncidentPayload(t *testing.T) {
	t.Run("title is truncated by runes", func(t *testing.T) {
		incident := testIncident()
		incident.Title = strings.Repeat("火", 150)

		payload := buildIncidentPayload(incident)

		assert.Equal(t, strings.Repeat("火", 100), payload.Body)
	})

	t.Run("description is the fallback body", func(t *testing.T) {
		incident := testIncident()
		incident.Title = ""
		incident.Category = entity.CategoryMedicalEmergency
		incident.Description = strPtr(strings.Repeat("a", 120))

		payload := buildIncidentPayload(incident)

		assert.Equal(t, "⚠️ Medical Emergency Reported Nearby", payload.Title)
		assert.Equal(t, strings.Repeat("a", 100), payload.Body)
	})
}

// One zone, one registered owner: exactly one attempt row for that owner.
func TestIncidentFanout_EndToEnd(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	pushSvc := mockSvc.NewMockPushService(t)

	owner, err := f.protector.Protect("device-owner")
	require.NoError(t, err)
	outsider, err := f.protector.Protect("device-outsider")
	require.NoError(t, err)

	require.NoError(t, f.zones.CreateSafeZone(ctx, &entity.SafeZone{
		OwnerHash: owner.Hash, SealedOwner: owner.Sealed, Name: "Home",
		Latitude: 25.0330, Longitude: 121.5654, RadiusMeters: 500,
		ZoneType: entity.ZoneTypeHome, IsActive: true,
	}))
	require.NoError(t, f.zones.CreateSafeZone(ctx, &entity.SafeZone{
		OwnerHash: outsider.Hash, SealedOwner: outsider.Sealed, Name: "Work",
		Latitude: 24.0, Longitude: 120.0, RadiusMeters: 500,
		ZoneType: entity.ZoneTypeWork, IsActive: true,
	}))
	for _, ident := range []struct{ hash, sealed, token string }{
		{owner.Hash, owner.Sealed, "token-owner"},
		{outsider.Hash, outsider.Sealed, "token-outsider"},
	} {
		require.NoError(t, f.devices.UpsertDevice(ctx, &entity.UserDevice{
			IdentityHash: ident.hash, SealedIdentity: ident.sealed, FCMToken: ident.token,
			Platform: entity.PlatformAndroid, IsActive: true,
		}))
	}

	incident := f.createIncident(t, &entity.Incident{Latitude: 25.0331, Longitude: 121.5655, NotifyNearby: true})

	pushSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-owner", "⚠️ Theft Reported Nearby", "Bike stolen", mock.Anything).
		Return(nil)

	dispatcher := NewNotificationDispatcher(newTestConfig(), pushSvc, f.attempts, f.devices, newDiscardLogger())
	notifier := NewIncidentNotifier(NewSafeZoneIndex(f.zones), f.devices, dispatcher, newDiscardLogger())

	notifier.OnIncidentCreated(ctx, incident)

	attempts, err := f.attempts.FindAttemptsByIncident(ctx, incident.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, owner.Hash, attempts[0].IdentityHash)
	assert.True(t, attempts[0].Success)
}
