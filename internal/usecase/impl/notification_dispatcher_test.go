package impl

import (
	"context"
	"testing"
	"time"

	"safezone/internal/domain/entity"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	mockRepo "safezone/internal/mocks/repository"
	mockSvc "safezone/internal/mocks/service"
	"safezone/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherFixtures struct {
	dispatcher       usecase.NotificationDispatcher
	pushSvc          *mockSvc.MockPushService
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
}

func createTestDispatcher(t *testing.T, withTransport bool) dispatcherFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	var (
		pushMock *mockSvc.MockPushService
		pushSvc  service.PushService
	)
	if withTransport {
		pushMock = mockSvc.NewMockPushService(t)
		pushSvc = pushMock
	}

	dispatcher := NewNotificationDispatcher(newTestConfig(), pushSvc, notificationRepo, deviceRepo, newDiscardLogger())
	dispatcher.(*notificationDispatcher).now = fixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	return dispatcherFixtures{
		dispatcher:       dispatcher,
		pushSvc:          pushMock,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
	}
}

func testPayload() *usecase.IncidentPayload {
	return &usecase.IncidentPayload{
		IncidentID: 7,
		Title:      "⚠️ Theft Reported Nearby",
		Body:       "Bike stolen",
		Data:       map[string]string{"incident_id": "7", "type": "incident_alert"},
	}
}

func TestNotificationDispatcher_EmptyTargets(t *testing.T) {
	fx := createTestDispatcher(t, true)

	result := fx.dispatcher.Dispatch(context.Background(), testPayload(), nil)

	assert.Equal(t, 0, result.SuccessCount)
	assert.Empty(t, result.Failures)
}

func TestNotificationDispatcher_TransportNotConfigured(t *testing.T) {
	fx := createTestDispatcher(t, false)
	ctx := context.Background()
	targets := []usecase.DispatchTarget{
		{IdentityHash: "hash-a", FCMToken: "token-a"},
		{IdentityHash: "hash-b", FCMToken: "token-b"},
	}

	var recorded []*entity.NotificationAttempt
	fx.notificationRepo.EXPECT().
		CreateAttempt(mock.Anything, mock.AnythingOfType("*entity.NotificationAttempt")).
		Run(func(_ context.Context, attempt *entity.NotificationAttempt) {
			recorded = append(recorded, attempt)
		}).
		Return(nil).
		Times(2)

	result := fx.dispatcher.Dispatch(ctx, testPayload(), targets)

	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, []string{"hash-a", "hash-b"}, result.Failures)
	require.Len(t, recorded, 2)
	for _, attempt := range recorded {
		assert.False(t, attempt.Success)
		assert.Equal(t, "push transport not configured", attempt.ErrorMessage)
		assert.Equal(t, int64(7), attempt.IncidentID)
	}
}

func TestNotificationDispatcher_MixedOutcomes(t *testing.T) {
	fx := createTestDispatcher(t, true)
	ctx := context.Background()
	payload := testPayload()
	targets := []usecase.DispatchTarget{
		{IdentityHash: "hash-ok", FCMToken: "token-ok"},
		{IdentityHash: "hash-dead", FCMToken: "token-dead"},
		{IdentityHash: "hash-flaky", FCMToken: "token-flaky"},
	}

	fx.pushSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-ok", payload.Title, payload.Body, payload.Data).
		Return(nil)
	fx.pushSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-dead", payload.Title, payload.Body, payload.Data).
		Return(errors.Join(service.ErrInvalidPushToken, errors.New("registration-token-not-registered")))
	fx.pushSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-flaky", payload.Title, payload.Body, payload.Data).
		Return(errors.New("unavailable"))

	recorded := map[string]*entity.NotificationAttempt{}
	fx.notificationRepo.EXPECT().
		CreateAttempt(mock.Anything, mock.AnythingOfType("*entity.NotificationAttempt")).
		RunAndReturn(func(_ context.Context, attempt *entity.NotificationAttempt) error {
			recorded[attempt.IdentityHash] = attempt
			if attempt.IdentityHash == "hash-ok" {
				return errors.New("insert failed")
			}

			return nil
		}).
		Times(3)
	fx.deviceRepo.EXPECT().DeactivateByToken(mock.Anything, "token-dead").Return(1, nil)

	result := fx.dispatcher.Dispatch(ctx, payload, targets)

	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, []string{"hash-dead", "hash-flaky"}, result.Failures)
	require.Len(t, recorded, 3)
	assert.True(t, recorded["hash-ok"].Success)
	assert.False(t, recorded["hash-dead"].Success)
	assert.Contains(t, recorded["hash-flaky"].ErrorMessage, "unavailable")
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), recorded["hash-flaky"].SentAt)
}

func TestNotificationDispatcher_SendIsBounded(t *testing.T) {
	fx := createTestDispatcher(t, true)
	ctx := context.Background()

	fx.pushSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-a", mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(sendCtx context.Context, _, _, _ string, _ map[string]string) error {
			deadline, ok := sendCtx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)

			return nil
		})
	fx.notificationRepo.EXPECT().CreateAttempt(mock.Anything, mock.Anything).Return(nil)

	result := fx.dispatcher.Dispatch(ctx, testPayload(), []usecase.DispatchTarget{{IdentityHash: "hash-a", FCMToken: "token-a"}})

	assert.Equal(t, 1, result.SuccessCount)
	assert.Empty(t, result.Failures)
}

func TestNotificationDispatcher_DeactivateFailureIsLogged(t *testing.T) {
	fx := createTestDispatcher(t, true)
	ctx := context.Background()

	fx.pushSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-a", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.Join(service.ErrInvalidPushToken, errors.New("invalid-argument")))
	fx.notificationRepo.EXPECT().CreateAttempt(mock.Anything, mock.Anything).Return(nil)
	fx.deviceRepo.EXPECT().DeactivateByToken(mock.Anything, "token-a").Return(0, errors.New("db down"))

	result := fx.dispatcher.Dispatch(ctx, testPayload(), []usecase.DispatchTarget{{IdentityHash: "hash-a", FCMToken: "token-a"}})

	assert.Equal(t, []string{"hash-a"}, result.Failures)
}

func TestNotificationDispatcher_RecordsAttemptsAfterCancellation(t *testing.T) {
	f := newSQLiteFixture(t)
	incident := f.createIncident(t, &entity.Incident{Latitude: 25.03, Longitude: 121.56})
	pushSvc := mockSvc.NewMockPushService(t)
	dispatcher := NewNotificationDispatcher(newTestConfig(), pushSvc, f.attempts, f.devices, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pushSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-a", mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, string, string, map[string]string) error {
			cancel()

			return context.Canceled
		})
	pushSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-b", mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(sendCtx context.Context, _, _, _ string, _ map[string]string) error {
			return sendCtx.Err()
		})

	payload := testPayload()
	payload.IncidentID = incident.ID
	result := dispatcher.Dispatch(ctx, payload, []usecase.DispatchTarget{
		{IdentityHash: f.hash(t, "device-a"), FCMToken: "token-a"},
		{IdentityHash: f.hash(t, "device-b"), FCMToken: "token-b"},
	})

	assert.Len(t, result.Failures, 2)
	require.ErrorIs(t, ctx.Err(), context.Canceled)

	summary, err := f.attempts.SummarizeByIncident(context.Background(), incident.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, summary.Total)
	assert.EqualValues(t, 2, summary.Failed)
}
