package impl

import (
	"context"
	"testing"
	"time"

	"safezone/internal/domain/entity"
	"safezone/internal/errors"
	"safezone/internal/infra/persistence/model"
	mockRepo "safezone/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetentionService_Sweep(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := NewRetentionService(newTestConfig(), f.txManager, newDiscardLogger())
	svc.(*retentionService).now = fixedClock(now)

	expired := f.createIncident(t, &entity.Incident{CreatedAt: now.AddDate(0, 0, -91)})
	kept := f.createIncident(t, &entity.Incident{CreatedAt: now.AddDate(0, 0, -89)})
	require.NoError(t, f.attempts.CreateAttempt(ctx, &entity.NotificationAttempt{
		IncidentID: expired.ID, IdentityHash: f.hash(t, "device-a"), Success: true, SentAt: expired.CreatedAt,
	}))

	for _, deviceID := range []string{"device-stale", "device-live"} {
		ident, err := f.protector.Protect(deviceID)
		require.NoError(t, err)
		require.NoError(t, f.devices.UpsertDevice(ctx, &entity.UserDevice{
			IdentityHash: ident.Hash, SealedIdentity: ident.Sealed, FCMToken: "token-" + deviceID,
			Platform: entity.PlatformAndroid, CreatedAt: now, UpdatedAt: now,
		}))
	}
	require.NoError(t, f.devices.DeactivateDevice(ctx, f.hash(t, "device-stale")))
	require.NoError(t, f.db.Model(&model.UserDeviceModel{}).
		Where("identity_hash = ?", f.hash(t, "device-stale")).
		Update("updated_at", now.AddDate(0, 0, -200)).Error)

	dry, err := svc.Sweep(ctx, true)
	require.NoError(t, err)
	assert.True(t, dry.DryRun)
	assert.Equal(t, int64(1), dry.IncidentsPurged)
	assert.Equal(t, int64(1), dry.DevicesPurged)
	assert.Equal(t, now.AddDate(0, 0, -90), dry.IncidentCutoff)
	assert.Equal(t, now.AddDate(0, 0, -180), dry.DeviceCutoff)

	_, err = f.incidents.FindIncidentByID(ctx, expired.ID)
	require.NoError(t, err, "dry run must not delete")

	report, err := svc.Sweep(ctx, false)
	require.NoError(t, err)
	assert.False(t, report.DryRun)
	assert.Equal(t, int64(1), report.IncidentsPurged)
	assert.Equal(t, int64(1), report.DevicesPurged)

	_, err = f.incidents.FindIncidentByID(ctx, kept.ID)
	require.NoError(t, err)
	_, err = f.devices.FindDeviceByIdentityHash(ctx, f.hash(t, "device-live"))
	require.NoError(t, err)

	attempts, err := f.attempts.FindAttemptsByIncident(ctx, expired.ID)
	require.NoError(t, err)
	assert.Empty(t, attempts)
}

func TestRetentionService_SweepError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	ctx := context.Background()
	svc := NewRetentionService(newTestConfig(), txManager, newDiscardLogger())

	txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("database is locked"))

	report, err := svc.Sweep(ctx, false)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "retention sweep failed")
}
