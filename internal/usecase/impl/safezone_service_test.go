package impl

import (
	"context"
	"testing"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/errors"
	"safezone/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func homeZoneInput() *usecase.SafeZoneInput {
	return &usecase.SafeZoneInput{
		Name:         " Home ",
		Latitude:     25.0330,
		Longitude:    121.5654,
		RadiusMeters: 500,
	}
}

func TestSafeZoneService_CreateZone(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	svc := NewSafeZoneService(f.txManager, f.zones, f.protector, newDiscardLogger())

	zone, err := svc.CreateZone(ctx, "device-owner", homeZoneInput())

	require.NoError(t, err)
	assert.Equal(t, "Home", zone.Name)
	assert.Equal(t, entity.ZoneTypeCustom, zone.ZoneType)
	assert.True(t, zone.IsActive)
	assert.True(t, zone.NotifyOnEnter)
	assert.True(t, zone.NotifyOnExit)
	assert.Equal(t, f.hash(t, "device-owner"), zone.OwnerHash)

	zones, err := svc.ListZones(ctx, "device-owner")
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, zone.ID, zones[0].ID)

	others, err := svc.ListZones(ctx, "device-other")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestSafeZoneService_CreateZone_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.SafeZoneInput)
		target error
	}{
		{"blank name", func(in *usecase.SafeZoneInput) { in.Name = "  " }, domainerrors.ErrValidationFailed},
		{"zero radius", func(in *usecase.SafeZoneInput) { in.RadiusMeters = 0 }, domainerrors.ErrValidationFailed},
		{"radius too large", func(in *usecase.SafeZoneInput) { in.RadiusMeters = 50001 }, domainerrors.ErrValidationFailed},
		{"bad coordinates", func(in *usecase.SafeZoneInput) { in.Latitude = -95 }, domainerrors.ErrInvalidCoordinates},
		{"unknown zone type", func(in *usecase.SafeZoneInput) { in.ZoneType = "castle" }, domainerrors.ErrValidationFailed},
	}

	f := newSQLiteFixture(t)
	svc := NewSafeZoneService(f.txManager, f.zones, f.protector, newDiscardLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := homeZoneInput()
			tt.mutate(input)

			zone, err := svc.CreateZone(context.Background(), "device-owner", input)

			require.Error(t, err)
			assert.Nil(t, zone)
			assert.True(t, errors.Is(err, tt.target))
		})
	}

	t.Run("radius at the limit", func(t *testing.T) {
		input := homeZoneInput()
		input.RadiusMeters = 50000

		_, err := svc.CreateZone(context.Background(), "device-owner", input)

		require.NoError(t, err)
	})
}

func TestSafeZoneService_UpdateAndToggle(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	svc := NewSafeZoneService(f.txManager, f.zones, f.protector, newDiscardLogger())

	zone, err := svc.CreateZone(ctx, "device-owner", homeZoneInput())
	require.NoError(t, err)

	input := homeZoneInput()
	input.Name = "Office"
	input.ZoneType = entity.ZoneTypeWork
	input.RadiusMeters = 250
	input.NotifyOnExit = boolPtr(false)

	updated, err := svc.UpdateZone(ctx, "device-owner", zone.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Office", updated.Name)
	assert.Equal(t, entity.ZoneTypeWork, updated.ZoneType)
	assert.False(t, updated.NotifyOnExit)
	assert.True(t, updated.NotifyOnEnter)

	paused, err := svc.SetZoneActive(ctx, "device-owner", zone.ID, false)
	require.NoError(t, err)
	assert.False(t, paused.IsActive)

	active, err := f.zones.FindActiveZones(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	stored, err := f.zones.FindSafeZoneByID(ctx, zone.ID)
	require.NoError(t, err)
	assert.Equal(t, 250.0, stored.RadiusMeters)
	assert.False(t, stored.IsActive)
}

func TestSafeZoneService_Ownership(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	svc := NewSafeZoneService(f.txManager, f.zones, f.protector, newDiscardLogger())

	zone, err := svc.CreateZone(ctx, "device-owner", homeZoneInput())
	require.NoError(t, err)

	_, err = svc.UpdateZone(ctx, "device-intruder", zone.ID, homeZoneInput())
	assert.True(t, errors.Is(err, domainerrors.ErrSafeZoneOwnershipViolation))

	_, err = svc.SetZoneActive(ctx, "device-intruder", zone.ID, false)
	assert.True(t, errors.Is(err, domainerrors.ErrSafeZoneOwnershipViolation))

	err = svc.DeleteZone(ctx, "device-intruder", zone.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSafeZoneOwnershipViolation))

	stored, err := f.zones.FindSafeZoneByID(ctx, zone.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestSafeZoneService_DeleteZone(t *testing.T) {
	f := newSQLiteFixture(t)
	ctx := context.Background()
	svc := NewSafeZoneService(f.txManager, f.zones, f.protector, newDiscardLogger())

	zone, err := svc.CreateZone(ctx, "device-owner", homeZoneInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteZone(ctx, "device-owner", zone.ID))

	err = svc.DeleteZone(ctx, "device-owner", zone.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrSafeZoneNotFound))

	_, err = svc.SetZoneActive(ctx, "device-owner", uuid.New(), true)
	assert.True(t, errors.Is(err, domainerrors.ErrSafeZoneNotFound))
}
