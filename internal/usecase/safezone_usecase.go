package usecase

import (
	"context"

	"safezone/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// SafeZoneIndex resolves which identities own an active zone containing a point.
type SafeZoneIndex interface {
	// MatchDevices returns distinct owner hashes in first-seen order. The
	// scan is linear in the number of active zones.
	MatchDevices(ctx context.Context, point orb.Point) ([]string, error)
}

// SafeZoneInput carries the client-editable zone fields. Nil toggles keep
// their defaults on create and their stored value on update.
type SafeZoneInput struct {
	Name          string          `json:"name" validate:"required,max=100"`
	Latitude      float64         `json:"latitude" validate:"latitude"`
	Longitude     float64         `json:"longitude" validate:"longitude"`
	RadiusMeters  float64         `json:"radius" validate:"gt=0,lte=50000"`
	ZoneType      entity.ZoneType `json:"zone_type" validate:"omitempty,oneof=home work school custom"`
	IsActive      *bool           `json:"is_active"`
	NotifyOnEnter *bool           `json:"notify_on_enter"`
	NotifyOnExit  *bool           `json:"notify_on_exit"`
}

// SafeZoneUsecase manages the zones owned by the calling device.
type SafeZoneUsecase interface {
	CreateZone(ctx context.Context, deviceID string, input *SafeZoneInput) (*entity.SafeZone, error)
	ListZones(ctx context.Context, deviceID string) ([]*entity.SafeZone, error)
	UpdateZone(ctx context.Context, deviceID string, zoneID uuid.UUID, input *SafeZoneInput) (*entity.SafeZone, error)

	// SetZoneActive toggles matching without deleting the zone.
	SetZoneActive(ctx context.Context, deviceID string, zoneID uuid.UUID, active bool) (*entity.SafeZone, error)
	DeleteZone(ctx context.Context, deviceID string, zoneID uuid.UUID) error
}
