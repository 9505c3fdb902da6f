package repository

import (
	"context"

	"safezone/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrSafeZoneNotFound is returned when a zone id does not exist.
	ErrSafeZoneNotFound = errors.New("safe zone not found")
)

// SafeZoneRepository defines safe zone storage.
type SafeZoneRepository interface {
	CreateSafeZone(ctx context.Context, zone *entity.SafeZone) error
	FindSafeZoneByID(ctx context.Context, id uuid.UUID) (*entity.SafeZone, error)

	// FindSafeZonesByOwner lists every zone of an owner, active or not.
	FindSafeZonesByOwner(ctx context.Context, ownerHash string) ([]*entity.SafeZone, error)

	// FindActiveZones returns every active zone. Matching scans this list.
	FindActiveZones(ctx context.Context) ([]*entity.SafeZone, error)

	UpdateSafeZone(ctx context.Context, zone *entity.SafeZone) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteSafeZone(ctx context.Context, id uuid.UUID) error
}
