// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"safezone/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when no registration exists for an identity.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device registration storage.
type DeviceRepository interface {
	// UpsertDevice registers the identity or refreshes its token, platform and active flag.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByIdentityHash retrieves the registration for one identity.
	FindDeviceByIdentityHash(ctx context.Context, identityHash string) (*entity.UserDevice, error)

	// FindActiveByIdentityHashes resolves identities to their active registrations.
	// Identities without an active registration are absent from the result.
	FindActiveByIdentityHashes(ctx context.Context, identityHashes []string) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the delivery token of an identity.
	UpdateFCMToken(ctx context.Context, identityHash, fcmToken string) error

	// DeactivateDevice marks the identity's registration inactive.
	DeactivateDevice(ctx context.Context, identityHash string) error

	// DeactivateByToken marks every registration holding fcmToken inactive.
	DeactivateByToken(ctx context.Context, fcmToken string) (int64, error)

	// CountInactiveBefore counts inactive registrations not updated since cutoff.
	CountInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteInactiveBefore removes inactive registrations not updated since cutoff.
	DeleteInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
