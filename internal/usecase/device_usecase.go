package usecase

import (
	"context"

	"safezone/internal/domain/entity"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
	Platform string `json:"platform" validate:"required,oneof=android ios web"`
}

// DeviceUsecase defines the interface for device management use cases.
// The device id is the caller's plaintext identity.
type DeviceUsecase interface {
	// RegisterDevice registers the device or refreshes its existing registration
	RegisterDevice(ctx context.Context, deviceID string, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateFCMToken replaces the delivery token of the registration
	UpdateFCMToken(ctx context.Context, deviceID, fcmToken string) error

	// GetDevice returns the caller's registration
	GetDevice(ctx context.Context, deviceID string) (*entity.UserDevice, error)

	// DeactivateDevice stops notifications without deleting the registration
	DeactivateDevice(ctx context.Context, deviceID string) error
}
