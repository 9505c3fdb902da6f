package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	"safezone/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	identity   service.IdentityProtector
	logger     *slog.Logger
	now        func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	identity service.IdentityProtector,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		identity:   identity,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers the identity or refreshes its existing row
func (s *deviceService) RegisterDevice(ctx context.Context, deviceID string, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	identity, err := protectIdentity(s.identity, deviceID)
	if err != nil {
		return nil, err
	}

	if !validPlatform(deviceInfo.Platform) {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unsupported platform %q", deviceInfo.Platform)
	}

	now := s.now().UTC()
	device := &entity.UserDevice{
		ID:             uuid.New(),
		IdentityHash:   identity.Hash,
		SealedIdentity: identity.Sealed,
		FCMToken:       deviceInfo.FCMToken,
		Platform:       deviceInfo.Platform,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	registered, err := s.deviceRepo.FindDeviceByIdentityHash(ctx, identity.Hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload device")
	}

	s.log(ctx).Info("Device registered", slog.String("platform", registered.Platform))

	return registered, nil
}

// UpdateFCMToken replaces the delivery token of the caller's registration
func (s *deviceService) UpdateFCMToken(ctx context.Context, deviceID, fcmToken string) error {
	hash, err := hashIdentity(s.identity, deviceID)
	if err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, hash, fcmToken); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not registered")
		}

		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetDevice returns the caller's registration
func (s *deviceService) GetDevice(ctx context.Context, deviceID string) (*entity.UserDevice, error) {
	hash, err := hashIdentity(s.identity, deviceID)
	if err != nil {
		return nil, err
	}

	device, err := s.deviceRepo.FindDeviceByIdentityHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not registered")
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return device, nil
}

// DeactivateDevice stops notifications for the caller (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, deviceID string) error {
	hash, err := hashIdentity(s.identity, deviceID)
	if err != nil {
		return err
	}

	if err := s.deviceRepo.DeactivateDevice(ctx, hash); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not registered")
		}

		return errors.Wrap(err, "failed to deactivate device")
	}

	s.log(ctx).Info("Device deactivated")

	return nil
}

func validPlatform(platform string) bool {
	switch platform {
	case entity.PlatformAndroid, entity.PlatformIOS, entity.PlatformWeb:
		return true
	default:
		return false
	}
}
