package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/geo"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	"safezone/internal/usecase"

	"github.com/google/uuid"
)

const maxSafeZoneRadiusMeters = 50000

type safeZoneService struct {
	txManager repository.TransactionManager
	zoneRepo  repository.SafeZoneRepository
	identity  service.IdentityProtector
	logger    *slog.Logger
	now       func() time.Time
}

// NewSafeZoneService creates the safe zone management service.
func NewSafeZoneService(
	txManager repository.TransactionManager,
	zoneRepo repository.SafeZoneRepository,
	identity service.IdentityProtector,
	logger *slog.Logger,
) usecase.SafeZoneUsecase {
	return &safeZoneService{
		txManager: txManager,
		zoneRepo:  zoneRepo,
		identity:  identity,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *safeZoneService) CreateZone(ctx context.Context, deviceID string, input *usecase.SafeZoneInput) (*entity.SafeZone, error) {
	if err := validateSafeZoneInput(input); err != nil {
		return nil, err
	}

	owner, err := protectIdentity(srv.identity, deviceID)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	zone := &entity.SafeZone{
		ID:            uuid.New(),
		OwnerHash:     owner.Hash,
		SealedOwner:   owner.Sealed,
		ZoneType:      entity.ZoneTypeCustom,
		IsActive:      true,
		NotifyOnEnter: true,
		NotifyOnExit:  true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	applySafeZoneInput(zone, input)

	if err := srv.zoneRepo.CreateSafeZone(ctx, zone); err != nil {
		return nil, errors.Wrap(err, "failed to create safe zone")
	}

	srv.logger.Info("Safe zone created", slog.String("zone_id", zone.ID.String()), slog.String("zone_type", string(zone.ZoneType)))

	return zone, nil
}

func (srv *safeZoneService) ListZones(ctx context.Context, deviceID string) ([]*entity.SafeZone, error) {
	hash, err := hashIdentity(srv.identity, deviceID)
	if err != nil {
		return nil, err
	}

	zones, err := srv.zoneRepo.FindSafeZonesByOwner(ctx, hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list safe zones")
	}

	return zones, nil
}

func (srv *safeZoneService) UpdateZone(ctx context.Context, deviceID string, zoneID uuid.UUID, input *usecase.SafeZoneInput) (*entity.SafeZone, error) {
	if err := validateSafeZoneInput(input); err != nil {
		return nil, err
	}

	return srv.modifyOwned(ctx, deviceID, zoneID, func(zoneRepo repository.SafeZoneRepository, zone *entity.SafeZone) error {
		applySafeZoneInput(zone, input)
		zone.UpdatedAt = srv.now().UTC()

		return zoneRepo.UpdateSafeZone(ctx, zone)
	})
}

func (srv *safeZoneService) SetZoneActive(ctx context.Context, deviceID string, zoneID uuid.UUID, active bool) (*entity.SafeZone, error) {
	return srv.modifyOwned(ctx, deviceID, zoneID, func(zoneRepo repository.SafeZoneRepository, zone *entity.SafeZone) error {
		zone.IsActive = active

		return zoneRepo.SetActive(ctx, zone.ID, active)
	})
}

func (srv *safeZoneService) DeleteZone(ctx context.Context, deviceID string, zoneID uuid.UUID) error {
	_, err := srv.modifyOwned(ctx, deviceID, zoneID, func(zoneRepo repository.SafeZoneRepository, zone *entity.SafeZone) error {
		return zoneRepo.DeleteSafeZone(ctx, zone.ID)
	})

	return err
}

// modifyOwned loads the zone, checks the caller owns it and runs fn, all in
// one transaction.
func (srv *safeZoneService) modifyOwned(
	ctx context.Context,
	deviceID string,
	zoneID uuid.UUID,
	fn func(zoneRepo repository.SafeZoneRepository, zone *entity.SafeZone) error,
) (*entity.SafeZone, error) {
	hash, err := hashIdentity(srv.identity, deviceID)
	if err != nil {
		return nil, err
	}

	var zone *entity.SafeZone

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		zoneRepo := repos.NewSafeZoneRepository()

		found, err := zoneRepo.FindSafeZoneByID(ctx, zoneID)
		if err != nil {
			if errors.Is(err, repository.ErrSafeZoneNotFound) {
				return errors.Wrap(domainerrors.ErrSafeZoneNotFound, "safe zone not found")
			}

			return errors.Wrap(err, "failed to find safe zone")
		}

		if found.OwnerHash != hash {
			return errors.Wrap(domainerrors.ErrSafeZoneOwnershipViolation, "safe zone belongs to another device")
		}

		if err := fn(zoneRepo, found); err != nil {
			if errors.Is(err, repository.ErrSafeZoneNotFound) {
				return errors.Wrap(domainerrors.ErrSafeZoneNotFound, "safe zone not found")
			}

			return errors.Wrap(err, "failed to modify safe zone")
		}
		zone = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return zone, nil
}

func validateSafeZoneInput(input *usecase.SafeZoneInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "name is required")
	}
	if !geo.IsValidCoordinate(input.Latitude, input.Longitude) {
		return errors.WithStack(domainerrors.ErrInvalidCoordinates)
	}
	if input.RadiusMeters <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "radius must be greater than 0")
	}
	if input.RadiusMeters > maxSafeZoneRadiusMeters {
		return errors.Wrap(domainerrors.ErrValidationFailed, "radius must be at most 50000 meters")
	}
	if input.ZoneType != "" && !input.ZoneType.Valid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown zone type %q", input.ZoneType)
	}

	return nil
}

func applySafeZoneInput(zone *entity.SafeZone, input *usecase.SafeZoneInput) {
	zone.Name = strings.TrimSpace(input.Name)
	zone.Latitude = input.Latitude
	zone.Longitude = input.Longitude
	zone.RadiusMeters = input.RadiusMeters
	if input.ZoneType != "" {
		zone.ZoneType = input.ZoneType
	}
	if input.IsActive != nil {
		zone.IsActive = *input.IsActive
	}
	if input.NotifyOnEnter != nil {
		zone.NotifyOnEnter = *input.NotifyOnEnter
	}
	if input.NotifyOnExit != nil {
		zone.NotifyOnExit = *input.NotifyOnExit
	}
}
