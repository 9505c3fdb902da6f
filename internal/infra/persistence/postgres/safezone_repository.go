package postgres

import (
	"context"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/repository"
	"safezone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type safeZoneRepository struct {
	db *gorm.DB
}

// NewSafeZoneRepository is the constructor for safeZoneRepository.
func NewSafeZoneRepository(db *gorm.DB) repository.SafeZoneRepository {
	return &safeZoneRepository{
		db: db,
	}
}

// CreateSafeZone persists a new zone.
func (repo *safeZoneRepository) CreateSafeZone(ctx context.Context, zone *entity.SafeZone) error {
	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	zoneM := fromSafeZoneDomain(zone)

	if err := repo.db.WithContext(ctx).Create(zoneM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("zone coordinates or radius out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create safe zone")
	}

	zone.CreatedAt = zoneM.CreatedAt
	zone.UpdatedAt = zoneM.UpdatedAt

	return nil
}

// FindSafeZoneByID retrieves a zone by id.
func (repo *safeZoneRepository) FindSafeZoneByID(ctx context.Context, id uuid.UUID) (*entity.SafeZone, error) {
	var zoneM model.SafeZoneModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&zoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSafeZoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find safe zone by ID")
	}

	return toSafeZoneDomain(&zoneM), nil
}

// FindSafeZonesByOwner lists every zone of an owner.
func (repo *safeZoneRepository) FindSafeZonesByOwner(ctx context.Context, ownerHash string) ([]*entity.SafeZone, error) {
	var zoneModels []*model.SafeZoneModel

	if err := repo.db.WithContext(ctx).
		Where("owner_hash = ?", ownerHash).
		Order("created_at ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find safe zones by owner")
	}

	return toSafeZoneDomainList(zoneModels), nil
}

// FindActiveZones returns every active zone.
func (repo *safeZoneRepository) FindActiveZones(ctx context.Context) ([]*entity.SafeZone, error) {
	var zoneModels []*model.SafeZoneModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active safe zones")
	}

	return toSafeZoneDomainList(zoneModels), nil
}

// UpdateSafeZone writes every mutable field of the zone.
func (repo *safeZoneRepository) UpdateSafeZone(ctx context.Context, zone *entity.SafeZone) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SafeZoneModel{}).
		Where("id = ?", zone.ID).
		Updates(map[string]any{
			"name":            zone.Name,
			"latitude":        zone.Latitude,
			"longitude":       zone.Longitude,
			"radius_meters":   zone.RadiusMeters,
			"zone_type":       string(zone.ZoneType),
			"is_active":       zone.IsActive,
			"notify_on_enter": zone.NotifyOnEnter,
			"notify_on_exit":  zone.NotifyOnExit,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("zone coordinates or radius out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update safe zone")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSafeZoneNotFound
	}

	return nil
}

// SetActive toggles whether the zone participates in matching.
func (repo *safeZoneRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SafeZoneModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to toggle safe zone")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSafeZoneNotFound
	}

	return nil
}

// DeleteSafeZone removes a zone.
func (repo *safeZoneRepository) DeleteSafeZone(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SafeZoneModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete safe zone")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSafeZoneNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSafeZoneDomainList(zoneModels []*model.SafeZoneModel) []*entity.SafeZone {
	zones := make([]*entity.SafeZone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zones = append(zones, toSafeZoneDomain(zoneM))
	}

	return zones
}

func toSafeZoneDomain(data *model.SafeZoneModel) *entity.SafeZone {
	if data == nil {
		return nil
	}

	return &entity.SafeZone{
		ID:            data.ID,
		OwnerHash:     data.OwnerHash,
		SealedOwner:   data.SealedOwner,
		Name:          data.Name,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		RadiusMeters:  data.RadiusMeters,
		ZoneType:      entity.ZoneType(data.ZoneType),
		IsActive:      data.IsActive,
		NotifyOnEnter: data.NotifyOnEnter,
		NotifyOnExit:  data.NotifyOnExit,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromSafeZoneDomain(data *entity.SafeZone) *model.SafeZoneModel {
	if data == nil {
		return nil
	}

	return &model.SafeZoneModel{
		ID:            data.ID,
		OwnerHash:     data.OwnerHash,
		SealedOwner:   data.SealedOwner,
		Name:          data.Name,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		RadiusMeters:  data.RadiusMeters,
		ZoneType:      string(data.ZoneType),
		IsActive:      data.IsActive,
		NotifyOnEnter: data.NotifyOnEnter,
		NotifyOnExit:  data.NotifyOnExit,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
