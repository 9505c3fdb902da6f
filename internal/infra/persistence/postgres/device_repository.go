package postgres

import (
	"context"
	"time"

	"safezone/internal/domain/entity"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/repository"
	"safezone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertDevice inserts a registration or refreshes the existing one for the identity.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	device.IsActive = true
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "identity_hash"}},
			DoUpdates: clause.AssignmentColumns([]string{"sealed_identity", "fcm_token", "platform", "is_active", "updated_at"}),
		}).
		Create(deviceM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	// The conflict path keeps the original id and created_at; read them back.
	stored, err := repo.FindDeviceByIdentityHash(ctx, device.IdentityHash)
	if err != nil {
		return err
	}
	*device = *stored

	return nil
}

// FindDeviceByIdentityHash retrieves the registration for one identity.
func (repo *deviceRepository) FindDeviceByIdentityHash(ctx context.Context, identityHash string) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("identity_hash = ?", identityHash).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by identity")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindActiveByIdentityHashes resolves identities to active registrations with one IN query.
func (repo *deviceRepository) FindActiveByIdentityHashes(ctx context.Context, identityHashes []string) ([]*entity.UserDevice, error) {
	if len(identityHashes) == 0 {
		return []*entity.UserDevice{}, nil
	}

	var deviceModels []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("identity_hash IN ? AND is_active = ?", identityHashes, true).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateFCMToken replaces the delivery token of an identity.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, identityHash, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("identity_hash = ?", identityHash).
		Updates(map[string]any{
			"fcm_token": fcmToken,
			"is_active": true,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice marks the identity's registration inactive.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, identityHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("identity_hash = ?", identityHash).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByToken marks every registration holding the token inactive.
func (repo *deviceRepository) DeactivateByToken(ctx context.Context, fcmToken string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token = ? AND is_active = ?", fcmToken, true).
		Update("is_active", false)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices by token")
	}

	return result.RowsAffected, nil
}

// CountInactiveBefore counts inactive registrations untouched since cutoff.
func (repo *deviceRepository) CountInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("is_active = ? AND updated_at < ?", false, cutoff).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count inactive devices")
	}

	return count, nil
}

// DeleteInactiveBefore removes inactive registrations untouched since cutoff.
func (repo *deviceRepository) DeleteInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("is_active = ? AND updated_at < ?", false, cutoff).
		Delete(&model.UserDeviceModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete inactive devices")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM UserDeviceModel to a domain UserDevice entity.
func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:             data.ID,
		IdentityHash:   data.IdentityHash,
		SealedIdentity: data.SealedIdentity,
		FCMToken:       data.FCMToken,
		Platform:       data.Platform,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain UserDevice entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:             data.ID,
		IdentityHash:   data.IdentityHash,
		SealedIdentity: data.SealedIdentity,
		FCMToken:       data.FCMToken,
		Platform:       data.Platform,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
