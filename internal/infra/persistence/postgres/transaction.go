// Package postgres contains the GORM persistence layer, run against PostgreSQL or SQLite.
package postgres

import (
	"context"
	"log/slog"

	deliverycontext "safezone/internal/delivery/context"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

func (f *gormRepositoryFactory) NewIncidentRepository() repository.IncidentRepository {
	return NewIncidentRepository(f.tx)
}

func (f *gormRepositoryFactory) NewSafeZoneRepository() repository.SafeZoneRepository {
	return NewSafeZoneRepository(f.tx)
}

func (f *gormRepositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return NewDeviceRepository(f.tx)
}

func (f *gormRepositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

func (f *gormRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) NewConfirmationRepository() repository.ConfirmationRepository {
	return NewConfirmationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in one transaction. Begin and commit failures surface as
// DATABASE_EXECUTE_FAILED; errors returned by fn pass through unchanged so
// domain errors keep their codes.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.NewDatabaseExecuteError(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).Error("Transaction rollback failed",
				slog.Any("error", rbErr),
				slog.Any("cause", err),
			)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to commit transaction")
	}

	return nil
}
