package impl

import (
	"context"
	"log/slog"
	"time"

	"safezone/config"
	"safezone/internal/domain/repository"
	"safezone/internal/errors"
	"safezone/internal/usecase"
)

type retentionService struct {
	txManager    repository.TransactionManager
	incidentDays int
	deviceDays   int
	logger       *slog.Logger
	now          func() time.Time
}

// NewRetentionService creates the retention sweep.
func NewRetentionService(cfg *config.Config, txManager repository.TransactionManager, logger *slog.Logger) usecase.RetentionUsecase {
	return &retentionService{
		txManager:    txManager,
		incidentDays: cfg.Retention.IncidentDays,
		deviceDays:   cfg.Retention.DeviceTokenDays,
		logger:       logger,
		now:          time.Now,
	}
}

// Sweep deletes incidents and inactive registrations past retention. In a
// dry run nothing is deleted and the counts are what would go.
func (srv *retentionService) Sweep(ctx context.Context, dryRun bool) (*usecase.RetentionReport, error) {
	now := srv.now().UTC()
	report := &usecase.RetentionReport{
		DryRun:         dryRun,
		IncidentCutoff: now.AddDate(0, 0, -srv.incidentDays),
		DeviceCutoff:   now.AddDate(0, 0, -srv.deviceDays),
	}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		incidentRepo := repos.NewIncidentRepository()
		deviceRepo := repos.NewDeviceRepository()

		var err error
		if dryRun {
			if report.IncidentsPurged, err = incidentRepo.CountCreatedBefore(ctx, report.IncidentCutoff); err != nil {
				return errors.Wrap(err, "failed to count expired incidents")
			}
			if report.DevicesPurged, err = deviceRepo.CountInactiveBefore(ctx, report.DeviceCutoff); err != nil {
				return errors.Wrap(err, "failed to count expired devices")
			}

			return nil
		}

		if report.IncidentsPurged, err = incidentRepo.DeleteCreatedBefore(ctx, report.IncidentCutoff); err != nil {
			return errors.Wrap(err, "failed to delete expired incidents")
		}
		if report.DevicesPurged, err = deviceRepo.DeleteInactiveBefore(ctx, report.DeviceCutoff); err != nil {
			return errors.Wrap(err, "failed to delete expired devices")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "retention sweep failed")
	}

	srv.logger.Info("Retention sweep finished",
		slog.Bool("dry_run", dryRun),
		slog.Int64("incidents", report.IncidentsPurged),
		slog.Int64("devices", report.DevicesPurged),
	)

	return report, nil
}
