package main

import (
	"context"
	"log/slog"
	"os"

	"safezone/config"
	"safezone/internal/delivery"
	"safezone/internal/delivery/api"
	"safezone/internal/delivery/api/middleware"
	"safezone/internal/delivery/api/router/handler"
	"safezone/internal/infra/auth"
	"safezone/internal/infra/cache"
	"safezone/internal/infra/identity"
	logs "safezone/internal/infra/log"
	"safezone/internal/infra/notification"
	"safezone/internal/infra/persistence/postgres"
	"safezone/internal/infra/pubsub"
	"safezone/internal/infra/redis"
	"safezone/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			redis.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewIncidentRepository,
			postgres.NewSafeZoneRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			postgres.NewProfileRepository,
			postgres.NewConfirmationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewProtector,
			auth.NewJWTService,
			cache.NewLeaderboardCache,
			// Without Firebase credentials attempts are recorded as failed
			notification.NewFirebaseService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScoringService,
			impl.NewIncidentService,
			impl.NewConfirmationLedger,
			impl.NewProfileService,
			impl.NewAlertService,
			impl.NewDeviceService,
			impl.NewSafeZoneService,
			impl.NewSafeZoneIndex,
			impl.NewNotificationDispatcher,
			impl.NewIncidentNotifier,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIncidentHandler,
			handler.NewProfileHandler,
			handler.NewAlertHandler,
			handler.NewDeviceHandler,
			handler.NewSafeZoneHandler,
			handler.NewSessionHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
