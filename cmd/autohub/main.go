// Command autohub serves the marketplace HTTP API.
package main

import (
	"context"
	"log/slog"

	"autohub/config"
	"autohub/internal/delivery"
	"autohub/internal/delivery/api"
	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/router/handler"
	"autohub/internal/infra/auth"
	"autohub/internal/infra/changefeed"
	logs "autohub/internal/infra/log"
	"autohub/internal/infra/metrics"
	"autohub/internal/infra/notification"
	"autohub/internal/infra/persistence/postgres"
	"autohub/internal/infra/pubsub"
	"autohub/internal/infra/storage"
	"autohub/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			postgres.RegisterMigrations,
			delivery.Start,
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
		),
		metrics.Module,
		changefeed.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewPasswordResetRepository,
			postgres.NewProfileRepository,
			postgres.NewShopRepository,
			postgres.NewServiceRepository,
			postgres.NewSparePartRepository,
			postgres.NewOrderRepository,
			postgres.NewAppointmentRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewProfileService,
			impl.NewCatalogService,
			impl.NewInventoryService,
			impl.NewOrderService,
			impl.NewAppointmentService,
			impl.NewReviewService,
			impl.NewDashboardService,
			impl.NewActivityService,
			impl.NewUploadService,
			impl.NewWatchService,
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
			handler.NewUserHandler,
			handler.NewProfileHandler,
			handler.NewCatalogHandler,
			handler.NewInventoryHandler,
			handler.NewOrderHandler,
			handler.NewAppointmentHandler,
			handler.NewReviewHandler,
			handler.NewDashboardHandler,
			handler.NewUploadHandler,
			handler.NewWatchHandler,
			handler.NewDiagnosticsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return delivery.Provide(api.NewServer)
}
