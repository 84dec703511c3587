// Command notifier receives marketplace events pushed by Pub/Sub and turns
// them into device push notifications.
package main

import (
	"context"
	"log/slog"

	"autohub/config"
	"autohub/internal/delivery"
	"autohub/internal/delivery/worker"
	"autohub/internal/delivery/worker/handler"
	logs "autohub/internal/infra/log"
	"autohub/internal/infra/notification"
	"autohub/internal/infra/persistence/postgres"
	"autohub/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With(slog.String("component", "fx"))}
		}),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewProfileRepository,
			notification.New,
			impl.NewNotificationService,
			handler.NewPushHandler,
		),
		delivery.Provide(worker.NewServer),
		fx.Invoke(delivery.Start),
	).Run()
}
