// Package delivery holds the entry points that expose the use cases.
package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// Delivery is a long-running server started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Provide registers constructor as one of the deliveries started by Start.
func Provide(constructor any) fx.Option {
	return fx.Provide(fx.Annotate(constructor, fx.ResultTags(`group:"deliveries"`)))
}

type StartParams struct {
	fx.In

	Lc         fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Start serves every delivery once the application has started. A delivery
// that fails shuts the whole application down so OnStop hooks still run.
func Start(params StartParams) {
	ctx, cancel := context.WithCancel(context.Background())

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go serve(ctx, d, params)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func serve(ctx context.Context, d Delivery, params StartParams) {
	err := d.Serve(ctx)
	if err == nil || ctx.Err() != nil {
		return
	}

	params.Logger.Error("Delivery stopped unexpectedly", slog.Any("error", err))
	if shutdownErr := params.Shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
		params.Logger.Error("Failed to shut down", slog.Any("error", shutdownErr))
		os.Exit(1)
	}
}
