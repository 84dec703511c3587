package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"autohub/config"
	logs "autohub/internal/infra/log"
	"autohub/internal/infra/persistence/migrations"
	"autohub/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - up:     apply every pending migration
// - down:   roll back the latest migration
// - status: print the applied state of each migration

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	switch command {
	case "up", "down", "status":
	default:
		printUsage()
		os.Exit(1)
	}

	var runErr error

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(func(params runParams) {
			params.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					go func() {
						runErr = run(context.Background(), command, params)
						if err := params.Shutdown(); err != nil {
							params.Logger.Error("Failed to shutdown", slog.Any("error", err))
						}
					}()

					return nil
				},
			})
		}),
	)

	app.Run()

	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", runErr)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, params runParams) error {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	switch command {
	case "up":
		return migrations.Up(ctx, sqlDB, params.Logger)
	case "down":
		return migrations.Down(ctx, sqlDB)
	default:
		return migrations.Status(ctx, sqlDB)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <up|down|status>")
	fmt.Fprintln(os.Stderr, "Configuration is read like the API server (config file and environment).")
}
