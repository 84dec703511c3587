package postgres

import (
	"context"
	"log/slog"

	"autohub/config"
	"autohub/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// MigrateParams defines the dependencies of RegisterMigrations.
type MigrateParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// RegisterMigrations applies pending schema migrations on start when
// migration.autoMigrate is set. It must be invoked after New so the
// connection has been verified first.
func RegisterMigrations(params MigrateParams) {
	if params.Config.Migration == nil || !params.Config.Migration.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			sqlDB, err := params.DB.DB()
			if err != nil {
				return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
			}

			return migrations.Up(ctx, sqlDB, params.Logger)
		},
	})
}
