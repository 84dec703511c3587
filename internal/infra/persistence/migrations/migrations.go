// Package migrations applies the embedded goose schema migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var embedded embed.FS

const dir = "sql"

// Up runs every pending migration.
func Up(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := setup(); err != nil {
		return err
	}

	logger.Info("Checking for pending migrations")

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}

	logger.Info("Migrations completed", slog.Int64("version", version))

	return nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	return errors.Wrap(goose.DownContext(ctx, db, dir), "failed to roll back migration")
}

// Status prints the applied state of each migration.
func Status(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}

	return errors.Wrap(goose.StatusContext(ctx, db, dir), "failed to read migration status")
}

func setup() error {
	goose.SetBaseFS(embedded)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	return nil
}
