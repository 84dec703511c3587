package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"autohub/config"
	"autohub/internal/domain/lifecycle"
	"autohub/internal/errors"
	"autohub/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolSlowWait       = 50 * time.Millisecond
	poolStatsDBName    = "autohub"
)

// Params are the fx inputs of New. Metrics is absent in the migrate command.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Registry `optional:"true"`
}

// New opens the primary (and any configured replicas) through go-lib and
// ties the pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through the transaction manager.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.Register(collectors.NewDBStatsCollector(sqlDB, poolStatsDBName)); err != nil {
			return nil, errors.Wrap(err, "failed to register pool metrics")
		}
	}

	sampler := &poolSampler{db: sqlDB, logger: params.Logger, interval: poolSampleInterval}
	stopSampler := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			runCtx, cancelRun := context.WithCancel(context.Background())
			stopSampler = cancelRun
			go sampler.run(runCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			stopSampler()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolSampler reports connection waits between two samples. A burst of
// waits usually means the pool is sized below the request concurrency.
type poolSampler struct {
	db       *sql.DB
	logger   *slog.Logger
	interval time.Duration
}

func (s *poolSampler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	prev := s.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := s.db.Stats()
			s.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (s *poolSampler) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolSlowWait {
		level = slog.LevelWarn
	}

	s.logger.LogAttrs(ctx, level, "Postgres pool waits",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
