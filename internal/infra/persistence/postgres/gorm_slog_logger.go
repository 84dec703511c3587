package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"autohub/config"
	deliverycontext "autohub/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger writes GORM output through the request-scoped slog logger so
// SQL lines carry the request_id of the HTTP request or push message.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func (l *gormSlogLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "GORM: "+fmt.Sprintf(msg, args...))
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	log := l.log(ctx)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		// Repositories translate this into domain not-found errors.
	case err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)):
		// The caller went away; the query was abandoned with it.
		if l.level >= logger.Info {
			log.LogAttrs(ctx, slog.LevelDebug, "GORM query abandoned", queryAttrs(sqlAndRowsFn, elapsed, slog.String("error", err.Error()))...)
		}

		return
	case err != nil && l.level >= logger.Error:
		log.LogAttrs(ctx, slog.LevelError, "GORM query failed", queryAttrs(sqlAndRowsFn, elapsed, slog.String("error", err.Error()))...)

		return
	}

	if l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn {
		log.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", queryAttrs(sqlAndRowsFn, elapsed, slog.Duration("slowThreshold", l.slowThreshold))...)

		return
	}

	if l.level >= logger.Info {
		log.LogAttrs(ctx, slog.LevelInfo, "GORM query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)
}
