package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"autohub/config"
	deliverycontext "autohub/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	ctx := deliverycontext.WithLogger(context.Background(), l.logger.With(slog.String("request_id", "req-42")))
	l.Trace(ctx, time.Now(), sqlFn, errors.New("deadlock detected"))

	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "deadlock detected")
}

func TestGormSlogLogger_QuietOutcomes(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		err   error
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound},
		{name: "cancelled outside debug", err: context.Canceled},
		{name: "fast query outside debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedGormLogger(tt.debug)

			l.Trace(context.Background(), time.Now(), sqlFn, tt.err)

			assert.Empty(t, buf.String())
		})
	}
}

func TestGormSlogLogger_SlowAndDebugQueries(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	l, buf = newBufferedGormLogger(true)
	l.Trace(context.Background(), time.Now(), sqlFn, context.Canceled)
	assert.Contains(t, buf.String(), "GORM query abandoned")
}
