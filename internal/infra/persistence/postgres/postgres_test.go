package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	domainerrors "autohub/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPoolSampler_Report(t *testing.T) {
	base := sql.DBStats{WaitCount: 10, WaitDuration: time.Second, MaxOpenConnections: 20}

	tests := []struct {
		name string
		cur  sql.DBStats
		want string
	}{
		{name: "no new waits", cur: base},
		{
			name: "short waits at debug",
			cur:  sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, InUse: 20},
			want: "level=DEBUG",
		},
		{
			name: "long waits warn",
			cur:  sql.DBStats{WaitCount: 14, WaitDuration: time.Second + 200*time.Millisecond, InUse: 20},
			want: "avgWait=50ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := &poolSampler{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

			s.report(context.Background(), base, tt.cur)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestSQLStateClassification(t *testing.T) {
	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "failed to update spare part")
	}

	assert.True(t, isRetryableTxError(wrapped(pgSerializationFailure)))
	assert.True(t, isRetryableTxError(wrapped(pgDeadlockDetected)))
	assert.False(t, isRetryableTxError(wrapped(pgUniqueViolation)))
	assert.False(t, isRetryableTxError(errors.New("connection refused")))

	inventory := errors.Wrap(domainerrors.ErrInventoryAdjustmentFailed.WithCause(&pgconn.PgError{Code: pgDeadlockDetected}), "failed to decrease quantity")
	assert.True(t, isRetryableTxError(inventory))
	assert.True(t, errors.Is(inventory, domainerrors.ErrInventoryAdjustmentFailed))

	assert.True(t, isUniqueConstraintViolation(wrapped(pgUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isForeignKeyConstraintViolation(wrapped(pgForeignKeyViolation)))
	assert.True(t, isCheckConstraintViolation(wrapped(pgCheckViolation)))
	assert.False(t, isNotNullConstraintViolation(wrapped(pgCheckViolation)))
}
