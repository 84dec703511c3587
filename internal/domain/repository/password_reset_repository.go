package repository

import (
	"context"
	"errors"
	"time"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPasswordResetNotFound is returned when no reset token matches.
var ErrPasswordResetNotFound = errors.New("password reset token not found")

// PasswordResetRepository stores single-use password reset tokens.
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *entity.PasswordReset) error
	FindByHash(ctx context.Context, tokenHash string) (*entity.PasswordReset, error)
	MarkUsed(ctx context.Context, id uuid.UUID, usedAt time.Time) error
}
