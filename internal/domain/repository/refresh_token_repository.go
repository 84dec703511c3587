package repository

import (
	"context"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository keeps one row per live sign-in. Only token hashes
// are stored.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// ConsumeRefreshToken deletes the token and returns it, so it can be
	// exchanged at most once. Expiry is checked by the caller.
	ConsumeRefreshToken(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash signs one device out.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID signs every device out, after a password
	// change or reset.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error
}
