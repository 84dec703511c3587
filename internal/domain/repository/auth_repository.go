package repository

import (
	"context"
	"errors"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository stores sign-in credentials.
type AuthRepository interface {
	// CreateAuthentication fails with ErrUserAlreadyExists when the login is taken.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)
	FindAuthenticationByUserID(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error)
	UpdatePasswordHash(ctx context.Context, authID uuid.UUID, passwordHash string) error
}
