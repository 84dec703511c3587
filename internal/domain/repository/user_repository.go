// Package repository defines the persistence contracts used by the usecases.
package repository

import (
	"context"
	"errors"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository stores accounts. Credentials live in AuthRepository and the
// marketplace identity (role, shop) in ProfileRepository.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create fills in the generated ID and timestamps. A taken email is
	// reported as ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// UpdateName returns ErrUserNotFound when no row matched.
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
}
