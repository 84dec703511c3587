package repository

import (
	"context"
	"errors"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a principal has no stored profile.
var ErrProfileNotFound = errors.New("user profile not found")

// ProfileRepository persists marketplace profiles. Profiles are never deleted.
type ProfileRepository interface {
	// FindByUserID retrieves the profile of a principal.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// Save inserts or overwrites the whole profile.
	Save(ctx context.Context, profile *entity.UserProfile) error

	// UpdatePushToken stores the latest messaging token of a principal.
	UpdatePushToken(ctx context.Context, userID uuid.UUID, token string) error

	// ClearPushToken removes a token the messaging service reported as invalid.
	ClearPushToken(ctx context.Context, token string) error
}
