package usecase

import (
	"context"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase resolves which navigation branch a signed-in principal lands on.
type SessionUsecase interface {
	// ResolveRole never fails: a missing profile yields a synthesised customer
	// profile and a backend error falls back to the customer path.
	ResolveRole(ctx context.Context, principalID uuid.UUID) *entity.Session
}
