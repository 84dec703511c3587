package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names a credential kind. Only email/password sign-in exists.
type ProviderType string

const ProviderTypeEmail ProviderType = "email"

// Authentication is one credential of a user.
type Authentication struct {
	ID     uuid.UUID
	UserID uuid.UUID
	// Provider-scoped login; the lower-cased email for ProviderTypeEmail.
	Provider       ProviderType
	ProviderUserID string
	PasswordHash   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshToken is a stored session. Only the SHA-256 of the raw token is kept,
// and a token is deleted when it is exchanged.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// PasswordReset is a single-use token mailed to the account owner.
type PasswordReset struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// IsUsable reports whether the reset token can still be redeemed at now.
func (r *PasswordReset) IsUsable(now time.Time) bool {
	return r != nil && r.UsedAt == nil && now.Before(r.ExpiresAt)
}
