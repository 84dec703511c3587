package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the JWT payload. Roles is informational; authorization reads the
// stored profile.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and checks the signed tokens of a session.
type TokenService interface {
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)
	ValidateToken(tokenString string) (*Claims, error)
	// HashToken is the lookup key under which refresh and reset tokens are stored.
	HashToken(token string) string
	GetRefreshTokenDuration() time.Duration
}
