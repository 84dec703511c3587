package auth

import (
	"testing"
	"time"

	"autohub/config"
	"autohub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-for-unit-tests-0123456789"
	testRefreshSecret = "refresh-secret-for-unit-tests-0123456789"
)

func newTestJWTService(t *testing.T, auth *config.AuthConfig) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: auth}
	cfg.SecretKey.Access = testAccessSecret
	cfg.SecretKey.Refresh = testRefreshSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_TokenPair(t *testing.T) {
	svc := newTestJWTService(t, nil)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID, []string{"shop_owner"})
	require.NoError(t, err)
	require.NotEqual(t, access, refresh)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, []string{"shop_owner"}, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, tokenIssuer, accessClaims.Issuer)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
	assert.Empty(t, refreshClaims.Roles)
}

func TestJWTService_Lifetimes(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := newTestJWTService(t, &config.AuthConfig{AccessTTL: -time.Minute, RefreshTTL: 48 * time.Hour})
	svc.now = func() time.Time { return issuedAt }

	assert.Equal(t, 48*time.Hour, svc.GetRefreshTokenDuration())

	access, refresh, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	// A non-positive access TTL falls back to the default.
	svc.now = func() time.Time { return issuedAt.Add(defaultAccessTTL - time.Second) }
	_, err = svc.ValidateToken(access)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(defaultAccessTTL + time.Second) }
	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = svc.ValidateToken(refresh)
	assert.NoError(t, err)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := newTestJWTService(t, nil)
	now := time.Now()

	forge := func(secret string, claims service.Claims) string {
		claims.RegisteredClaims = jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		return signed
	}

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "someone-elses-access-secret"
	otherCfg.SecretKey.Refresh = "someone-elses-refresh-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)
	foreign, _, err := other.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "garbage", token: "clearly-not-a-jwt", want: "failed to parse token structure"},
		{name: "foreign signature", token: foreign, want: "invalid token"},
		{name: "access claim signed with refresh secret", token: forge(testRefreshSecret, service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}), want: "invalid token"},
		{name: "unknown type", token: forge(testAccessSecret, service.Claims{UserID: uuid.New(), Type: "reset"}), want: "unknown token type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestJWTService_HashToken(t *testing.T) {
	svc := newTestJWTService(t, nil)

	assert.Len(t, svc.HashToken("a"), 64)
	assert.Equal(t, svc.HashToken("a"), svc.HashToken("a"))
	assert.NotEqual(t, svc.HashToken("a"), svc.HashToken("b"))
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})

	assert.Nil(t, svc)
	assert.ErrorContains(t, err, "jwt secrets must be provided")
}
