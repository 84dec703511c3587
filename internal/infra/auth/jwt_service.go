package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"autohub/config"
	"autohub/internal/domain/service"
	"autohub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
	tokenIssuer       = "autohub"
)

// signingKey is the HMAC secret and lifetime of one token type.
type signingKey struct {
	secret []byte
	ttl    time.Duration
}

// jwtService signs access and refresh tokens with separate secrets, so a
// refresh token can never pass as an access token.
type jwtService struct {
	keys map[string]signingKey
	now  func() time.Time
}

func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := defaultAccessTTL, defaultRefreshTTL
	if cfg.Auth != nil {
		accessTTL = positiveOr(cfg.Auth.AccessTTL, accessTTL)
		refreshTTL = positiveOr(cfg.Auth.RefreshTTL, refreshTTL)
	}

	return &jwtService{
		keys: map[string]signingKey{
			service.TokenTypeAccess:  {secret: []byte(cfg.SecretKey.Access), ttl: accessTTL},
			service.TokenTypeRefresh: {secret: []byte(cfg.SecretKey.Refresh), ttl: refreshTTL},
		},
		now: time.Now,
	}, nil
}

func positiveOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}

	return fallback
}

// GenerateTokens issues a pair; only the access token carries roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (string, string, error) {
	accessToken, err := s.sign(service.TokenTypeAccess, userID, roles)
	if err != nil {
		return "", "", err
	}

	refreshToken, err := s.sign(service.TokenTypeRefresh, userID, nil)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken checks the signature with the secret of the type the token claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		key, ok := s.keys[claims.Type]
		if !ok {
			return nil, errors.Errorf("unknown token type %q", claims.Type)
		}

		return key.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, errors.Wrap(err, "failed to parse token structure")
	case err != nil:
		return nil, errors.Wrap(err, "invalid token")
	}

	return claims, nil
}

// HashToken is the hex SHA-256 stored in place of opaque tokens.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.keys[service.TokenTypeRefresh].ttl
}

func (s *jwtService) sign(tokenType string, userID uuid.UUID, roles []string) (string, error) {
	key := s.keys[tokenType]
	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(key.ttl)),
		},
	})

	signed, err := token.SignedString(key.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign "+tokenType+" token")
	}

	return signed, nil
}
