package auth

import (
	"strings"
	"testing"

	"autohub/config"
	domainerrors "autohub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("Brake#Pads42")
	require.NoError(t, err)
	assert.NotEqual(t, "Brake#Pads42", hash)

	assert.True(t, hasher.Check("Brake#Pads42", hash))
	assert.False(t, hasher.Check("Brake#Pads43", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("Brake#Pads42", "not-a-bcrypt-hash"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_DefaultPolicy(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
		detail   string
	}{
		{name: "strong", password: "Oil#Change2024"},
		{name: "unicode letters", password: "Zündkerze#77"},
		{name: "empty", password: "", detail: "at least 8 characters"},
		{name: "short", password: "Ab1!", detail: "at least 8 characters"},
		{name: "too long for bcrypt", password: "Aa1!" + strings.Repeat("x", 80), detail: "at most 72 bytes"},
		{name: "no lowercase", password: "GEARBOX99!", detail: "lowercase"},
		{name: "no uppercase", password: "gearbox99!", detail: "uppercase"},
		{name: "no digit", password: "Gearbox!!x", detail: "number"},
		{name: "no special", password: "Gearbox99x", detail: "special character"},
		{name: "forbidden word", password: "MyAdmin#2024", detail: "forbidden words"},
		{name: "brand name", password: "AutoHub#2024", detail: "forbidden words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.detail == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
			assert.Contains(t, err.Error(), tt.detail)

			_, hashErr := hasher.Hash(tt.password)
			assert.Error(t, hashErr)
		})
	}
}

func TestBcryptHasher_PolicyFromConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 10, MaxLength: 500},
	})

	err := hasher.ValidatePasswordStrength("short")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 10 characters")

	assert.NoError(t, hasher.ValidatePasswordStrength("lowercaseonly"))

	// MaxLength is capped at what bcrypt can hash.
	err = hasher.ValidatePasswordStrength(strings.Repeat("y", 73))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 72 bytes")

	hash, err := hasher.Hash("lowercaseonly")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	assert.True(t, hasher.policy.RequireSpecial)
}
