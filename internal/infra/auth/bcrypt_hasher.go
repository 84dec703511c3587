// Package auth implements password hashing and JWT issuance for the API.
package auth

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"autohub/config"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	defaultMaxPasswordLength = 72
)

var forbiddenPasswordWords = []string{"password", "admin", "qwerty", "123456", "autohub"}

// charClass is one "must contain" rule of the password policy.
type charClass struct {
	enabled func(config.PasswordStrengthConfig) bool
	match   func(rune) bool
	detail  string
}

var charClasses = []charClass{
	{
		enabled: func(p config.PasswordStrengthConfig) bool { return p.RequireLowercase },
		match:   unicode.IsLower,
		detail:  "must contain at least one lowercase letter",
	},
	{
		enabled: func(p config.PasswordStrengthConfig) bool { return p.RequireUppercase },
		match:   unicode.IsUpper,
		detail:  "must contain at least one uppercase letter",
	},
	{
		enabled: func(p config.PasswordStrengthConfig) bool { return p.RequireNumbers },
		match:   unicode.IsDigit,
		detail:  "must contain at least one number",
	},
	{
		enabled: func(p config.PasswordStrengthConfig) bool { return p.RequireSpecial },
		match:   func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSymbol(r) },
		detail:  "must contain at least one special character",
	},
}

type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher reads the cost and the strength policy from configuration.
// An out-of-range cost falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := newBcryptHasher(bcrypt.DefaultCost)
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}

	if cfg.PasswordStrength != nil {
		hasher.policy = *cfg.PasswordStrength
		if hasher.policy.MinLength <= 0 {
			hasher.policy.MinLength = defaultMinPasswordLength
		}
		if hasher.policy.MaxLength <= 0 || hasher.policy.MaxLength > defaultMaxPasswordLength {
			hasher.policy.MaxLength = defaultMaxPasswordLength
		}
	}

	return hasher
}

// NewBcryptHasherWithCost uses the strict default policy.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return newBcryptHasher(cost)
}

func newBcryptHasher(cost int) *bcryptHasher {
	return &bcryptHasher{
		cost: cost,
		policy: config.PasswordStrengthConfig{
			MinLength:        defaultMinPasswordLength,
			MaxLength:        defaultMaxPasswordLength,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}

	return string(hash), nil
}

func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength reports the first rule the password breaks.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.policy.MinLength {
		return weakPassword(fmt.Sprintf("must be at least %d characters long", h.policy.MinLength))
	}
	if h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength {
		return weakPassword(fmt.Sprintf("must be at most %d bytes long", h.policy.MaxLength))
	}

	for _, class := range charClasses {
		if class.enabled(h.policy) && strings.IndexFunc(password, class.match) < 0 {
			return weakPassword(class.detail)
		}
	}

	lower := strings.ToLower(password)
	for _, word := range forbiddenPasswordWords {
		if strings.Contains(lower, word) {
			return weakPassword("contains forbidden words")
		}
	}

	return nil
}

func weakPassword(detail string) error {
	return domainerrors.ErrPasswordStrength.WithDetails(detail)
}
