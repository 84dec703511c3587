// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an email account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token to rotate.
type RefreshTokenInput struct {
	RefreshToken string
}

// SignOutInput carries the refresh token to revoke.
type SignOutInput struct {
	RefreshToken string
}

// ResetPasswordInput redeems a password reset token.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// UpdatePasswordInput changes the password of a signed-in user.
type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens and the signed-in user.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the account and authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)
	SignOut(ctx context.Context, input *SignOutInput) error
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	// SendPasswordReset always succeeds for unknown emails.
	SendPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, input *UpdatePasswordInput) error
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, name string) (*entity.User, error)
	CurrentPrincipal(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
