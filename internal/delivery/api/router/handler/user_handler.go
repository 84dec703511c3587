package handler

import (
	"log/slog"
	"net/http"

	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/response"
	"autohub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds the account and authentication handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// SignUpRequest is the body of POST /auth/signup.
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInRequest is the body of POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries a refresh token to rotate or revoke.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// PasswordResetRequest asks for a reset mail.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest redeems a reset token.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UpdatePasswordRequest changes the password of the signed-in user.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// UpdateDisplayNameRequest renames the signed-in user.
type UpdateDisplayNameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// SignUp creates an email account and signs it in.
func (h *UserHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign up input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	output, err := h.userUC.SignUp(c.Request().Context(), &usecase.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newAuthView(output))
}

// SignIn exchanges credentials for a token pair.
func (h *UserHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	output, err := h.userUC.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newAuthView(output))
}

// RefreshToken rotates a refresh token.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	output, err := h.userUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &AuthView{AccessToken: output.AccessToken, RefreshToken: output.RefreshToken})
}

// SignOut revokes a refresh token.
func (h *UserHandler) SignOut(c echo.Context) error {
	var req RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign out input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	if err := h.userUC.SignOut(c.Request().Context(), &usecase.SignOutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageResponse(c, "Signed out")
}

// RequestPasswordReset always answers 202 so callers cannot probe for accounts.
func (h *UserHandler) RequestPasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password reset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	if err := h.userUC.SendPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"message": "If the account exists a reset link was sent"})
}

// ResetPassword redeems a reset token.
func (h *UserHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	err := h.userUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return messageResponse(c, "Password updated")
}

// UpdatePassword changes the password of the signed-in user.
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	err := h.userUC.UpdatePassword(c.Request().Context(), userID, &usecase.UpdatePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return messageResponse(c, "Password updated")
}

// UpdateDisplayName renames the signed-in user.
func (h *UserHandler) UpdateDisplayName(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateDisplayNameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid name input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	user, err := h.userUC.UpdateDisplayName(c.Request().Context(), userID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newUserView(user))
}

// Me returns the signed-in account and its resolved session.
func (h *UserHandler) Me(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	user, err := h.userUC.CurrentPrincipal(c.Request().Context(), session.PrincipalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{
		"user":    newUserView(user),
		"session": newSessionView(session),
	})
}

func newAuthView(output *usecase.AuthOutput) *AuthView {
	return &AuthView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         newUserView(output.User),
	}
}
