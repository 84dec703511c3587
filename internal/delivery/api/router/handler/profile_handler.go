package handler

import (
	"log/slog"

	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/response"
	"autohub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the marketplace profile of the caller.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// SaveProfileRequest updates the fields that are present.
type SaveProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
}

// PushTokenRequest registers the device token of the caller.
type PushTokenRequest struct {
	Token string `json:"token"`
}

// GetProfile returns the caller's profile, synthesised when never saved.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newProfileView(profile))
}

// SaveProfile updates the caller's profile.
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	var req SaveProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	profile, err := h.profileUC.SaveProfile(c.Request().Context(), session, &usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Phone:       req.Phone,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newProfileView(profile))
}

// BecomeShopOwner switches the caller to the shop owner onboarding path.
func (h *ProfileHandler) BecomeShopOwner(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	profile, err := h.profileUC.BecomeShopOwner(c.Request().Context(), session)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newProfileView(profile))
}

// UpdatePushToken stores or clears (empty token) the caller's device token.
func (h *ProfileHandler) UpdatePushToken(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	var req PushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}

	if err := h.profileUC.UpdatePushToken(c.Request().Context(), session, req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return messageResponse(c, "Push token updated")
}
