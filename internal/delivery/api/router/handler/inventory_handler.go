package handler

import (
	"log/slog"

	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/response"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler adjusts stock outside of orders.
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler.
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// AdjustQuantityRequest is the body of the inventory endpoints.
type AdjustQuantityRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

// DecreaseQuantity removes up to amount units of a part.
func (h *InventoryHandler) DecreaseQuantity(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid spare part ID")
	}

	var req AdjustQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	adjustment, err := h.inventoryUC.DecreaseQuantity(c.Request().Context(), session, partID, req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{
		"part":    newSparePartView(adjustment.Part),
		"removed": adjustment.Removed,
	})
}

// RestoreQuantity adds units of a part back.
func (h *InventoryHandler) RestoreQuantity(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	partID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid spare part ID")
	}

	var req AdjustQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	part, err := h.inventoryUC.RestoreQuantity(c.Request().Context(), session, partID, req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newSparePartView(part))
}
