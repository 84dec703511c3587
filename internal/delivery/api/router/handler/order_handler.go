package handler

import (
	"log/slog"

	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/response"
	"autohub/internal/domain/entity"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves spare part orders.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderLineRequest is one requested part.
type OrderLineRequest struct {
	PartID   uuid.UUID `json:"partId" validate:"required"`
	Quantity int       `json:"quantity" validate:"gt=0"`
}

// PlaceOrderRequest is a customer's order.
type PlaceOrderRequest struct {
	ShopID              uuid.UUID          `json:"shopId" validate:"required"`
	Items               []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	Address             string             `json:"address" validate:"max=500"`
	Contact             string             `json:"contact" validate:"max=64"`
	SpecialRequirements string             `json:"specialRequirements" validate:"max=2000"`
}

// ManualOrderRequest is a walk-in sale entered by the shop.
type ManualOrderRequest struct {
	Items               []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	CustomerName        string             `json:"customerName" validate:"required,max=100"`
	CustomerEmail       string             `json:"customerEmail" validate:"omitempty,email"`
	CustomerContact     string             `json:"customerContact" validate:"max=64"`
	Address             string             `json:"address" validate:"max=500"`
	SpecialRequirements string             `json:"specialRequirements" validate:"max=2000"`
	BookingID           string             `json:"bookingId" validate:"max=64"`
}

// OrderActionRequest applies a lifecycle action.
type OrderActionRequest struct {
	Action string `json:"action" validate:"required,oneof=confirm deliver receive cancel"`
}

// StatusRequest sets a status by label.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func orderLines(lines []OrderLineRequest) []usecase.OrderLineInput {
	items := make([]usecase.OrderLineInput, 0, len(lines))
	for _, line := range lines {
		items = append(items, usecase.OrderLineInput{PartID: line.PartID, Quantity: line.Quantity})
	}

	return items
}

// PlaceOrder places a customer order and reserves the stock.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), session, &usecase.PlaceOrderInput{
		ShopID:              req.ShopID,
		Items:               orderLines(req.Items),
		Address:             req.Address,
		Contact:             req.Contact,
		SpecialRequirements: req.SpecialRequirements,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newOrderView(order))
}

// CreateManualOrder records a walk-in sale for the caller's shop.
func (h *OrderHandler) CreateManualOrder(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	var req ManualOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	order, err := h.orderUC.CreateManualOrder(c.Request().Context(), session, &usecase.ManualOrderInput{
		Items:               orderLines(req.Items),
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerContact:     req.CustomerContact,
		Address:             req.Address,
		SpecialRequirements: req.SpecialRequirements,
		BookingID:           req.BookingID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newOrderView(order))
}

// TransitionOrder applies a lifecycle action to an order.
func (h *OrderHandler) TransitionOrder(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req OrderActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	order, err := h.orderUC.TransitionOrder(c.Request().Context(), session, orderID, entity.OrderAction(req.Action))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newOrderView(order))
}

// SetOrderStatus moves an order to the status named by a label.
func (h *OrderHandler) SetOrderStatus(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	order, err := h.orderUC.SetOrderStatus(c.Request().Context(), session, orderID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newOrderView(order))
}

// GetOrder returns an order visible to the caller.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), session, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newOrderView(order))
}

// ListCustomerOrders lists the caller's own orders.
func (h *OrderHandler) ListCustomerOrders(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	orders, err := h.orderUC.ListCustomerOrders(c.Request().Context(), session, limitQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(orders, newOrderView))
}

// ListShopOrders lists the orders of the caller's shop.
func (h *OrderHandler) ListShopOrders(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	orders, err := h.orderUC.ListShopOrders(c.Request().Context(), session, limitQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(orders, newOrderView))
}

// ListBookingOrders lists the part orders linked to an appointment.
func (h *OrderHandler) ListBookingOrders(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid appointment ID")
	}

	orders, err := h.orderUC.ListBookingOrders(c.Request().Context(), session, appointmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(orders, newOrderView))
}
