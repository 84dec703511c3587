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

// AppointmentHandlerParams holds dependencies for AppointmentHandler, injected by Fx.
type AppointmentHandlerParams struct {
	fx.In

	AppointmentUC usecase.AppointmentUsecase
	Logger        *slog.Logger
}

// AppointmentHandler serves service bookings.
type AppointmentHandler struct {
	appointmentUC usecase.AppointmentUsecase
	logger        *slog.Logger
}

// NewAppointmentHandler is the constructor for AppointmentHandler.
func NewAppointmentHandler(params AppointmentHandlerParams) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUC: params.AppointmentUC,
		logger:        params.Logger,
	}
}

// BookAppointmentRequest books a service slot.
type BookAppointmentRequest struct {
	ShopID    uuid.UUID `json:"shopId" validate:"required"`
	ServiceID uuid.UUID `json:"serviceId" validate:"required"`
	Date      string    `json:"date" validate:"required"`
	Time      string    `json:"time" validate:"required,max=32"`
	Contact   string    `json:"contact" validate:"max=64"`
}

// ManualAppointmentRequest records a walk-in booking.
type ManualAppointmentRequest struct {
	ServiceID       uuid.UUID `json:"serviceId" validate:"required"`
	Date            string    `json:"date" validate:"required"`
	Time            string    `json:"time" validate:"required,max=32"`
	CustomerName    string    `json:"customerName" validate:"required,max=100"`
	CustomerEmail   string    `json:"customerEmail" validate:"omitempty,email"`
	CustomerContact string    `json:"customerContact" validate:"max=64"`
}

// AppointmentActionRequest applies a lifecycle action.
type AppointmentActionRequest struct {
	Action string `json:"action" validate:"required,oneof=confirm complete cancel"`
}

// Book books a service of a shop for the caller.
func (h *AppointmentHandler) Book(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	var req BookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	appointment, err := h.appointmentUC.Book(c.Request().Context(), session, &usecase.BookAppointmentInput{
		ShopID:    req.ShopID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Contact:   req.Contact,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newAppointmentView(appointment))
}

// CreateManual records a walk-in booking for the caller's shop.
func (h *AppointmentHandler) CreateManual(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	var req ManualAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	appointment, err := h.appointmentUC.CreateManual(c.Request().Context(), session, &usecase.ManualAppointmentInput{
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		Time:            req.Time,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerContact: req.CustomerContact,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newAppointmentView(appointment))
}

// TransitionAppointment applies a lifecycle action to an appointment.
func (h *AppointmentHandler) TransitionAppointment(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid appointment ID")
	}

	var req AppointmentActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid action input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	appointment, err := h.appointmentUC.TransitionAppointment(c.Request().Context(), session, appointmentID, entity.AppointmentAction(req.Action))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newAppointmentView(appointment))
}

// SetAppointmentStatus moves an appointment to the status named by a label.
func (h *AppointmentHandler) SetAppointmentStatus(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid appointment ID")
	}

	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.Invalid(c, err)
	}

	appointment, err := h.appointmentUC.SetAppointmentStatus(c.Request().Context(), session, appointmentID, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newAppointmentView(appointment))
}

// GetAppointment returns an appointment visible to the caller.
func (h *AppointmentHandler) GetAppointment(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid appointment ID")
	}

	appointment, err := h.appointmentUC.GetAppointment(c.Request().Context(), session, appointmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newAppointmentView(appointment))
}

// ListCustomerAppointments lists the caller's own bookings.
func (h *AppointmentHandler) ListCustomerAppointments(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	appointments, err := h.appointmentUC.ListCustomerAppointments(c.Request().Context(), session, limitQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(appointments, newAppointmentView))
}

// ListShopAppointments lists the bookings of the caller's shop.
func (h *AppointmentHandler) ListShopAppointments(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	appointments, err := h.appointmentUC.ListShopAppointments(c.Request().Context(), session, limitQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(appointments, newAppointmentView))
}

// Bill itemises the bill of an appointment.
func (h *AppointmentHandler) Bill(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid appointment ID")
	}

	bill, err := h.appointmentUC.Bill(c.Request().Context(), session, appointmentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &BillView{
		AppointmentID: bill.AppointmentID,
		ServicePrice:  bill.ServicePrice,
		PartsTotal:    bill.PartsTotal,
		Total:         bill.Total,
		Orders:        mapViews(bill.Orders, newOrderView),
	})
}
