package handler

import (
	"log/slog"

	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/response"
	"autohub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	ActivityUC  usecase.ActivityUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the shop dashboard and the activity feeds.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	activityUC  usecase.ActivityUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		activityUC:  params.ActivityUC,
		logger:      params.Logger,
	}
}

// Summary returns the dashboard of ?date=, today when absent.
func (h *DashboardHandler) Summary(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	summary, err := h.dashboardUC.Summary(c.Request().Context(), session, c.QueryParam("date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, &DashboardView{
		ShopID:            summary.ShopID,
		Date:              summary.Date,
		OrderSales:        summary.OrderSales,
		AppointmentSales:  summary.AppointmentSales,
		TotalSales:        summary.TotalSales,
		PendingOrders:     summary.PendingOrders,
		TodayAppointments: summary.TodayAppointments,
		TodayOrders:       summary.TodayOrders,
		LowStockParts:     summary.LowStockParts,
		OutOfStockParts:   summary.OutOfStockParts,
		UnparsableBills:   summary.UnparsableBills,
	})
}

// CustomerActivity is the caller's merged order and appointment history.
func (h *DashboardHandler) CustomerActivity(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	items, err := h.activityUC.CustomerActivity(c.Request().Context(), session, limitQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(items, newActivityView))
}

// ShopActivity is the merged recent activity of the caller's shop.
func (h *DashboardHandler) ShopActivity(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}

	items, err := h.activityUC.ShopActivity(c.Request().Context(), session, limitQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, mapViews(items, newActivityView))
}
