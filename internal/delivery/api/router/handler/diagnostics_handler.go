package handler

import (
	"time"

	"autohub/internal/delivery/api/middleware"
	"autohub/internal/delivery/api/response"
	deliverycontext "autohub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// DiagnosticsHandler serves the /test routes, enabled by testRoutes.enabled,
// used to check a token and the session it resolves to.
type DiagnosticsHandler struct {
	now func() time.Time
}

func NewDiagnosticsHandler() *DiagnosticsHandler {
	return &DiagnosticsHandler{now: time.Now}
}

// Ping needs no credentials.
func (h *DiagnosticsHandler) Ping(c echo.Context) error {
	return response.OK(c, map[string]any{
		"requestId":  deliverycontext.GetRequestID(c),
		"serverTime": h.now().UTC(),
	})
}

// WhoAmI shows the token claims next to the resolved session; the two
// disagree on role until the client refreshes its token.
func (h *DiagnosticsHandler) WhoAmI(c echo.Context) error {
	session, ok := middleware.GetSession(c)
	if !ok {
		return noSession(c)
	}
	tokenRoles, _ := middleware.GetRoles(c)

	return response.OK(c, map[string]any{
		"tokenRoles": tokenRoles,
		"session":    newSessionView(session),
		"degraded":   session.Degraded,
	})
}
