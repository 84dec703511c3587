package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"autohub/internal/delivery/api/response"
	"autohub/internal/delivery/api/validator"
	deliverycontext "autohub/internal/delivery/context"
	domainerrors "autohub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is installed as echo's HTTPErrorHandler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError turns whatever a handler returned into the error envelope.
// Only server-side failures are logged; client errors are the access log's job.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
		fields  validator.FieldErrors
	)
	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), response.ErrorDetails(err, appErr))

	case errors.As(err, &fields):
		_ = response.Invalid(c, fields)

	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError {
			m.logFailure(c, err)
		}
		_ = response.Error(c, httpErr.Code, httpErrorCode(httpErr.Code), httpErrorMessage(httpErr), nil)

	default:
		m.logFailure(c, err)
		_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
	}
}

func (m *ErrorMiddleware) logFailure(c echo.Context, err error) {
	req := c.Request()
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Request failed",
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
	)
}

// httpErrorCode derives NOT_FOUND, METHOD_NOT_ALLOWED and friends from the status text.
func httpErrorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}

	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}

	return http.StatusText(httpErr.Code)
}
