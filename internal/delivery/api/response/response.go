// Package response renders the JSON envelope every API endpoint answers with:
// {"data": ..., "meta": {...}} on success and {"error": ..., "meta": {...}}
// otherwise.
package response

import (
	"net/http"

	"autohub/internal/delivery/api/validator"
	deliverycontext "autohub/internal/delivery/context"
	domainerrors "autohub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"` // stable, e.g. INVALID_STATUS_TRANSITION
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Error writes an error envelope. Details never leave the server on 401, 403
// or 5xx answers.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Invalid renders a failed c.Validate call. Tag violations are listed per
// field in details.
func Invalid(c echo.Context, err error) error {
	var fields validator.FieldErrors
	if errors.As(err, &fields) {
		return Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", fields)
	}

	return Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
}

// BindingError is a body or query that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError answers client-side domain errors directly. Anything else is
// returned so the central error handler logs it.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), ErrorDetails(err, appErr))
	}

	return errors.WithStack(err)
}

// ErrorDetails prefers the details carried by appErr and falls back to the
// wrapping context added on the way up.
func ErrorDetails(err error, appErr domainerrors.AppError) any {
	if appErr.Details() != "" {
		return appErr.Details()
	}
	if msg := err.Error(); msg != appErr.Error() {
		return msg
	}

	return nil
}
