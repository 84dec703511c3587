// Package errors defines the failures the use cases report to callers. Each
// carries an HTTP status and a stable code that clients can branch on.
package errors

import (
	"net/http"

	"autohub/internal/errors"
)

// AppError is an error that knows how it is rendered in an API response.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is a predefined failure. Compare with errors.Is; copies made by
// WithDetails match the original because matching is by code.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func define(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage adds context while keeping e reachable through errors.As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithCause puts the underlying failure behind e in the chain, so errors.As
// finds both the predefined error and the driver error that caused it.
func (e *BaseError) WithCause(cause error) error {
	return errors.WithStack(&causedError{base: e, cause: cause})
}

type causedError struct {
	base  *BaseError
	cause error
}

func (c *causedError) Error() string   { return c.base.Error() + ": " + c.cause.Error() }
func (c *causedError) Unwrap() []error { return []error{c.base, c.cause} }

// WithDetails returns a copy carrying client-visible details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && e.errorCode == other.errorCode
}

// Accounts.
var (
	ErrUserNotFound        = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists   = define(http.StatusConflict, "USER_ALREADY_EXISTS", "This email is already registered")
	ErrUserCreationFailed  = define(http.StatusInternalServerError, "USER_CREATION_FAILED", "Could not create the account")
	ErrUserUpdateFailed    = define(http.StatusInternalServerError, "USER_UPDATE_FAILED", "Could not update the account")
	ErrInvalidCredentials  = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect email or password")
	ErrRefreshTokenInvalid = define(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid or expired refresh token")
	ErrResetTokenInvalid   = define(http.StatusBadRequest, "RESET_TOKEN_INVALID", "Invalid or expired password reset link")
	ErrPasswordStrength    = define(http.StatusBadRequest, "PASSWORD_STRENGTH", "Password does not meet the strength requirements")
)

// Catalog and inventory.
var (
	ErrShopNotFound              = define(http.StatusNotFound, "SHOP_NOT_FOUND", "Shop not found")
	ErrShopAlreadyOwned          = define(http.StatusConflict, "SHOP_ALREADY_OWNED", "This account already owns a shop")
	ErrServiceNotFound           = define(http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
	ErrSparePartNotFound         = define(http.StatusNotFound, "SPARE_PART_NOT_FOUND", "Spare part not found")
	ErrInventoryAdjustmentFailed = define(http.StatusServiceUnavailable, "INVENTORY_ADJUSTMENT_FAILED", "Could not update the spare part quantity")
)

// Order and appointment lifecycles.
var (
	ErrOrderNotFound       = define(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrAppointmentNotFound = define(http.StatusNotFound, "APPOINTMENT_NOT_FOUND", "Appointment not found")
	ErrInvalidTransition   = define(http.StatusConflict, "INVALID_STATUS_TRANSITION", "This status change is not allowed")
	ErrUnknownStatus       = define(http.StatusBadRequest, "UNKNOWN_STATUS", "Unknown status label")
)

// Reviews and uploads.
var (
	ErrReviewAlreadyExists = define(http.StatusConflict, "REVIEW_ALREADY_EXISTS", "You have already reviewed this item")
	ErrReviewNotAllowed    = define(http.StatusForbidden, "REVIEW_NOT_ALLOWED", "This item cannot be reviewed yet")
	ErrUploadRejected      = define(http.StatusBadRequest, "UPLOAD_REJECTED", "The uploaded file was rejected")
	ErrUploadFailed        = define(http.StatusServiceUnavailable, "UPLOAD_FAILED", "Could not upload the file")
)

// General. ErrValidationFailed is raised before any storage call.
var (
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrForbidden        = define(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrNotFound         = define(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrConflict         = define(http.StatusConflict, "CONFLICT", "Resource conflict")
)

// DatabaseExecuteError reports a storage failure. It renders as 503 so clients
// treat it as transient.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusServiceUnavailable }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Details() string   { return e.details }

// Message names the failed action when one was given.
func (e *DatabaseExecuteError) Message() string {
	if e.details == "" {
		return "Storage is unavailable"
	}

	return "Storage is unavailable, " + e.details
}
