// Package context carries request-scoped values (request id, caller, logger)
// between the delivery layer and the services below it.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type key int

const (
	requestIDKey key = iota
	userIDKey
	loggerKey
)

// HeaderXRequestID is echoed on every response and forwarded on published events.
const HeaderXRequestID = "X-Request-Id"

// echo.Context slot for the request id, read by the response envelope.
const echoRequestID = "request_id"

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestID, requestID)
}

// GetRequestID returns the id stored by SetRequestID. Handlers mounted
// without the request id middleware (tests mostly) fall back to the
// request context and then to a fresh id.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestID).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.NewString()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestIDFromContext returns "" outside of a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithUserID records the authenticated caller.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext reports the caller stored by WithUserID.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns nil when no request-scoped logger was attached.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault prefers the request-scoped logger over fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
