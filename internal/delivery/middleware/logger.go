package middleware

import (
	"log/slog"
	"slices"
	"time"

	"autohub/config"
	deliverycontext "autohub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Outside debug mode
// only server errors are logged.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths []string
}

// NewLoggerMiddleware never logs the probe and scrape endpoints.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	skip := []string{"/health"}
	if cfg.Metrics != nil && cfg.Metrics.Path != "" {
		skip = append(skip, cfg.Metrics.Path)
	}

	return &LoggerMiddleware{
		logger:    logger,
		debug:     cfg.Env.Debug,
		skipPaths: skip,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if slices.Contains(m.skipPaths, c.Path()) {
			return err
		}

		status := c.Response().Status
		if err != nil {
			// the error handler has not run yet
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			} else if status < 500 {
				status = 500
			}
		}
		if !m.debug && status < 500 {
			return err
		}

		m.logRequest(c, start, status, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if userID, ok := deliverycontext.GetUserIDFromContext(req.Context()); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).LogAttrs(req.Context(), level, "HTTP request", attrs...)
}
