package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autohub/config"
	deliverycontext "autohub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent", incoming: "", keep: false},
		{name: "caller id kept", incoming: "trace-abc-123", keep: true},
		{name: "id with spaces replaced", incoming: "bad id", keep: false},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxRequestIDLength+1), keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			mw := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				seen = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLogger(ctx).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			assert.Contains(t, buf.String(), `"request_id":"`+seen+`"`)
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func newLoggerMiddleware(buf *bytes.Buffer, debug bool) *LoggerMiddleware {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.Env.Debug = debug

	return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)), cfg)
}

func runLogged(mw *LoggerMiddleware, path string, handler echo.HandlerFunc) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(path)

	return mw.Handle(handler)(c)
}

func TestLoggerMiddleware(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	notFound := func(c echo.Context) error { return c.NoContent(http.StatusNotFound) }
	failing := func(echo.Context) error { return echo.NewHTTPError(http.StatusServiceUnavailable, "down") }

	tests := []struct {
		name    string
		debug   bool
		path    string
		handler echo.HandlerFunc
		want    string
	}{
		{name: "success quiet outside debug", path: "/api/v1/shops", handler: ok},
		{name: "client error quiet outside debug", path: "/api/v1/shops", handler: notFound},
		{name: "server error always logged", path: "/api/v1/shops", handler: failing, want: `"level":"ERROR"`},
		{name: "success logged in debug", debug: true, path: "/api/v1/shops", handler: ok, want: `"level":"INFO"`},
		{name: "client error warns in debug", debug: true, path: "/api/v1/shops", handler: notFound, want: `"status":404`},
		{name: "health skipped", debug: true, path: "/health", handler: ok},
		{name: "metrics skipped", debug: true, path: "/metrics", handler: ok},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_ = runLogged(newLoggerMiddleware(&buf, tt.debug), tt.path, tt.handler)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), `"route":"`+tt.path+`"`)
		})
	}
}

func TestLoggerMiddleware_IncludesCaller(t *testing.T) {
	var buf bytes.Buffer
	userID := uuid.New()

	err := runLogged(newLoggerMiddleware(&buf, true), "/api/v1/me", func(c echo.Context) error {
		ctx := deliverycontext.WithUserID(c.Request().Context(), userID)
		c.SetRequest(c.Request().WithContext(ctx))

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"user_id":"`+userID.String()+`"`)
}
