package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "autohub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_MiddlewareRecordsRouteAndStatus(t *testing.T) {
	registry := NewRegistry()

	e := echo.New()
	e.Use(registry.Middleware())
	e.GET("/api/v1/shops/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/api/v1/orders/:id", func(echo.Context) error {
		return domainerrors.ErrOrderNotFound
	})

	for _, path := range []string{"/api/v1/shops/1", "/api/v1/shops/2", "/api/v1/orders/9"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(registry.httpRequests.WithLabelValues("/api/v1/shops/:id", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.httpRequests.WithLabelValues("/api/v1/orders/:id", "GET", "404")))
}

func TestRegistry_BusinessCounters(t *testing.T) {
	registry := NewRegistry()

	registry.OrderTransition("Order Placed", "Order Confirmed")
	registry.AppointmentTransition("Pending", "Confirmed")
	registry.InventoryAdjusted("decrease", 3)
	registry.InventoryAdjusted("decrease", 2)
	registry.ReviewSubmitted("ORDER")

	assert.Equal(t, 1.0, testutil.ToFloat64(registry.orderTransitions.WithLabelValues("Order Placed", "Order Confirmed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(registry.inventoryAdjustments.WithLabelValues("decrease")))
	assert.Equal(t, 5.0, testutil.ToFloat64(registry.inventoryUnits.WithLabelValues("decrease")))
	assert.Equal(t, 1.0, testutil.ToFloat64(registry.reviews.WithLabelValues("ORDER")))
}

func TestRegistry_HandlerExposesMetrics(t *testing.T) {
	registry := NewRegistry()
	registry.ReviewSubmitted("APPOINTMENT")

	rec := httptest.NewRecorder()
	registry.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `autohub_reviews_submitted_total{item_type="APPOINTMENT"} 1`))
}
