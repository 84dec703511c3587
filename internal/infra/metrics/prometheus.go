// Package metrics exposes Prometheus collectors for HTTP traffic and the
// marketplace workflows.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"autohub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "autohub"

// Registry owns the collectors of one process.
type Registry struct {
	registry *prometheus.Registry

	httpRequests           *prometheus.CounterVec
	httpDuration           *prometheus.HistogramVec
	orderTransitions       *prometheus.CounterVec
	appointmentTransitions *prometheus.CounterVec
	inventoryAdjustments   *prometheus.CounterVec
	inventoryUnits         *prometheus.CounterVec
	reviews                *prometheus.CounterVec
}

// NewRegistry registers the process, Go runtime and marketplace collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		orderTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Order status transitions.",
		}, []string{"from", "to"}),
		appointmentTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_transitions_total",
			Help:      "Appointment status transitions.",
		}, []string{"from", "to"}),
		inventoryAdjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_adjustments_total",
			Help:      "Spare part quantity adjustments by direction.",
		}, []string{"direction"}),
		inventoryUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_units_total",
			Help:      "Spare part units removed or restored.",
		}, []string{"direction"}),
		reviews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviews_submitted_total",
			Help:      "Accepted reviews by item type.",
		}, []string{"item_type"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpDuration,
		r.orderTransitions,
		r.appointmentTransitions,
		r.inventoryAdjustments,
		r.inventoryUnits,
		r.reviews,
	)

	return r
}

// Register adds an externally owned collector, such as database pool stats.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.registry.Register(c)
}

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per matched route.
func (r *Registry) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = statusFromError(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			method := c.Request().Method
			r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
			r.httpDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// statusFromError predicts the code the error handler will write.
func statusFromError(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	var coded interface{ HTTPCode() int }
	if errors.As(err, &coded) {
		return coded.HTTPCode()
	}

	return http.StatusInternalServerError
}

func (r *Registry) OrderTransition(from, to string) {
	r.orderTransitions.WithLabelValues(from, to).Inc()
}

func (r *Registry) AppointmentTransition(from, to string) {
	r.appointmentTransitions.WithLabelValues(from, to).Inc()
}

func (r *Registry) InventoryAdjusted(direction string, amount int) {
	r.inventoryAdjustments.WithLabelValues(direction).Inc()
	r.inventoryUnits.WithLabelValues(direction).Add(float64(amount))
}

func (r *Registry) ReviewSubmitted(itemType string) {
	r.reviews.WithLabelValues(itemType).Inc()
}

var _ service.Metrics = (*Registry)(nil)

// Module provides the registry both as itself and as service.Metrics.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(r *Registry) service.Metrics { return r },
	),
)
