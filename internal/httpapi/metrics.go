package httpapi

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/Alwaysrakesh/Zen-Grow/internal/httpapi"

// Metrics holds the HTTP request metrics.
type Metrics struct {
	meter          metric.Meter
	logger         *zap.Logger
	requestsTotal  metric.Int64Counter
	requestDur     metric.Float64Histogram
	activeRequests metric.Int64UpDownCounter
}

// NewMetrics creates the HTTP metrics instruments.
func NewMetrics(logger *zap.Logger) *Metrics {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Metrics{
		meter:  otel.Meter(instrumentationName),
		logger: logger,
	}
	m.init()
	return m
}

func (m *Metrics) init() {
	var err error

	m.requestsTotal, err = m.meter.Int64Counter(
		"zengrow.http.requests_total",
		metric.WithDescription("Total HTTP requests labeled by method, endpoint, and status code."),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		m.logger.Warn("failed to create requests counter", zap.Error(err))
	}

	m.requestDur, err = m.meter.Float64Histogram(
		"zengrow.http.request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds, labeled by method, endpoint, and status."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0),
	)
	if err != nil {
		m.logger.Warn("failed to create duration histogram", zap.Error(err))
	}

	m.activeRequests, err = m.meter.Int64UpDownCounter(
		"zengrow.http.active_requests",
		metric.WithDescription("Number of currently active HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		m.logger.Warn("failed to create active requests gauge", zap.Error(err))
	}
}

// Middleware returns an Echo middleware that records request metrics. The
// route template (not the raw path) labels the endpoint, so parameterized
// routes stay low-cardinality.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			ctx := c.Request().Context()

			if m.activeRequests != nil {
				m.activeRequests.Add(ctx, 1)
			}

			err := next(c)

			attrs := []attribute.KeyValue{
				attribute.String("method", c.Request().Method),
				attribute.String("endpoint", c.Path()),
				attribute.Int("status", c.Response().Status),
			}
			if m.requestsTotal != nil {
				m.requestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
			}
			if m.requestDur != nil {
				m.requestDur.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attrs...))
			}
			if m.activeRequests != nil {
				m.activeRequests.Add(ctx, -1)
			}

			return err
		}
	}
}
