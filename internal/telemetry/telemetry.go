// Package telemetry wires the OpenTelemetry metric SDK to the Prometheus
// registry that /metrics serves. Instrumented packages keep using the global
// otel meter; without this wiring their instruments are no-ops.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config describes the instrumented service.
type Config struct {
	ServiceName    string
	ServiceVersion string
}

// Telemetry owns the meter provider and its shutdown.
type Telemetry struct {
	meterProvider *sdkmetric.MeterProvider
}

// New creates the meter provider backed by the default Prometheus registry
// and installs it as the global otel provider.
func New(cfg Config) (*Telemetry, error) {
	if cfg.ServiceName == "" {
		return nil, fmt.Errorf("service name is required")
	}

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	)

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	return &Telemetry{meterProvider: mp}, nil
}

// Shutdown flushes and stops the meter provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil || t.meterProvider == nil {
		return nil
	}
	return t.meterProvider.Shutdown(ctx)
}
