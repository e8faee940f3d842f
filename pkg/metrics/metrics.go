// Package metrics owns the OpenTelemetry instruments recorded by the
// password session and the Prometheus exporter that publishes them.
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// EntropyBuckets are histogram boundaries in bits. They line up with the
// weak/medium/strong bands and the 128-bit meter cap.
var EntropyBuckets = []float64{20, 40, 60, 80, 100, 128, 160, 256} //nolint: gochecknoglobals

const meterName = "passgen"

// Generation results recorded on the generations counter.
const (
	ResultOK           = "ok"
	ResultEmptyCharset = "empty_charset"
	ResultError        = "error"
)

// Instruments groups every instrument the session records.
type Instruments struct {
	generations      metric.Int64Counter
	entropy          metric.Float64Histogram
	clipboardFailure metric.Int64Counter
}

// New creates the instruments on the given meter.
func New(meter metric.Meter) (*Instruments, error) {
	generations, err := meter.Int64Counter("passgen.generations",
		metric.WithDescription("Password generation attempts by result"))
	if err != nil {
		return nil, fmt.Errorf("could not create generations counter: %w", err)
	}

	entropy, err := meter.Float64Histogram("passgen.entropy",
		metric.WithDescription("Estimated entropy of generated passwords"),
		metric.WithUnit("bit"),
		metric.WithExplicitBucketBoundaries(EntropyBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create entropy histogram: %w", err)
	}

	clipboardFailure, err := meter.Int64Counter("passgen.clipboard.failures",
		metric.WithDescription("Failed clipboard writes"))
	if err != nil {
		return nil, fmt.Errorf("could not create clipboard failure counter: %w", err)
	}

	return &Instruments{
		generations:      generations,
		entropy:          entropy,
		clipboardFailure: clipboardFailure,
	}, nil
}

// Noop returns instruments that record nothing, for the CLI and tests.
func Noop() *Instruments {
	ins, _ := New(noop.NewMeterProvider().Meter(meterName))

	return ins
}

// Generation records a generation attempt with the given result.
func (i *Instruments) Generation(ctx context.Context, result string) {
	i.generations.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// Entropy records the entropy estimate of a generated password.
func (i *Instruments) Entropy(ctx context.Context, bits float64) {
	i.entropy.Record(ctx, bits)
}

// ClipboardFailure records a failed clipboard write.
func (i *Instruments) ClipboardFailure(ctx context.Context) {
	i.clipboardFailure.Add(ctx, 1)
}

// Exporter bundles a Prometheus registry fed by an OpenTelemetry meter provider.
type Exporter struct {
	Registry *prometheus.Registry
	Provider *sdkmetric.MeterProvider
}

// NewExporter creates a fresh registry and wires an OpenTelemetry meter
// provider into it through the Prometheus exporter.
func NewExporter() (*Exporter, error) {
	reg := prometheus.NewRegistry()
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return &Exporter{
		Registry: reg,
		Provider: sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)),
	}, nil
}

// Instruments creates the session instruments on the exporter's provider.
func (e *Exporter) Instruments() (*Instruments, error) {
	return New(e.Provider.Meter(meterName))
}

// Handler serves the registry in the Prometheus text format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.Registry, promhttp.HandlerOpts{})
}

// Shutdown flushes and stops the meter provider.
func (e *Exporter) Shutdown(ctx context.Context) error {
	return e.Provider.Shutdown(ctx) //nolint: wrapcheck
}
