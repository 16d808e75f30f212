package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type meterProvider = sdkmetric.MeterProvider

func initMeter(ctx context.Context, cfg Config, serviceName, serviceVersion string) (*meterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	res, err := newResource(serviceName, serviceVersion, cfg.Environment)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// Metrics holds the instruments hostd records: subprocess runs, filesystem
// operations, and text extractions.
type Metrics struct {
	runTotal    metric.Int64Counter
	runDuration metric.Float64Histogram
	runActive   metric.Int64UpDownCounter
	fsOpTotal   metric.Int64Counter
	errorTotal  metric.Int64Counter
}

// NewMetrics creates the bridge instruments on the global meter.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(tracerName)

	runTotal, err := meter.Int64Counter("process.run.total",
		metric.WithDescription("Total subprocess runs"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram("process.run.duration",
		metric.WithDescription("Subprocess wall time in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	runActive, err := meter.Int64UpDownCounter("process.run.active",
		metric.WithDescription("Subprocesses currently running"),
	)
	if err != nil {
		return nil, err
	}

	fsOpTotal, err := meter.Int64Counter("fs.op.total",
		metric.WithDescription("Total filesystem operations by kind"),
	)
	if err != nil {
		return nil, err
	}

	errorTotal, err := meter.Int64Counter("error.total",
		metric.WithDescription("Total errors by type and component"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		runTotal:    runTotal,
		runDuration: runDuration,
		runActive:   runActive,
		fsOpTotal:   fsOpTotal,
		errorTotal:  errorTotal,
	}, nil
}

// RecordRunStart marks a subprocess as started.
func (m *Metrics) RecordRunStart(ctx context.Context) {
	m.runActive.Add(ctx, 1)
}

// RecordRunEnd records a completed subprocess run.
func (m *Metrics) RecordRunEnd(ctx context.Context, executable string, exitCode int, duration time.Duration) {
	m.runActive.Add(ctx, -1)
	m.runTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("executable", executable),
		attribute.Int("exit_code", exitCode),
	))
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("executable", executable),
	))
}

// RecordFileOp records one filesystem operation.
func (m *Metrics) RecordFileOp(ctx context.Context, op string) {
	m.fsOpTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op)))
}

// RecordError records an error by type and component.
func (m *Metrics) RecordError(ctx context.Context, errType, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("component", component),
	))
}
