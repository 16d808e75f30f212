// Package observability wires OpenTelemetry tracing and metrics for hostd.
// Telemetry is off by default: a local bridge daemon should not emit spans
// unless an operator points it at a collector.
package observability

import (
	"context"
	"fmt"

	"github.com/hostkit-io/hostkit/component"
	"github.com/hostkit-io/hostkit/version"
)

// Config configures telemetry export.
type Config struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g. "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows plain HTTP to the collector.
	Insecure    bool    `yaml:"insecure" mapstructure:"insecure"`
	Environment string  `yaml:"environment" mapstructure:"environment"`
	SampleRate  float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.SampleRate < 0 || c.SampleRate > 1 {
		return fmt.Errorf("observability.sample_rate must be in [0, 1] (got: %g)", c.SampleRate)
	}
	return nil
}

const componentName = "observability"

var _ component.Component = (*Component)(nil)

// Component manages the tracer and meter provider lifecycle.
type Component struct {
	cfg         Config
	serviceName string
	tracer      *tracerProvider
	meter       *meterProvider
}

// NewComponent returns a lifecycle component for the given telemetry config.
func NewComponent(serviceName string, cfg Config) *Component {
	return &Component{cfg: cfg, serviceName: serviceName}
}

func (c *Component) Name() string { return componentName }

// Start initializes the global tracer and meter providers. Disabled
// telemetry starts trivially: the otel globals stay no-op.
func (c *Component) Start(ctx context.Context) error {
	if !c.cfg.Enabled {
		return nil
	}

	v := version.Get()
	tp, err := initTracer(ctx, c.cfg, c.serviceName, v.Version)
	if err != nil {
		return fmt.Errorf("init tracer: %w", err)
	}
	c.tracer = tp

	mp, err := initMeter(ctx, c.cfg, c.serviceName, v.Version)
	if err != nil {
		_ = tp.Shutdown(ctx)
		c.tracer = nil
		return fmt.Errorf("init meter: %w", err)
	}
	c.meter = mp
	return nil
}

// Stop flushes and shuts down the providers.
func (c *Component) Stop(ctx context.Context) error {
	var errs []error
	if c.meter != nil {
		if err := c.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
		c.meter = nil
	}
	if c.tracer != nil {
		if err := c.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
		c.tracer = nil
	}
	if len(errs) > 0 {
		return fmt.Errorf("observability shutdown: %v", errs)
	}
	return nil
}

func (c *Component) Health(ctx context.Context) component.Health {
	if !c.cfg.Enabled {
		return component.Health{Name: componentName, Status: component.StatusHealthy, Message: "disabled"}
	}
	if c.tracer == nil || c.meter == nil {
		return component.Health{Name: componentName, Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: componentName, Status: component.StatusHealthy}
}
