// Package component manages the lifecycle of hostd's long-running parts.
// Components are started in registration order and stopped in reverse.
package component

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hostkit-io/hostkit/logger"
)

// HealthStatus represents the health state of a component.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// Health holds health information for a single component.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Component is a lifecycle-managed part of the daemon (HTTP server,
// telemetry exporters, and so on).
type Component interface {
	// Name returns the unique name used for registration.
	Name() string

	// Start initializes and starts the component.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the component and releases resources.
	Stop(ctx context.Context) error

	// Health reports the current health of the component.
	Health(ctx context.Context) Health
}

type entry struct {
	component Component
	started   bool
}

// Registry manages component lifecycle with deterministic ordering.
type Registry struct {
	entries []*entry
	lookup  map[string]*entry
	mu      sync.RWMutex
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{lookup: make(map[string]*entry)}
}

// Register adds a component. Register dependencies before their dependents:
// start order is registration order.
func (r *Registry) Register(c Component) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.lookup[name]; exists {
		return fmt.Errorf("component %s already registered", name)
	}

	e := &entry{component: c}
	r.entries = append(r.entries, e)
	r.lookup[name] = e

	logger.Debug("Component registered", map[string]interface{}{"component": name})
	return nil
}

// StartAll starts every component in registration order. The first failure
// aborts the sequence; already-started components remain started so the
// caller can StopAll.
func (r *Registry) StartAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		name := e.component.Name()
		if err := e.component.Start(ctx); err != nil {
			return fmt.Errorf("failed to start %s: %w", name, err)
		}
		e.started = true
		logger.Debug("Component started", map[string]interface{}{"component": name})
	}
	return nil
}

// StopAll stops started components in reverse registration order, collecting
// errors rather than aborting so every component gets a shutdown attempt.
func (r *Registry) StopAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if !e.started {
			continue
		}
		name := e.component.Name()

		stopCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if err := e.component.Stop(stopCtx); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop %s: %w", name, err))
			logger.Error("Component stop failed", map[string]interface{}{
				"component": name,
				"error":     err.Error(),
			})
		} else {
			logger.Info("Component stopped", map[string]interface{}{"component": name})
		}
		e.started = false
		cancel()
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	return nil
}

// HealthAll returns health status for all registered components in
// registration order.
func (r *Registry) HealthAll(ctx context.Context) []Health {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]Health, 0, len(r.entries))
	for _, e := range r.entries {
		results = append(results, e.component.Health(ctx))
	}
	return results
}

// Get returns a registered component by name, or nil.
func (r *Registry) Get(name string) Component {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.lookup[name]; ok {
		return e.component
	}
	return nil
}
