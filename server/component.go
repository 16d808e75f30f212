package server

import (
	"context"

	"github.com/hostkit-io/hostkit/component"
)

const componentName = "http-server"

var _ component.Component = (*Component)(nil)

// Component wraps Server so it can be lifecycle-managed by a
// component.Registry.
type Component struct {
	server *Server
}

// NewComponent returns a component.Component backed by the given Server.
func NewComponent(s *Server) *Component {
	return &Component{server: s}
}

func (c *Component) Name() string { return componentName }

func (c *Component) Start(ctx context.Context) error {
	return c.server.Start(ctx)
}

func (c *Component) Stop(ctx context.Context) error {
	return c.server.Stop(ctx)
}

func (c *Component) Health(ctx context.Context) component.Health {
	if c.server.httpServer != nil {
		return component.Health{Name: componentName, Status: component.StatusHealthy}
	}
	return component.Health{
		Name:    componentName,
		Status:  component.StatusUnhealthy,
		Message: "HTTP server not initialized",
	}
}
