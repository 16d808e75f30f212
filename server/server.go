package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/hostkit-io/hostkit/logger"
	"github.com/hostkit-io/hostkit/server/endpoint"
	"github.com/hostkit-io/hostkit/server/middleware"
)

// Server is the hostd HTTP server: a Gin engine mounted on a ServeMux and
// wrapped with h2c so cleartext HTTP/2 works for local bridge clients.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	mux        *http.ServeMux
	config     Config
	log        *logger.Logger
}

// New creates a Server from cfg. Call cfg.ApplyDefaults first; no middleware
// is applied until ApplyMiddleware.
func New(cfg Config, log *logger.Logger) *Server {
	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	mux := http.NewServeMux()
	mux.Handle("/", engine)

	h2s := &http2.Server{
		MaxConcurrentStreams: 250,
		IdleTimeout:          120 * time.Second,
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      h2c.NewHandler(mux, h2s),
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeout) * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		engine:     engine,
		mux:        mux,
		config:     cfg,
		log:        log.WithComponent("server"),
	}
}

// GinEngine returns the underlying Gin engine for route registration.
func (s *Server) GinEngine() *gin.Engine {
	return s.engine
}

// Handle mounts an http.Handler at pattern on the root ServeMux, alongside
// the Gin engine.
func (s *Server) Handle(pattern string, handler http.Handler) {
	s.mux.Handle(pattern, handler)
	s.log.Debug("Handler mounted", map[string]interface{}{"pattern": pattern})
}

// ApplyMiddleware installs the standard stack. Gin-level: recovery, request
// IDs, and optional rate limiting. Handler-level (covers every mounted
// handler, not just Gin): CORS, body-size limit, request logging.
func (s *Server) ApplyMiddleware() {
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	if s.config.RequestsPerMinute > 0 {
		s.engine.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerMinute: s.config.RequestsPerMinute,
		}))
	}

	chain := middleware.Chain(
		middleware.RequestLogger(s.log),
		middleware.CORS(&s.config.CORS),
		middleware.BodySizeLimit(s.config.MaxBodySize),
	)
	s.httpServer.Handler = chain(s.httpServer.Handler)
}

// RegisterDefaultEndpoints registers the standard health and info endpoints.
func (s *Server) RegisterDefaultEndpoints(serviceName string, checker endpoint.HealthChecker) {
	s.engine.GET("/health", endpoint.Health(serviceName, checker))
	s.engine.GET("/liveness", endpoint.Liveness())
	s.engine.GET("/readiness", endpoint.Readiness(checker))
	s.engine.GET("/info", endpoint.Info(serviceName))
	s.engine.GET("/metrics", endpoint.Metrics())
	s.engine.GET("/version", endpoint.Version())
}

// Start binds the port and begins serving. It returns once the listener is
// bound so the caller knows the port is ready; serving continues in a
// goroutine.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("server failed to bind %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("Server error", map[string]interface{}{"error": err.Error()})
		}
	}()

	s.log.Info("HTTP server started", map[string]interface{}{"addr": s.httpServer.Addr})
	return nil
}

// Stop gracefully shuts down the server with a 5-second deadline.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	s.log.Info("HTTP server shut down")
	return nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
