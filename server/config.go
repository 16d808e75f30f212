package server

import (
	"fmt"

	"github.com/hostkit-io/hostkit/server/middleware"
)

// Config holds HTTP server configuration.
type Config struct {
	Host         string                `yaml:"host" mapstructure:"host"`
	Port         int                   `yaml:"port" mapstructure:"port"`
	ReadTimeout  int                   `yaml:"read_timeout" mapstructure:"read_timeout"`   // seconds
	WriteTimeout int                   `yaml:"write_timeout" mapstructure:"write_timeout"` // seconds
	IdleTimeout  int                   `yaml:"idle_timeout" mapstructure:"idle_timeout"`   // seconds
	MaxBodySize  string                `yaml:"max_body_size" mapstructure:"max_body_size"` // e.g. "4MB"
	CORS         middleware.CORSConfig `yaml:"cors" mapstructure:"cors"`
	// RequestsPerMinute enables per-client rate limiting when > 0.
	RequestsPerMinute int `yaml:"requests_per_minute" mapstructure:"requests_per_minute"`
}

// ApplyDefaults fills unset fields. The bridge binds loopback by default:
// exposing host capabilities on all interfaces is an explicit decision.
func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "127.0.0.1"
	}
	if c.Port == 0 {
		c.Port = 7311
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15
	}
	// Process runs can legitimately take a long time, so the write timeout
	// defaults well above the read timeout.
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 300
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "4MB"
	}
	def := middleware.DefaultCORSConfig()
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = def.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = def.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = def.AllowedHeaders
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535 (got: %d)", c.Port)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("server.read_timeout must be non-negative (got: %d)", c.ReadTimeout)
	}
	if c.WriteTimeout < 0 {
		return fmt.Errorf("server.write_timeout must be non-negative (got: %d)", c.WriteTimeout)
	}
	if c.IdleTimeout < 0 {
		return fmt.Errorf("server.idle_timeout must be non-negative (got: %d)", c.IdleTimeout)
	}
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("server.requests_per_minute must be non-negative (got: %d)", c.RequestsPerMinute)
	}
	return nil
}
