package config

import (
	"fmt"

	"github.com/hostkit-io/hostkit/auth"
	"github.com/hostkit-io/hostkit/logger"
	"github.com/hostkit-io/hostkit/observability"
	"github.com/hostkit-io/hostkit/server"
)

// ServiceName is the config search and env prefix name for the daemon.
const ServiceName = "hostd"

// FilesConfig configures the filesystem operations layer.
type FilesConfig struct {
	// TrashDir overrides the XDG trash location.
	TrashDir string `yaml:"trash_dir" mapstructure:"trash_dir"`
}

// TextConfig configures text extraction.
type TextConfig struct {
	// Region is the default phone-number region (ISO 3166-1 alpha-2).
	Region string `yaml:"region" mapstructure:"region"`
}

// Config is the full hostd configuration.
type Config struct {
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Auth          auth.Config          `yaml:"auth" mapstructure:"auth"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
	Files         FilesConfig          `yaml:"files" mapstructure:"files"`
	Text          TextConfig           `yaml:"text" mapstructure:"text"`
}

// ApplyDefaults fills every section's unset fields.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Observability.ApplyDefaults()
	if c.Text.Region == "" {
		c.Text.Region = "US"
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("observability: %w", err)
	}
	return nil
}

// Load reads the hostd configuration from the standard locations, applies
// defaults, and validates.
func Load(opts ...LoaderOption) (*Config, error) {
	var cfg Config
	if err := LoadConfig(ServiceName, &cfg, opts...); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
