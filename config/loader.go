// Package config loads hostkit configuration from YAML files, .env
// files, and environment variables, in that precedence order.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadConfig loads configuration for a service into the provided cfg
// struct. It searches standard locations for config.yml and .env when
// explicit paths are not given, binds environment variables, and
// unmarshals the result into cfg.
func LoadConfig(serviceName string, cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFirst(lc.FileSystem,
			fmt.Sprintf("./cmd/%s/config.yml", serviceName),
			"./config/config.yml",
			"./config.yml",
		)
	}
	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findFirst(lc.FileSystem,
			fmt.Sprintf(".env.%s", serviceName),
			".env",
		)
	}

	v := viper.New()

	if configFile != "" && lc.FileSystem.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvKeys(v, reflect.TypeOf(cfg), "")

	if envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			return fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for %s: %w", serviceName, err)
	}
	return nil
}

func findFirst(fs FileSystem, paths ...string) string {
	for _, path := range paths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}

// bindEnvKeys walks the config struct and binds a viper key for every
// mapstructure-tagged leaf so AutomaticEnv can see nested fields.
func bindEnvKeys(v *viper.Viper, t reflect.Type, prefix string) {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if tag == "" || tag == "-" {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		ft := field.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			bindEnvKeys(v, ft, key)
			continue
		}
		_ = v.BindEnv(key)
	}
}
