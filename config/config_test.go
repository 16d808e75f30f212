package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hostkit-io/hostkit/config"
)

// fakeFS serves a fixed set of files from a temp directory.
type fakeFS struct {
	files map[string]string
}

func (f *fakeFS) Exists(path string) bool {
	_, ok := f.files[path]
	return ok
}

func (f *fakeFS) LoadEnv(string) error { return nil }

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(config.WithFileSystem(&fakeFS{files: map[string]string{}}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Fatalf("expected loopback default host, got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != 7311 {
		t.Fatalf("expected default port 7311, got %d", cfg.Server.Port)
	}
	if cfg.Auth.Enabled {
		t.Fatal("auth must be off by default")
	}
	if cfg.Observability.Enabled {
		t.Fatal("telemetry must be off by default")
	}
	if cfg.Text.Region != "US" {
		t.Fatalf("expected default region US, got %q", cfg.Text.Region)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: 9000
text:
  region: GB
files:
  trash_dir: /tmp/trash
`)

	cfg, err := config.Load(config.WithConfigFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Fatalf("expected port 9000 from file, got %d", cfg.Server.Port)
	}
	if cfg.Text.Region != "GB" {
		t.Fatalf("expected region GB from file, got %q", cfg.Text.Region)
	}
	if cfg.Files.TrashDir != "/tmp/trash" {
		t.Fatalf("expected trash dir from file, got %q", cfg.Files.TrashDir)
	}
	// Unset sections still get defaults.
	if cfg.Server.Host != "127.0.0.1" {
		t.Fatalf("expected default host, got %q", cfg.Server.Host)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := config.Load(config.WithFileSystem(&fakeFS{files: map[string]string{}}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Fatalf("expected env override 9100, got %d", cfg.Server.Port)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: 99999
`)
	if _, err := config.Load(config.WithConfigFile(path)); err == nil {
		t.Fatal("expected validation error for out-of-range port")
	}
}

func TestLoadRejectsEnabledAuthWithoutSecret(t *testing.T) {
	path := writeTempConfig(t, `
auth:
  enabled: true
`)
	if _, err := config.Load(config.WithConfigFile(path)); err == nil {
		t.Fatal("expected validation error for auth without secret")
	}
}
