package version_test

import (
	"strings"
	"testing"

	"github.com/hostkit-io/hostkit/version"
)

func TestGetDefaults(t *testing.T) {
	info := version.Get()
	if info.Version == "" {
		t.Fatal("version must never be empty")
	}
	if info.Version == "dev" && info.IsRelease {
		t.Fatal("dev builds must not be flagged as releases")
	}
	if len(info.GitCommit) > 7 {
		t.Fatalf("commit must be truncated to 7 chars, got %q", info.GitCommit)
	}
}

func TestShort(t *testing.T) {
	s := version.Short()
	if s == "" {
		t.Fatal("short version must not be empty")
	}
	if !strings.HasPrefix(s, version.Version) {
		t.Fatalf("short version %q should start with %q", s, version.Version)
	}
}
