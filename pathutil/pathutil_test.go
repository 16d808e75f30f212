package pathutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hostkit-io/hostkit/pathutil"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	if got := pathutil.Expand("~"); got != home {
		t.Fatalf("expected %q, got %q", home, got)
	}
	want := filepath.Join(home, "projects")
	if got := pathutil.Expand("~/projects"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExpandPassthrough(t *testing.T) {
	for _, path := range []string{"/usr/bin", "relative/path", "~user/other", ""} {
		if got := pathutil.Expand(path); got != path {
			t.Fatalf("expected %q unchanged, got %q", path, got)
		}
	}
}

func TestAbsolute(t *testing.T) {
	got, err := pathutil.Absolute("some/relative")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Fatalf("expected absolute path, got %q", got)
	}

	got, err = pathutil.Absolute("/already/../abs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/abs" {
		t.Fatalf("expected cleaned '/abs', got %q", got)
	}
}
