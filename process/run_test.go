package process_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/hostkit-io/hostkit/process"
)

func TestRunNoOutput(t *testing.T) {
	res, err := process.Run(process.Command{Path: "true"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", res.ExitCode)
	}
	if res.Stdout != "" || res.Stderr != "" {
		t.Fatalf("expected empty streams, got stdout=%q stderr=%q", res.Stdout, res.Stderr)
	}
}

func TestRunStripsOneTrailingTerminator(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"single newline stripped", `printf 'hello\n'`, "hello"},
		{"only one newline stripped", `printf 'hello\n\n'`, "hello\n"},
		{"no terminator untouched", `printf 'hello'`, "hello"},
		{"crlf stripped as one", `printf 'hello\r\n'`, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := process.Run(process.Command{Path: "sh", Args: []string{"-c", tt.script}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Stdout != tt.want {
				t.Fatalf("expected stdout %q, got %q", tt.want, res.Stdout)
			}
		})
	}
}

func TestRunInputRoundTrip(t *testing.T) {
	input := "abc"
	res, err := process.Run(process.Command{Path: "cat", Input: &input})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "abc" {
		t.Fatalf("expected 'abc', got %q", res.Stdout)
	}
}

func TestRunStdinClosedWithoutInput(t *testing.T) {
	// cat must see end-of-input immediately and exit cleanly.
	res, err := process.Run(process.Command{Path: "cat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 0 || res.Stdout != "" {
		t.Fatalf("expected clean empty run, got exit=%d stdout=%q", res.ExitCode, res.Stdout)
	}
}

func TestRunWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	res, err := process.Run(process.Command{Path: "pwd", Dir: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}
	got, err := filepath.EvalSymlinks(res.Stdout)
	if err != nil {
		t.Fatalf("eval symlinks: %v", err)
	}
	if got != want {
		t.Fatalf("expected working dir %q, got %q", want, got)
	}
}

func TestRunEnvironmentReplacement(t *testing.T) {
	res, err := process.Run(process.Command{
		Path: "env",
		Env:  map[string]string{"FOO": "bar"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "FOO=bar" {
		t.Fatalf("expected exactly 'FOO=bar', got %q", res.Stdout)
	}
}

func TestRunExitCodeIsData(t *testing.T) {
	res, err := process.Run(process.Command{Path: "sh", Args: []string{"-c", "exit 42"}})
	if err != nil {
		t.Fatalf("non-zero exit must not be an error, got: %v", err)
	}
	if res.ExitCode != 42 {
		t.Fatalf("expected exit code 42, got %d", res.ExitCode)
	}
}

func TestRunStderrCaptured(t *testing.T) {
	res, err := process.Run(process.Command{Path: "sh", Args: []string{"-c", "echo oops >&2"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stderr != "oops" {
		t.Fatalf("expected 'oops' on stderr, got %q", res.Stderr)
	}
	if res.Stdout != "" {
		t.Fatalf("expected empty stdout, got %q", res.Stdout)
	}
}

func TestRunLaunchFailure(t *testing.T) {
	_, err := process.Run(process.Command{Path: "/no/such/executable"})
	if err == nil {
		t.Fatal("expected launch error")
	}
	var launchErr *process.LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("expected *LaunchError, got %T: %v", err, err)
	}
	if launchErr.Path != "/no/such/executable" {
		t.Fatalf("expected failing path in error, got %q", launchErr.Path)
	}
}

func TestRunEmptyPath(t *testing.T) {
	_, err := process.Run(process.Command{})
	var launchErr *process.LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("expected *LaunchError, got %v", err)
	}
}

// Writes well past the OS pipe buffer on both streams before exiting.
// Regression test for the wait-before-drain deadlock.
func TestRunLargeOutputBothStreams(t *testing.T) {
	const lines = 200000
	script := fmt.Sprintf("seq 1 %d; seq 1 %d >&2", lines, lines)

	res, err := process.Run(process.Command{Path: "sh", Args: []string{"-c", script}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, text := range map[string]string{"stdout": res.Stdout, "stderr": res.Stderr} {
		got := strings.Split(text, "\n")
		if len(got) != lines {
			t.Fatalf("%s: expected %d lines, got %d", name, lines, len(got))
		}
		if got[0] != "1" || got[lines-1] != fmt.Sprint(lines) {
			t.Fatalf("%s: content corrupted: first=%q last=%q", name, got[0], got[lines-1])
		}
	}
}

func TestRunConcurrentIsolation(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := fmt.Sprintf("payload-%d", i)
			res, err := process.Run(process.Command{Path: "cat", Input: &input})
			if err != nil {
				errCh <- err
				return
			}
			if res.Stdout != input {
				errCh <- fmt.Errorf("worker %d: expected %q, got %q", i, input, res.Stdout)
			}
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Error(err)
	}
}

func TestRunTildeWorkingDirectory(t *testing.T) {
	res, err := process.Run(process.Command{Path: "pwd", Dir: "~"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout == "" || res.Stdout == "~" {
		t.Fatalf("expected expanded home directory, got %q", res.Stdout)
	}
}
