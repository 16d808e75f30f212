package process

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/hostkit-io/hostkit/pathutil"
)

// Run executes cmd and blocks until the child process has terminated and
// both of its output streams have been drained. It wires three fresh pipes
// to the child's standard streams, optionally feeds Input to stdin, and
// returns the exit status with the captured output.
//
// Run is deliberately synchronous and uncancelable: once the child has
// started it always runs to completion and always yields a Result. A
// non-zero exit code is returned as data, not as an error. The only error
// paths are a failed launch (*LaunchError) and a failed exit-status wait.
//
// Concurrent Run calls are independent; each owns its pipes and process
// handle exclusively and results are never mixed across calls.
func Run(cmd Command) (*Result, error) {
	if cmd.Path == "" {
		return nil, &LaunchError{Path: cmd.Path, Err: errors.New("executable path is required")}
	}

	path, err := resolveLaunchPath(cmd.Path)
	if err != nil {
		return nil, &LaunchError{Path: cmd.Path, Err: err}
	}

	c := exec.Command(path, cmd.Args...)

	if cmd.Dir != "" {
		dir, err := pathutil.Absolute(pathutil.Expand(cmd.Dir))
		if err != nil {
			return nil, &LaunchError{Path: cmd.Path, Err: err}
		}
		c.Dir = dir
	}
	if cmd.Env != nil {
		c.Env = flattenEnv(cmd.Env)
	}

	stdin, err := c.StdinPipe()
	if err != nil {
		return nil, &LaunchError{Path: cmd.Path, Err: err}
	}
	stdout, err := c.StdoutPipe()
	if err != nil {
		return nil, &LaunchError{Path: cmd.Path, Err: err}
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return nil, &LaunchError{Path: cmd.Path, Err: err}
	}

	if err := c.Start(); err != nil {
		return nil, &LaunchError{Path: cmd.Path, Err: err}
	}

	// Deliver input and close the write end unconditionally so the child
	// observes end-of-input. A write failure here means the child closed
	// its stdin early, which is its prerogative.
	if cmd.Input != nil {
		_, _ = io.WriteString(stdin, *cmd.Input)
	}
	_ = stdin.Close()

	// Drain both streams concurrently with the child's execution. Waiting
	// for exit before draining deadlocks as soon as the child writes more
	// than one pipe buffer to either stream.
	var (
		wg             sync.WaitGroup
		outBuf, errBuf []byte
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		outBuf = drain(stdout)
	}()
	go func() {
		defer wg.Done()
		errBuf = drain(stderr)
	}()
	wg.Wait()

	exitCode := 0
	if err := c.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("process: wait for %q: %w", cmd.Path, err)
		}
		exitCode = exitErr.ExitCode()
	}

	return assemble(exitCode, outBuf, errBuf), nil
}

// resolveLaunchPath expands and absolutizes path-like executable
// references. Bare names pass through untouched so the OS search path
// applies to them.
func resolveLaunchPath(path string) (string, error) {
	if !strings.ContainsRune(path, '/') && !strings.HasPrefix(path, "~") {
		return path, nil
	}
	return pathutil.Absolute(pathutil.Expand(path))
}

// flattenEnv converts an environment mapping to the KEY=VALUE form the
// process-creation primitive expects. The result is the child's entire
// environment; nothing is inherited.
func flattenEnv(env map[string]string) []string {
	flat := make([]string, 0, len(env))
	for k, v := range env {
		flat = append(flat, k+"="+v)
	}
	return flat
}
