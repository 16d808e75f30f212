package process

import "fmt"

// LaunchError reports that a child process could not be created at all:
// invalid executable path, permission denied, not executable. It is fatal
// and immediate; no partial Result accompanies it.
type LaunchError struct {
	// Path is the executable reference that failed to launch.
	Path string
	// Err is the OS diagnostic.
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("process: launch %q: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ResolutionError reports that an executable name was not found by the
// system search mechanism. Quiet resolution converts this into a boolean
// instead of an error.
type ResolutionError struct {
	// Name is the executable name that could not be resolved.
	Name string
	// Detail is any diagnostic text produced by the search tool.
	Detail string
}

func (e *ResolutionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("process: resolve %q: %s", e.Name, e.Detail)
	}
	return fmt.Sprintf("process: resolve %q: not found", e.Name)
}
