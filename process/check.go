package process

import (
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

var (
	checkOnce sync.Once
	checkErr  error
)

// Check verifies once per hosting process that the subprocess subsystem
// can operate on this platform: a POSIX-style OS and a reachable search
// tool. Subsequent calls return the first result without re-probing.
// Call it at process startup, not per Run.
func Check() error {
	checkOnce.Do(func() {
		if runtime.GOOS == "windows" {
			checkErr = fmt.Errorf("process: unsupported platform %s", runtime.GOOS)
			return
		}
		if _, err := exec.LookPath(searchTool); err != nil {
			checkErr = fmt.Errorf("process: search tool %q unavailable: %w", searchTool, err)
		}
	})
	return checkErr
}
