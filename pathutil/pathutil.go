// Package pathutil provides the path-expansion glue the host libraries
// share: tilde expansion and relative-to-absolute normalization.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading tilde against the current user's home
// directory. Paths without a tilde prefix are returned unchanged, as is
// any path when the home directory cannot be determined.
func Expand(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// Absolute cleans path and makes it absolute relative to the current
// working directory.
func Absolute(path string) (string, error) {
	return filepath.Abs(path)
}
