// Package version exposes build information embedded at compile time.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags:
//
//	-X github.com/hostkit-io/hostkit/version.Version=v1.2.3
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info is a snapshot of the binary's build metadata.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
	IsDirty   bool   `json:"is_dirty"`
}

// Get returns build metadata, filling gaps from debug.ReadBuildInfo when
// ldflags were not provided (e.g. go install or go run).
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			case "vcs.modified":
				info.IsDirty = s.Value == "true"
			}
		}
	}

	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}
	return info
}

// Short returns a compact version string for logs and --version output.
func Short() string {
	info := Get()
	switch {
	case info.GitCommit == "":
		return info.Version
	case info.IsDirty:
		return fmt.Sprintf("%s-%s-dirty", info.Version, info.GitCommit)
	default:
		return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
	}
}
