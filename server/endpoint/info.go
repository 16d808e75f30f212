package endpoint

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hostkit-io/hostkit/version"
)

// startTime records process start for uptime calculation.
var startTime = time.Now()

// Info returns a handler reporting service, build, and uptime information.
func Info(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v := version.Get()
		c.JSON(http.StatusOK, gin.H{
			"service":    serviceName,
			"version":    v.Version,
			"git_commit": v.GitCommit,
			"build_time": v.BuildTime,
			"go_version": v.GoVersion,
			"is_release": v.IsRelease,
			"is_dirty":   v.IsDirty,
			"uptime":     time.Since(startTime).String(),
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// Version returns a handler reporting build version information only.
func Version() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	}
}

// Metrics returns a handler reporting runtime memory and goroutine metrics.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(http.StatusOK, gin.H{
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"goroutines": runtime.NumGoroutine(),
			"memory": gin.H{
				"alloc_mb":       m.Alloc / 1024 / 1024,
				"total_alloc_mb": m.TotalAlloc / 1024 / 1024,
				"sys_mb":         m.Sys / 1024 / 1024,
				"gc_runs":        m.NumGC,
			},
		})
	}
}
