// Package endpoint provides the standard operational endpoints mounted by
// the hostd server.
package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hostkit-io/hostkit/component"
)

// HealthChecker returns health status for registered components.
type HealthChecker func(ctx context.Context) []component.Health

// Health returns a handler reporting overall service health with per-component
// detail. Any unhealthy component makes the report unhealthy (503); a degraded
// component degrades the report but keeps it 200.
func Health(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		var components []component.Health

		if checker != nil {
			components = checker(c.Request.Context())
			for _, ch := range components {
				if ch.Status == component.StatusUnhealthy {
					status = "unhealthy"
					break
				}
				if ch.Status == component.StatusDegraded {
					status = "degraded"
				}
			}
		}

		httpStatus := http.StatusOK
		if status == "unhealthy" {
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":     status,
			"service":    serviceName,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": components,
		})
	}
}

// Liveness reports that the process is up. It never consults components:
// a live process with a broken dependency should be restarted by readiness
// signals, not liveness.
func Liveness() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
	}
}

// Readiness reports whether the service can take traffic.
func Readiness(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker != nil {
			for _, ch := range checker(c.Request.Context()) {
				if ch.Status == component.StatusUnhealthy {
					c.JSON(http.StatusServiceUnavailable, gin.H{
						"status": "not ready",
						"reason": ch.Name,
					})
					return
				}
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
