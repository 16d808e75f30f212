package middleware

import (
	"net/http"
	"time"

	"github.com/hostkit-io/hostkit/logger"
)

var healthPaths = map[string]bool{
	"/health":    true,
	"/liveness":  true,
	"/readiness": true,
	"/metrics":   true,
}

// RequestLogger returns middleware that logs every request with method, path,
// status, and duration. Probe endpoints are silently skipped.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if healthPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)
			duration := time.Since(start)

			fields := map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      sw.Status(),
				"duration_ms": duration.Milliseconds(),
			}
			if id := r.Header.Get(HeaderRequestID); id != "" {
				fields["request_id"] = id
			}

			logByStatus(log, fields, sw.Status())
		})
	}
}

// logByStatus logs request fields at a level matching the HTTP status.
// A nil log falls back to the global logger.
func logByStatus(log *logger.Logger, fields map[string]interface{}, status int) {
	logErr := logger.Error
	logWarn := logger.Warn
	logDebug := logger.Debug
	if log != nil {
		logErr = log.Error
		logWarn = log.Warn
		logDebug = log.Debug
	}

	switch {
	case status >= 500:
		logErr("Request completed", fields)
	case status >= 400:
		logWarn("Request completed", fields)
	default:
		logDebug("Request completed", fields)
	}
}
