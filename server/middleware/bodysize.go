package middleware

import (
	"net/http"

	"github.com/hostkit-io/hostkit/util"
)

const defaultMaxBodySize = 4 * 1024 * 1024 // 4MB

// BodySizeLimit returns middleware that restricts the request body to the
// given size string (e.g. "4MB", "512KB").
func BodySizeLimit(maxSize string) Middleware {
	size := util.ParseSize(maxSize, defaultMaxBodySize)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, size)
			next.ServeHTTP(w, r)
		})
	}
}
