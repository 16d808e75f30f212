// Package middleware holds the HTTP middleware used by the hostd server.
// Two shapes coexist: the standard func(http.Handler) http.Handler form for
// middleware applied at the handler level (covers every mounted handler),
// and gin.HandlerFunc for middleware that needs the Gin context.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware. The first in the list is the outermost: it runs
// first on a request and last on a response.
func Chain(middlewares ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
