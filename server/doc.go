// Package server provides the HTTP front of the hostd bridge daemon: a Gin
// engine served over h2c so HTTP/2 clients work without TLS on loopback.
//
// Built-in middleware (server/middleware): panic recovery, request IDs,
// CORS, body-size limits, rate limiting, request logging, and bearer-token
// authentication. Built-in endpoints (server/endpoint): /health, /info,
// /metrics, /version, and the Kubernetes-style /liveness and /readiness
// probes.
package server
