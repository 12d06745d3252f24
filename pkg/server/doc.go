// Package server implements the semver HTTP API server.
//
// # Overview
//
// The server exposes the core semver library over a small, stateless HTTP
// surface. It is intended for environments where version checks happen in
// pipelines or sidecars that cannot link the Go library directly.
//
// # Endpoints
//
//	GET /v1/parse?v=VERSION      Parse a version string into its fields
//	GET /v1/compare?a=A&b=B      Precedence and strict equality of two versions
//	GET /health                  Liveness probe
//	GET /ready                   Readiness probe
//	GET /metrics                 Prometheus metrics
//
// # Middleware
//
// API endpoints are wrapped with metrics instrumentation, API version
// negotiation, request ID propagation, panic recovery, rate limiting, and
// request logging. System endpoints (/health, /ready, /metrics) bypass
// rate limiting.
//
// # Configuration
//
// Configuration comes from the environment with sensible defaults:
//
//	PORT                      Listen port (default 8080)
//	LOG_LEVEL                 Logging verbosity (default info)
//	SHUTDOWN_TIMEOUT_SECONDS  Graceful shutdown budget (default 30)
//
// # Usage
//
//	func main() {
//	    if err := server.Run(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package server
