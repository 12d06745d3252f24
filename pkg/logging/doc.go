// Package logging provides structured logging utilities shared by the
// semver CLI and API server.
//
// # Overview
//
// This package wraps the standard library slog package with project
// defaults: JSON output to stderr, environment-based level configuration,
// and module/version context injection. Debug level additionally records
// source location.
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("semvctl", version)
//
//	    slog.Info("comparing versions", "a", a, "b", b)
//	    slog.Error("parse failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("semver-server", "v1.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity (case-insensitive):
// DEBUG, INFO (default), WARN/WARNING, ERROR.
//
//	LOG_LEVEL=debug semvctl compare 1.2.3 1.2.4
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "comparing versions",
//	    "module": "semvctl",
//	    "version": "v1.0.0",
//	    "a": "1.2.3",
//	    "b": "1.2.4"
//	}
package logging
