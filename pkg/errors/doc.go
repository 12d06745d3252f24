// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// The core semver library reports parse failures with its own
// *semver.ParseError; this package is used by the outer surfaces (CLI and
// API server) to classify failures for clients.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to parse version",
//	    parseErr,
//	    map[string]interface{}{
//	        "input": input,
//	    },
//	)
package errors
