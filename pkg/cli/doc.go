// Package cli implements the command-line interface for the semvctl tool.
//
// # Overview
//
// semvctl exposes strict semantic version parsing and comparison on the
// command line. Every command validates its inputs against the full semver
// grammar and fails with a non-zero exit status on anything malformed;
// there is no lenient or best-effort mode.
//
// # Commands
//
// parse - Validate and decompose a version string:
//
//	semvctl parse 1.2.3-rc.1+build.5 [--output FILE] [--format yaml|json|table]
//
// Parses a version and emits its major, minor and patch components together
// with the prerelease and build identifier lists and the canonical string form.
//
// compare - Compare two versions:
//
//	semvctl compare 1.2.3 1.2.4-alpha [--format json]
//
// Reports both the precedence relation (build metadata ignored, alphanumeric
// prerelease identifiers case-insensitive) and strict equality (all fields,
// case- and build-sensitive). The two relations can disagree.
//
// sort - Order versions by precedence:
//
//	semvctl sort 1.0.0 1.0.0-rc.1 1.0.0-alpha
//
// Sorts the arguments in ascending precedence order; versions with equal
// precedence keep their input order.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (malformed version, invalid arguments, write failure)
//
// The CLI uses the urfave/cli/v3 framework and delegates to pkg/semver for
// the parsing and comparison semantics and to pkg/serializer for output
// formatting. Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/semver/pkg/cli.version=1.0.0'"
package cli
