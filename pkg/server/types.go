package server

import (
	"time"

	"github.com/NVIDIA/semver/pkg/semver"
)

// ErrorResponse represents error responses returned to API clients
type ErrorResponse struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"requestId"`
	Timestamp time.Time              `json:"timestamp"`
	Retryable bool                   `json:"retryable"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// ParseResponse is the result of GET /v1/parse
type ParseResponse struct {
	Input   string         `json:"input"`
	Version semver.Version `json:"version"`

	// Canonical is the normalized string form reconstructed from the
	// parsed fields.
	Canonical string `json:"canonical"`
}

// CompareResponse is the result of GET /v1/compare.
//
// Precedence follows the semver ordering law (build metadata ignored,
// alphanumeric prerelease identifiers case-insensitive); Equal is strict
// identity over all fields. The two can disagree for inputs differing only
// in build metadata or identifier case.
type CompareResponse struct {
	A semver.Version `json:"a"`
	B semver.Version `json:"b"`

	// Precedence is -1, 0 or 1 for a < b, a = b and a > b respectively.
	Precedence int `json:"precedence"`

	// Relation is the precedence rendered as "<", "=" or ">".
	Relation string `json:"relation"`

	// Equal reports strict equality, including build metadata and case.
	Equal bool `json:"equal"`
}
