package server

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// contextKeyRequestID is the context key for request ID
	contextKeyRequestID contextKey = "requestID"
	// contextKeyAPIVersion is the context key for API version
	contextKeyAPIVersion contextKey = "apiVersion"
)

// requestIDFrom returns the request ID stored by requestIDMiddleware,
// generating a fresh one when the middleware did not run (for example the
// system endpoints that skip the middleware chain).
func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyRequestID).(string)
	if id == "" {
		return uuid.New().String()
	}
	return id
}
