package persistence

import (
	"context"
)

// requestIDKey is the context key for storing the request id
type requestIDKey struct{}

// ContextWithRequestID returns a new context carrying the request id, so that
// storage logs can be correlated with the HTTP request that caused them
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext retrieves the request id from context
// Returns "" if no request id is present
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
