// Package ctxutil provides type-safe context value management.
// Uses private key types to prevent collisions.
package ctxutil

import (
	"context"
)

type contextKey string

const (
	requestIDKey       contextKey = "ctxutil.requestID"
	interactionTypeKey contextKey = "ctxutil.interactionType"
)

// WithRequestID adds a request ID to the context for tracing.
// Request ID is generated per inbound HTTP request for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
// Returns the request ID and true if found, empty string and false otherwise.
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}

// WithInteractionType records the dispatched interaction type on the context.
func WithInteractionType(ctx context.Context, interactionType string) context.Context {
	return context.WithValue(ctx, interactionTypeKey, interactionType)
}

// GetInteractionType retrieves the interaction type from the context.
// Returns empty string when not set.
func GetInteractionType(ctx context.Context) string {
	if v, ok := ctx.Value(interactionTypeKey).(string); ok {
		return v
	}
	return ""
}

// PreserveTracing creates a detached context that preserves tracing values.
// The new context is independent of the parent's cancellation and deadlines.
//
// Use for async work that must outlive the HTTP request, such as the
// follow-up delivery that continues after the interaction response is sent.
func PreserveTracing(ctx context.Context) context.Context {
	newCtx := context.Background()

	if requestID, ok := GetRequestID(ctx); ok && requestID != "" {
		newCtx = WithRequestID(newCtx, requestID)
	}
	if it := GetInteractionType(ctx); it != "" {
		newCtx = WithInteractionType(newCtx, it)
	}

	return newCtx
}
