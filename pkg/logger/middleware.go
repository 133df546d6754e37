package logger

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader is the header used to propagate request IDs
const RequestIDHeader = "X-Request-ID"

// NewRequestID returns a fresh random request ID
func NewRequestID() string {
	return uuid.New().String()
}

// ContextWithRequestID stores id in ctx so WithContext can pick it up
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
