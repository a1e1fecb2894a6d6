// Package ctxutil stores request-scoped identifiers in a context.
package ctxutil

import (
	"context"
)

type ctxKey string

const (
	subjectKey   ctxKey = "subject"
	requestIDKey ctxKey = "request_id"
)

// WithSubject stores the authenticated token subject in the context.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromCtx extracts the token subject from the context.
// Returns false if the value is missing or empty.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey).(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
