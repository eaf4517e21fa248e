package ctxutil

import (
	"context"
)

type ctxKey string

const (
	adminKey     ctxKey = "admin"
	requestIDKey ctxKey = "request_id"
)

// AdminPrincipal identifies a caller that passed the admin credential check.
type AdminPrincipal struct {
	Username string
}

// WithAdmin stores the authenticated admin principal in the context.
func WithAdmin(ctx context.Context, p AdminPrincipal) context.Context {
	return context.WithValue(ctx, adminKey, p)
}

// AdminFromCtx extracts the admin principal from the context.
// Returns false if the value is missing or has an empty username.
func AdminFromCtx(ctx context.Context) (AdminPrincipal, bool) {
	p, ok := ctx.Value(adminKey).(AdminPrincipal)
	if !ok || p.Username == "" {
		return AdminPrincipal{}, false
	}
	return p, true
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
