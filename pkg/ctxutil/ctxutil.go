// Package ctxutil carries request-scoped identity through context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userKey    struct{}
	roleKey    struct{}
	requestKey struct{}
)

func lookup[T any](ctx context.Context, key any) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}

// WithUserID marks ctx as belonging to the authenticated profile id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// UserIDFromCtx reports false for anonymous requests, including a stored uuid.Nil.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := lookup[uuid.UUID](ctx, userKey{})
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the role claimed by the access token. Authorization never
// trusts it; services re-read the role from the profile store.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

func RoleFromCtx(ctx context.Context) string {
	role, _ := lookup[string](ctx, roleKey{})
	return role
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestKey{}, id)
}

// RequestIDFromCtx returns "" outside an HTTP request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := lookup[string](ctx, requestKey{})
	return id
}
