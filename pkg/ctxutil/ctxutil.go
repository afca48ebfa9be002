// Package ctxutil carries request-scoped caller data through context: the
// authenticated user, the request id and the caller's time zone.
package ctxutil

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	requestIDKey struct{}
	locationKey  struct{}
)

func value[T any](ctx context.Context, key any) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}

// WithUserID marks ctx as authenticated by id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reports the authenticated user. uuid.Nil counts as absent.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := value[uuid.UUID](ctx, userIDKey{})
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request id, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := value[string](ctx, requestIDKey{})
	return id
}

// WithLocation stores the caller's time zone. Journal days are calendar
// days in this location.
func WithLocation(ctx context.Context, loc *time.Location) context.Context {
	return context.WithValue(ctx, locationKey{}, loc)
}

// LocationFromCtx returns the caller's time zone, or fallback when the
// context carries none.
func LocationFromCtx(ctx context.Context, fallback *time.Location) *time.Location {
	loc, ok := value[*time.Location](ctx, locationKey{})
	if !ok || loc == nil {
		return fallback
	}
	return loc
}
