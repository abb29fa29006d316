package context

import (
	"context"

	"bookmarks/internal/domain/entity"
)

// KeyUser is the key for storing the authenticated user in context.
const KeyUser ContextKey = "user"

// WithUser returns a new context carrying the authenticated user.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyUser, user)
}

// GetUser extracts the authenticated user from context.Context.
// If not found, returns nil.
func GetUser(ctx context.Context) *entity.User {
	if user, ok := ctx.Value(KeyUser).(*entity.User); ok {
		return user
	}

	return nil
}
