package auth

import (
	"context"

	"github.com/google/uuid"
)

// UserContext is the identity carried by a validated token
type UserContext struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

type userKey struct{}

// WithUserContext stores the authenticated identity on ctx
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// FromContext returns the identity stored by Authenticate. A nil user is
// reported as absent.
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userKey{}).(*UserContext)
	return user, ok && user != nil
}

// UserIDFromContext returns the authenticated user id, or uuid.Nil
func UserIDFromContext(ctx context.Context) uuid.UUID {
	if user, ok := FromContext(ctx); ok {
		return user.UserID
	}
	return uuid.Nil
}
