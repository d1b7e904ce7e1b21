package authz

import (
	"context"
	"errors"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// AuthUser is the authenticated session attached to a request. ClubID is the
// tenant the session is scoped to.
type AuthUser struct {
	ID      int64
	Name    string
	ClubID  int64
	IsStaff bool
}

type userContextKey struct{}

func ContextWithUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext retrieves the AuthUser stored in ctx.
// It returns nil if ctx is nil, if no user is stored, or if the stored value has a different type.
func UserFromContext(ctx context.Context) *AuthUser {
	if ctx == nil {
		return nil
	}

	user, ok := ctx.Value(userContextKey{}).(*AuthUser)
	if !ok {
		return nil
	}

	return user
}

// IsStaff reports whether the given AuthUser represents a staff user.
func IsStaff(user *AuthUser) bool {
	return user != nil && user.IsStaff
}

// RequireClubAccess enforces tenant scoping: a session may only touch the
// club it was issued for.
func RequireClubAccess(ctx context.Context, requestedClubID int64) error {
	user := UserFromContext(ctx)
	if user == nil {
		return ErrUnauthenticated
	}

	if user.ClubID != requestedClubID {
		return ErrForbidden
	}

	return nil
}
