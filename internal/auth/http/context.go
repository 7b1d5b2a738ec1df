// Package http provides HTTP handlers and middleware for authentication.
package http

import (
	"context"

	authDomain "github.com/healthapp/healthtrack/internal/auth/domain"
)

// identityKey is a context key type for storing the authenticated identity.
type identityKey struct{}

// WithIdentity stores an authenticated identity in the context.
// This is called by the authentication middleware after successful token verification.
func WithIdentity(ctx context.Context, identity *authDomain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the authenticated identity from the context.
// Returns (identity, true) if present, or (nil, false) if no identity was set.
// Handlers behind the authentication middleware use this to scope operations
// to the token subject.
func GetIdentity(ctx context.Context) (*authDomain.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.Identity)
	return identity, ok
}
