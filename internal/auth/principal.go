// Package auth issues and validates bearer tokens and decides ownership-based access.
package auth

import "context"

// Principal is the identity established from a validated token.
type Principal struct {
	UserID uint64
	Email  string
}

// IsZero reports whether no identity is present.
func (p Principal) IsZero() bool {
	return p.UserID == 0 && p.Email == ""
}

type contextKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// PrincipalFrom returns the principal stored on ctx, if any.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}
