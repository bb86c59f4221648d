package services

import "context"

// AuthContext carries the identity claims of an authenticated caller. It is
// request-scoped: the transport layer validates the bearer token once and
// threads the result through the request context.
type AuthContext struct {
	Claims Claims
}

type ctxKey string

var authContextKey ctxKey = "auth_context"

func WithAuthContext(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, authContextKey, AuthContext{Claims: claims})
}

// AuthFromContext returns the caller's AuthContext, or ok=false when the
// request is unauthenticated.
func AuthFromContext(ctx context.Context) (AuthContext, bool) {
	value := ctx.Value(authContextKey)
	if value == nil {
		return AuthContext{}, false
	}
	ac, ok := value.(AuthContext)
	return ac, ok
}
