// Package httpctx carries verified session claims through request contexts.
package httpctx

import (
	"context"

	"github.com/plantnet/plantnet-server/internal/model"
)

type claimsKey struct{}

// SetClaims returns a context carrying the verified session claims.
func SetClaims(ctx context.Context, claims model.SessionClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// Claims returns the session claims attached by the authentication
// middleware, if any.
func Claims(ctx context.Context) (model.SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(model.SessionClaims)
	return claims, ok
}
