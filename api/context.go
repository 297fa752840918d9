package api

import (
	"context"
	"errors"

	"github.com/atelierweb/showcase-backend/auth"
)

type keyType string

const principalKey keyType = "principal"

// ctxWithPrincipal attaches the verified credential claims to the
// request context.
func ctxWithPrincipal(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, principalKey, claims)
}

// ctxGetPrincipal retrieves the authenticated principal, if any.
func ctxGetPrincipal(ctx context.Context) (*auth.Claims, error) {
	value := ctx.Value(principalKey)
	if value == nil {
		return nil, errors.New("no principal in context")
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil, errors.New("principal has unexpected type")
	}
	return claims, nil
}
