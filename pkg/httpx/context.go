package httpx

import (
	"context"

	"github.com/aussiebroadwan/rollcall/pkg/bearer"
)

type ctxKey string

const (
	ctxKeyPrincipal ctxKey = "principal"
	ctxKeyBearer    ctxKey = "bearer"
)

func contextWithAuth(ctx context.Context, token string, p bearer.Principal) context.Context {
	ctx = context.WithValue(ctx, ctxKeyPrincipal, p)
	return context.WithValue(ctx, ctxKeyBearer, token)
}

// PrincipalFromContext returns the principal resolved by AuthnMiddleware.
func PrincipalFromContext(ctx context.Context) (bearer.Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(bearer.Principal)
	return p, ok
}

// BearerFromContext returns the raw bearer credential of the request.
func BearerFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(ctxKeyBearer).(string)
	return tok
}
