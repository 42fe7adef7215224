package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/rollcall/pkg/bearer"
)

// RequireKind admits the request only when the authenticated principal is one
// of kinds. It must run after AuthnMiddleware.
func RequireKind(kinds ...bearer.Kind) Middleware {
	want := make(map[bearer.Kind]struct{}, len(kinds))
	for _, k := range kinds {
		want[k] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}
			if _, ok := want[p.Kind]; !ok {
				WriteError(w, http.StatusForbidden, "forbidden", "principal may not perform this action")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePrincipal authenticates the request against store and admits only
// the given kinds. With no kinds any authenticated principal passes.
func RequirePrincipal(store bearer.Store, kinds ...bearer.Kind) Middleware {
	if len(kinds) == 0 {
		return AuthnMiddleware(store)
	}
	authn, authz := AuthnMiddleware(store), RequireKind(kinds...)
	return func(next http.Handler) http.Handler {
		return authn(authz(next))
	}
}
