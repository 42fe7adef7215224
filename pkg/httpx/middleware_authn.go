package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/rollcall/pkg/bearer"
	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

// AuthnMiddleware resolves the Authorization bearer credential against store
// and rejects the request with 401 when it is missing or unknown.
func AuthnMiddleware(store bearer.Store) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := BearerToken(r)
			if raw == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			entry, ok, err := store.Get(ctx, raw)
			if err != nil {
				log.Error("bearer lookup failed", "err", err)
				WriteError(w, http.StatusInternalServerError, "server_error", "")
				return
			}
			if !ok {
				log.Warn("unknown bearer token", "fingerprint", cryptox.ShortFingerprint(raw))
				writeBearerError(w, "unknown or expired bearer token")
				return
			}

			ctx = contextWithAuth(ctx, raw, entry.Principal)
			ctx = slogx.With(ctx, "principal_kind", entry.Principal.Kind, "principal_id", entry.Principal.ID)
			slogx.Annotate(ctx, "principal_kind", entry.Principal.Kind, "principal_id", entry.Principal.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the credential from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "unauthorized", desc)
}
