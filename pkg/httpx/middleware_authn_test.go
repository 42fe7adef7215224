package httpx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/bearer"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func newProtected(t *testing.T, kinds ...bearer.Kind) (http.Handler, *bearer.MemoryStore) {
	t.Helper()
	store := bearer.NewMemoryStore()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, found := httpx.PrincipalFromContext(r.Context())
		require.True(t, found)
		require.Equal(t, "tok", httpx.BearerFromContext(r.Context()))
		httpx.WriteJSON(w, http.StatusOK, p)
	})
	return httpx.Chain(ok, httpx.AuthnMiddleware(store), httpx.RequireKind(kinds...)), store
}

func serve(h http.Handler, authz string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthnRejectsMissingAndUnknown(t *testing.T) {
	h, _ := newProtected(t, bearer.KindUser)

	rec := serve(h, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")

	rec = serve(h, "Basic Zm9vOmJhcg==")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(h, "Bearer tok")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthnAdmitsMatchingKind(t *testing.T) {
	h, store := newProtected(t, bearer.KindUser)
	require.NoError(t, store.Put(context.Background(), "tok", bearer.Entry{
		Principal: bearer.Principal{Kind: bearer.KindUser, ID: "u1"},
		IssuedAt:  time.Now(),
	}))

	rec := serve(h, "Bearer tok")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"kind":"user","id":"u1"}`, rec.Body.String())
}

func TestRequireKindForbidsOtherKind(t *testing.T) {
	h, store := newProtected(t, bearer.KindAdmin)
	require.NoError(t, store.Put(context.Background(), "tok", bearer.Entry{
		Principal: bearer.Principal{Kind: bearer.KindUser, ID: "u1"},
	}))

	rec := serve(h, "Bearer tok")
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthnRejectsExpired(t *testing.T) {
	h, store := newProtected(t, bearer.KindUser)
	require.NoError(t, store.Put(context.Background(), "tok", bearer.Entry{
		Principal: bearer.Principal{Kind: bearer.KindUser, ID: "u1"},
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	rec := serve(h, "Bearer tok")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequirePrincipalAnyKind(t *testing.T) {
	store := bearer.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "tok", bearer.Entry{
		Principal: bearer.Principal{Kind: bearer.KindAdmin, ID: "a1"},
	}))
	h := httpx.RequirePrincipal(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	require.Equal(t, http.StatusNoContent, serve(h, "Bearer tok").Code)
	require.Equal(t, http.StatusUnauthorized, serve(h, "Bearer other").Code)
}

func TestAccessLogNamesPrincipal(t *testing.T) {
	h, store := newProtected(t, bearer.KindAdmin)
	require.NoError(t, store.Put(context.Background(), "tok", bearer.Entry{
		Principal: bearer.Principal{Kind: bearer.KindAdmin, ID: "a1"},
	}))

	var buf bytes.Buffer
	logged := slogx.HTTPMiddleware(slogx.New(slogx.Config{Format: "json", Output: &buf}))(h)

	rec := serve(logged, "Bearer tok")
	require.Equal(t, http.StatusOK, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "http_request", line["msg"])
	require.Equal(t, "admin", line["principal_kind"])
	require.Equal(t, "a1", line["principal_id"])
}
