package http

import (
	"net/http"

	"github.com/aussiebroadwan/rollcall/pkg/httpx"
)

// decodeRequest decodes and validates a JSON body into dst. It writes the
// error response itself and reports whether the handler may continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return false
	}
	if details := httpx.Validate(dst); details != nil {
		httpx.WriteValidation(w, details)
		return false
	}
	return true
}
