package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/service"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/qrtoken"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

// QRHandler serves the token of the current window for display.
type QRHandler struct {
	Ledger    *service.Ledger
	ImageSize int
	Clock     func() time.Time
}

// HandleToken godoc
//
//	@Summary		Current Session Token
//	@Description	Returns the session's token for the current window, issuing it on first request.
//	@Description	Repeated calls within one window return the same token.
//	@Tags			QR
//	@Produce		json
//	@Param			id	path		string						true	"Session ID"
//	@Success		200	{object}	rollcallsdk.TokenResponse	"token, validFrom, validTo"
//	@Failure		404	{object}	rollcallsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/api/sessions/{id}/token [post].
func (h *QRHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	tok, ok := h.current(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.TokenResponse{
		Token:     tok.Token,
		ValidFrom: tok.ValidFrom.UTC(),
		ValidTo:   tok.ValidTo.UTC(),
	})
}

// HandleQR godoc
//
//	@Summary		Current Session QR Code
//	@Description	Returns the current token together with its QR payload and a PNG data URL of the code.
//	@Tags			QR
//	@Produce		json
//	@Param			id	path		string						true	"Session ID"
//	@Success		200	{object}	rollcallsdk.QRResponse		"token, validFrom, validTo, payload, qrDataUrl"
//	@Failure		404	{object}	rollcallsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/api/sessions/{id}/qr [get].
func (h *QRHandler) HandleQR(w http.ResponseWriter, r *http.Request) {
	tok, ok := h.current(w, r)
	if !ok {
		return
	}

	payload := qrtoken.Payload{SessionID: tok.SessionID, Token: tok.Token}.Encode()
	png, err := qrtoken.RenderPNG(payload, h.ImageSize)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to render qr", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, rollcallsdk.ErrorCodeServerError, "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.QRResponse{
		Token:     tok.Token,
		ValidFrom: tok.ValidFrom.UTC(),
		ValidTo:   tok.ValidTo.UTC(),
		Payload:   payload,
		QRDataURL: qrtoken.DataURL(png),
	})
}

// HandlePNG godoc
//
//	@Summary		Current Session QR Image
//	@Description	Returns the current QR code as a PNG image for projection.
//	@Tags			QR
//	@Produce		png
//	@Param			id	path		string	true	"Session ID"
//	@Success		200	{file}		binary
//	@Failure		404	{object}	rollcallsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/api/sessions/{id}/qr.png [get].
func (h *QRHandler) HandlePNG(w http.ResponseWriter, r *http.Request) {
	tok, ok := h.current(w, r)
	if !ok {
		return
	}

	png, err := qrtoken.RenderPNG(qrtoken.Payload{SessionID: tok.SessionID, Token: tok.Token}.Encode(), h.ImageSize)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to render qr", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, rollcallsdk.ErrorCodeServerError, "")
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *QRHandler) current(w http.ResponseWriter, r *http.Request) (domain.SessionToken, bool) {
	tok, err := h.Ledger.CurrentOrNew(r.Context(), r.PathValue("id"), h.Clock())
	if err != nil {
		writeSessionError(w, r, err)
		return domain.SessionToken{}, false
	}
	return tok, true
}
