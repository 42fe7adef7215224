package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/service"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

type SessionsHandler struct {
	SessionService *service.SessionService
	Clock          func() time.Time
}

// HandleList godoc
//
//	@Summary		List Sessions
//	@Description	Lists every session, latest date first.
//	@Tags			Sessions
//	@Produce		json
//	@Success		200	{object}	rollcallsdk.SessionListResponse	"sessions"
//	@Failure		401	{object}	rollcallsdk.ErrorResponse		"unauthorized"
//	@Security		BearerAuth
//	@Router			/api/sessions [get].
func (h *SessionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.SessionService.List(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list sessions", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, rollcallsdk.ErrorCodeServerError, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.SessionListResponse{Sessions: toSessions(sessions)})
}

// HandleGet godoc
//
//	@Summary		Get Session
//	@Tags			Sessions
//	@Produce		json
//	@Param			id	path		string						true	"Session ID"
//	@Success		200	{object}	rollcallsdk.SessionResponse	"session"
//	@Failure		404	{object}	rollcallsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/api/sessions/{id} [get].
func (h *SessionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sess, err := h.SessionService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.SessionResponse{Session: toSession(sess)})
}

// HandleCreate godoc
//
//	@Summary		Create Session
//	@Description	Schedules a session. Dates are YYYY-MM-DD, times HH:MM, and the start must precede the end.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.CreateSessionRequest		true	"Schedule"
//	@Success		201		{object}	rollcallsdk.SessionResponse				"session"
//	@Failure		400		{object}	rollcallsdk.ValidationErrorResponse	"code, message, details"
//	@Failure		403		{object}	rollcallsdk.ErrorResponse				"forbidden"
//	@Security		BearerAuth
//	@Router			/api/sessions [post].
func (h *SessionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.CreateSessionRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	sess, err := h.SessionService.Create(r.Context(), service.SessionInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, h.Clock())
	if err != nil {
		writeSessionError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("session created", "session_id", sess.ID, "date", sess.Date)
	httpx.WriteJSON(w, http.StatusCreated, rollcallsdk.SessionResponse{Session: toSession(sess)})
}

// HandleUpdate godoc
//
//	@Summary		Update Session
//	@Description	Changes the supplied schedule fields of a session.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Session ID"
//	@Param			request	body		rollcallsdk.UpdateSessionRequest	true	"Fields to change"
//	@Success		200		{object}	rollcallsdk.SessionResponse		"session"
//	@Failure		400		{object}	rollcallsdk.ErrorResponse		"invalid_session"
//	@Failure		404		{object}	rollcallsdk.ErrorResponse		"not_found"
//	@Security		BearerAuth
//	@Router			/api/sessions/{id} [put].
func (h *SessionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.UpdateSessionRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	sess, err := h.SessionService.Update(r.Context(), r.PathValue("id"), store.SessionPatch{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, h.Clock())
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.SessionResponse{Session: toSession(sess)})
}

func writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		httpx.WriteError(w, http.StatusNotFound, rollcallsdk.ErrorCodeNotFound, "Session not found")
	case errors.Is(err, service.ErrInvalidSession):
		httpx.WriteError(w, http.StatusBadRequest, rollcallsdk.ErrorCodeInvalidSession, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("session operation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, rollcallsdk.ErrorCodeServerError, "")
	}
}
