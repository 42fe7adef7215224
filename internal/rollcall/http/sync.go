package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/service"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

type SyncHandler struct {
	SyncService *service.SyncService
}

// HandleStatus godoc
//
//	@Summary		Sync Status
//	@Description	Reports which sync adapter is configured.
//	@Tags			Sync
//	@Produce		json
//	@Success		200	{object}	rollcallsdk.SyncStatusResponse	"status, message"
//	@Security		BearerAuth
//	@Router			/api/sync/status [get].
func (h *SyncHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	st := h.SyncService.Status()
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.SyncStatusResponse{Status: st.Mode, Message: st.Message})
}

// HandlePush godoc
//
//	@Summary		Push Attendance
//	@Description	Ships a session's attendance to the configured remote store.
//	@Tags			Sync
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.SyncPushRequest		true	"Session"
//	@Success		200		{object}	rollcallsdk.SyncPushResponse	"result"
//	@Failure		404		{object}	rollcallsdk.ErrorResponse		"not_found"
//	@Failure		502		{object}	rollcallsdk.ErrorResponse		"sync_failed"
//	@Security		BearerAuth
//	@Router			/api/sync/push [post].
func (h *SyncHandler) HandlePush(w http.ResponseWriter, r *http.Request) {
	var req rollcallsdk.SyncPushRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := h.SyncService.Push(r.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			writeSessionError(w, r, err)
			return
		}
		slogx.FromContext(r.Context()).Error("sync push failed", "session_id", req.SessionID, "err", err)
		httpx.WriteError(w, http.StatusBadGateway, "sync_failed", "Remote store rejected the push")
		return
	}

	slogx.FromContext(r.Context()).Info("attendance pushed",
		"session_id", req.SessionID, "pushed", res.Pushed, "location", res.Location)
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.SyncPushResponse{
		Result: rollcallsdk.SyncPushResult{Pushed: res.Pushed, Location: res.Location},
	})
}

// HandlePullSessions godoc
//
//	@Summary		Pull Sessions
//	@Description	Reads the session schedule published by the remote store. Nothing is written locally.
//	@Tags			Sync
//	@Produce		json
//	@Success		200	{object}	rollcallsdk.SessionListResponse	"sessions"
//	@Failure		502	{object}	rollcallsdk.ErrorResponse		"sync_failed"
//	@Security		BearerAuth
//	@Router			/api/sync/pull-sessions [get].
func (h *SyncHandler) HandlePullSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.SyncService.PullSessions(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("sync pull failed", "err", err)
		httpx.WriteError(w, http.StatusBadGateway, "sync_failed", "Remote store unavailable")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.SessionListResponse{Sessions: toSessions(sessions)})
}
