package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/service"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/qrtoken"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

type AttendanceHandler struct {
	Recorder      *service.Recorder
	ReportService *service.ReportService
	Clock         func() time.Time
}

// HandleMark godoc
//
//	@Summary		Mark Attendance
//	@Description	Records the caller's attendance from a scanned QR code. Send either sessionId and token,
//	@Description	or the raw scanned payload. A repeat scan returns already_marked with the original record.
//	@Description	Unknown sessions and stale or forged tokens are both reported as invalid_token.
//	@Tags			Attendance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.MarkRequest		true	"Scan"
//	@Success		200		{object}	rollcallsdk.MarkResponse	"status, attendanceId"
//	@Failure		400		{object}	rollcallsdk.ErrorResponse	"invalid_token"
//	@Failure		401		{object}	rollcallsdk.ErrorResponse	"unauthorized"
//	@Failure		403		{object}	rollcallsdk.ErrorResponse	"forbidden"
//	@Security		BearerAuth
//	@Router			/api/attendance/mark [post].
func (h *AttendanceHandler) HandleMark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req rollcallsdk.MarkRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	sessionID, token := req.SessionID, req.Token
	if req.Payload != "" {
		p, err := qrtoken.ParsePayload(req.Payload)
		if err != nil {
			log.Info("mark rejected", "reason", "malformed_payload")
			httpx.WriteError(w, http.StatusBadRequest, rollcallsdk.ErrorCodeInvalidToken, "")
			return
		}
		sessionID, token = p.SessionID, p.Token
	}

	p, _ := httpx.PrincipalFromContext(ctx)
	res, err := h.Recorder.Mark(ctx, p.ID, sessionID, token, req.DeviceID, h.Clock())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			log.Info("mark rejected", "reason", "unknown_session", "session_id", sessionID)
			httpx.WriteError(w, http.StatusBadRequest, rollcallsdk.ErrorCodeInvalidToken, "")
		case errors.Is(err, service.ErrInvalidToken):
			log.Info("mark rejected", "reason", "token_mismatch", "session_id", sessionID)
			httpx.WriteError(w, http.StatusBadRequest, rollcallsdk.ErrorCodeInvalidToken, "")
		default:
			log.Error("failed to mark attendance", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, rollcallsdk.ErrorCodeServerError, "")
		}
		return
	}

	log.Info("attendance marked", "session_id", sessionID, "status", res.Status, "attendance_id", res.AttendanceID)
	httpx.WriteJSON(w, http.StatusOK, toMarkResponse(res))
}

// HandleManual godoc
//
//	@Summary		Manual Attendance
//	@Description	Records attendance for a user without a token. Administrators only.
//	@Tags			Attendance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.ManualMarkRequest	true	"Session and user"
//	@Success		200		{object}	rollcallsdk.MarkResponse		"status, attendanceId"
//	@Failure		404		{object}	rollcallsdk.ErrorResponse		"not_found, user_not_found"
//	@Security		BearerAuth
//	@Router			/api/attendance/manual [post].
func (h *AttendanceHandler) HandleManual(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req rollcallsdk.ManualMarkRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	res, err := h.Recorder.MarkManual(ctx, req.UserID, req.SessionID, h.Clock())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			httpx.WriteError(w, http.StatusNotFound, rollcallsdk.ErrorCodeNotFound, "Session not found")
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusNotFound, rollcallsdk.ErrorCodeUserNotFound, "User not found")
		default:
			slogx.FromContext(ctx).Error("failed to mark attendance manually", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, rollcallsdk.ErrorCodeServerError, "")
		}
		return
	}

	p, _ := httpx.PrincipalFromContext(ctx)
	slogx.FromContext(ctx).Info("manual attendance",
		"session_id", req.SessionID, "user_id", req.UserID, "admin_id", p.ID, "status", res.Status)
	httpx.WriteJSON(w, http.StatusOK, toMarkResponse(res))
}

// HandleRoster godoc
//
//	@Summary		Session Roster
//	@Description	Lists the attendance of a session with user contact fields, latest first.
//	@Tags			Attendance
//	@Produce		json
//	@Param			id	path		string						true	"Session ID"
//	@Success		200	{object}	rollcallsdk.RosterResponse	"attendance"
//	@Failure		404	{object}	rollcallsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/api/attendance/session/{id} [get].
func (h *AttendanceHandler) HandleRoster(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ReportService.Roster(r.Context(), r.PathValue("id"))
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.RosterResponse{Attendance: toAttendanceRecords(rows)})
}
