package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/service"
	"github.com/aussiebroadwan/rollcall/pkg/httpx"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

type ReportHandler struct {
	ReportService *service.ReportService
	Clock         func() time.Time
}

// HandleExport godoc
//
//	@Summary		Export Attendance
//	@Description	Downloads a session's attendance as CSV with columns marked_at, method, phone, name.
//	@Tags			Admin
//	@Produce		text/csv
//	@Param			sessionId	query		string	true	"Session ID"
//	@Success		200			{file}		binary
//	@Failure		400			{object}	rollcallsdk.ErrorResponse	"invalid_request"
//	@Failure		404			{object}	rollcallsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/api/admin/attendance/export [get].
func (h *ReportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		httpx.WriteError(w, http.StatusBadRequest, rollcallsdk.ErrorCodeInvalidRequest, "sessionId is required")
		return
	}

	var buf bytes.Buffer
	if err := h.ReportService.ExportCSV(r.Context(), sessionID, &buf); err != nil {
		writeSessionError(w, r, err)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=attendance-%s.csv", sessionID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// HandleSummary godoc
//
//	@Summary		Attendance Summary
//	@Description	Totals of sessions, attendance and distinct attendees, plus sessions per date over the last seven days.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	rollcallsdk.SummaryResponse	"sessions, attendance, uniqueUsers, lastSevenDays"
//	@Security		BearerAuth
//	@Router			/api/admin/stats/summary [get].
func (h *ReportHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.ReportService.Summary(r.Context(), h.Clock())
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to build summary", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, rollcallsdk.ErrorCodeServerError, "")
		return
	}

	days := make([]rollcallsdk.DayCount, 0, len(sum.SessionsPerDay))
	for _, d := range sum.SessionsPerDay {
		days = append(days, rollcallsdk.DayCount{Date: d.Date, Count: d.Count})
	}
	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.SummaryResponse{
		Sessions:      sum.TotalSessions,
		Attendance:    sum.TotalAttendance,
		UniqueUsers:   sum.UniqueUsers,
		LastSevenDays: days,
	})
}
