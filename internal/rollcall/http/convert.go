package http

import (
	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/service"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
)

func toUser(u domain.User) rollcallsdk.User {
	return rollcallsdk.User{
		ID:        u.ID,
		Phone:     u.Phone,
		Email:     u.Email,
		MahatmaID: u.MahatmaID,
		Name:      u.Name,
		Age:       u.Age,
		Gender:    u.Gender,
		Location:  u.Location,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toAuthResponse(res service.LoginResult) rollcallsdk.AuthResponse {
	out := rollcallsdk.AuthResponse{Token: res.Token}
	if !res.ExpiresAt.IsZero() {
		exp := res.ExpiresAt.UTC()
		out.ExpiresAt = &exp
	}
	if res.User != nil {
		u := toUser(*res.User)
		out.User = &u
	}
	if res.Admin != nil {
		out.Admin = &rollcallsdk.Admin{ID: res.Admin.ID, Username: res.Admin.Username}
	}
	return out
}

func toSession(s domain.Session) rollcallsdk.Session {
	return rollcallsdk.Session{
		ID:        s.ID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

func toSessions(in []domain.Session) []rollcallsdk.Session {
	out := make([]rollcallsdk.Session, 0, len(in))
	for _, s := range in {
		out = append(out, toSession(s))
	}
	return out
}

func toMarkResponse(res service.MarkResult) rollcallsdk.MarkResponse {
	return rollcallsdk.MarkResponse{
		Status:       string(res.Status),
		AttendanceID: res.AttendanceID,
		MarkedAt:     res.MarkedAt.UTC(),
		Method:       string(res.Method),
	}
}

func toAttendanceRecords(rows []domain.RosterEntry) []rollcallsdk.AttendanceRecord {
	out := make([]rollcallsdk.AttendanceRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, rollcallsdk.AttendanceRecord{
			ID:        r.ID,
			UserID:    r.UserID,
			SessionID: r.SessionID,
			MarkedAt:  r.MarkedAt.UTC(),
			Method:    string(r.Method),
			DeviceID:  r.DeviceID,
			Phone:     r.Phone,
			Email:     r.Email,
			Name:      r.Name,
			MahatmaID: r.MahatmaID,
		})
	}
	return out
}
