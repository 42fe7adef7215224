// Package syncx pushes attendance to, and pulls sessions from, an external
// system of record.
package syncx

import (
	"context"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
)

// Record is one attendance row as shipped to the remote side.
type Record struct {
	AttendanceID string    `json:"attendanceId"`
	SessionID    string    `json:"sessionId"`
	UserID       string    `json:"userId"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Name         string    `json:"name,omitempty"`
	Method       string    `json:"method"`
	MarkedAt     time.Time `json:"markedAt"`
}

type PushResult struct {
	Pushed   int    `json:"pushed"`
	Location string `json:"location,omitempty"`
}

type Status struct {
	Mode    string `json:"status"`
	Message string `json:"message"`
}

// Adapter is the sync boundary. Implementations must be safe for
// concurrent use.
type Adapter interface {
	PushAttendance(ctx context.Context, records []Record) (PushResult, error)
	PullSessions(ctx context.Context) ([]domain.Session, error)
	Status() Status
}

// RecordsFromRoster converts roster rows into sync records.
func RecordsFromRoster(rows []domain.RosterEntry) []Record {
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		rec := Record{
			AttendanceID: r.ID,
			SessionID:    r.SessionID,
			UserID:       r.UserID,
			Name:         r.Name,
			Method:       string(r.Method),
			MarkedAt:     r.MarkedAt.UTC(),
		}
		if r.Phone != nil {
			rec.Phone = *r.Phone
		}
		if r.Email != nil {
			rec.Email = *r.Email
		}
		out = append(out, rec)
	}
	return out
}
