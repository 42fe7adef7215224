package domain

import "time"

// Layouts for the calendar fields of a Session.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Session struct {
	ID        string
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionToken is one issued QR token. Rows are append-only.
type SessionToken struct {
	ID        string
	SessionID string
	Token     string
	ValidFrom time.Time
	ValidTo   time.Time
	CreatedAt time.Time
}

// Covers reports whether now lies in [ValidFrom, ValidTo).
func (t SessionToken) Covers(now time.Time) bool {
	return !now.Before(t.ValidFrom) && now.Before(t.ValidTo)
}
