package domain

import "time"

// Method records how an attendance row was created.
type Method string

const (
	MethodQR     Method = "qr"
	MethodManual Method = "manual"
)

// Attendance is unique per (UserID, SessionID) and never updated.
type Attendance struct {
	ID        string
	UserID    string
	SessionID string
	MarkedAt  time.Time
	Method    Method
	DeviceID  *string
}

// RosterEntry is an attendance row joined with the attendee's contact fields.
type RosterEntry struct {
	Attendance
	Phone     *string
	Email     *string
	Name      string
	MahatmaID *string
}
