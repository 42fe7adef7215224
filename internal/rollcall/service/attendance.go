package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
	"github.com/aussiebroadwan/rollcall/pkg/idx"
	"github.com/aussiebroadwan/rollcall/pkg/qrtoken"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidToken    = errors.New("invalid_token")
	ErrUserNotFound    = errors.New("user not found")
)

type MarkStatus string

const (
	StatusMarked        MarkStatus = "marked"
	StatusAlreadyMarked MarkStatus = "already_marked"
)

// MarkResult describes the attendance row that exists for the pair after a
// mark. Repeat submissions report the original row.
type MarkResult struct {
	Status       MarkStatus
	AttendanceID string
	MarkedAt     time.Time
	Method       domain.Method
}

type Recorder struct {
	Store  store.Store
	Engine *qrtoken.Engine
}

// Mark records a QR scan by userID for sessionID. Unknown sessions fail with
// ErrSessionNotFound, tokens not valid at now with ErrInvalidToken. A repeat
// scan is not an error: it returns StatusAlreadyMarked with the first row.
func (r *Recorder) Mark(
	ctx context.Context,
	userID, sessionID, token, deviceID string,
	now time.Time,
) (MarkResult, error) {
	if err := requireSession(ctx, r.Store, sessionID); err != nil {
		return MarkResult{}, err
	}
	if !r.Engine.Validate(sessionID, token, now) {
		return MarkResult{}, ErrInvalidToken
	}

	var device *string
	if deviceID != "" {
		device = &deviceID
	}
	return r.record(ctx, domain.Attendance{
		UserID:    userID,
		SessionID: sessionID,
		MarkedAt:  now,
		Method:    domain.MethodQR,
		DeviceID:  device,
	})
}

// MarkManual records attendance on an administrator's word, without a token.
func (r *Recorder) MarkManual(ctx context.Context, userID, sessionID string, now time.Time) (MarkResult, error) {
	if err := requireSession(ctx, r.Store, sessionID); err != nil {
		return MarkResult{}, err
	}
	if _, err := r.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return MarkResult{}, ErrUserNotFound
		}
		return MarkResult{}, fmt.Errorf("lookup user: %w", err)
	}

	return r.record(ctx, domain.Attendance{
		UserID:    userID,
		SessionID: sessionID,
		MarkedAt:  now,
		Method:    domain.MethodManual,
	})
}

func (r *Recorder) record(ctx context.Context, a domain.Attendance) (MarkResult, error) {
	a.ID = idx.New().String()

	res, err := r.Store.Attendance().InsertIfAbsent(ctx, a)
	if err != nil {
		return MarkResult{}, fmt.Errorf("record attendance: %w", err)
	}

	status := StatusMarked
	if res.Outcome == store.AlreadyExists {
		status = StatusAlreadyMarked
	}
	return MarkResult{
		Status:       status,
		AttendanceID: res.Attendance.ID,
		MarkedAt:     res.Attendance.MarkedAt,
		Method:       res.Attendance.Method,
	}, nil
}
