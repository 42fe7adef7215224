package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
	"github.com/aussiebroadwan/rollcall/pkg/idx"
)

var ErrInvalidSession = errors.New("invalid session")

type SessionService struct {
	Store store.Store
}

type SessionInput struct {
	Date      string
	StartTime string
	EndTime   string
}

func (s *SessionService) Create(ctx context.Context, in SessionInput, now time.Time) (domain.Session, error) {
	date, start, end, err := normaliseSchedule(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return domain.Session{}, err
	}

	sess := domain.Session{
		ID:        idx.New().String(),
		Date:      date,
		StartTime: start,
		EndTime:   end,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (domain.Session, error) {
	sess, err := s.Store.Sessions().GetSessionByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, ErrSessionNotFound
	}
	return sess, err
}

func (s *SessionService) List(ctx context.Context) ([]domain.Session, error) {
	return s.Store.Sessions().ListSessions(ctx)
}

// Update applies the non-nil fields of patch. The merged schedule must still
// be valid.
func (s *SessionService) Update(
	ctx context.Context,
	id string,
	patch store.SessionPatch,
	now time.Time,
) (domain.Session, error) {
	var out domain.Session
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		cur, err := tx.Sessions().GetSessionByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		if err != nil {
			return err
		}

		merged := SessionInput{Date: cur.Date, StartTime: cur.StartTime, EndTime: cur.EndTime}
		if patch.Date != nil {
			merged.Date = *patch.Date
		}
		if patch.StartTime != nil {
			merged.StartTime = *patch.StartTime
		}
		if patch.EndTime != nil {
			merged.EndTime = *patch.EndTime
		}

		date, start, end, err := normaliseSchedule(merged.Date, merged.StartTime, merged.EndTime)
		if err != nil {
			return err
		}

		out, err = tx.Sessions().UpdateSession(ctx, id, store.SessionPatch{
			Date: &date, StartTime: &start, EndTime: &end,
		}, now)
		return err
	})
	return out, err
}

// normaliseSchedule parses and reformats the schedule fields and enforces
// start < end.
func normaliseSchedule(date, start, end string) (string, string, string, error) {
	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSession)
	}
	st, err := time.Parse(domain.TimeLayout, start)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: start time must be HH:MM", ErrInvalidSession)
	}
	et, err := time.Parse(domain.TimeLayout, end)
	if err != nil {
		return "", "", "", fmt.Errorf("%w: end time must be HH:MM", ErrInvalidSession)
	}
	if !st.Before(et) {
		return "", "", "", fmt.Errorf("%w: start time must be before end time", ErrInvalidSession)
	}
	return d.Format(domain.DateLayout), st.Format(domain.TimeLayout), et.Format(domain.TimeLayout), nil
}
