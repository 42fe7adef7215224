package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
	"github.com/stretchr/testify/require"
)

func TestSessionCreateValidates(t *testing.T) {
	ctx := context.Background()
	svc := &SessionService{Store: newTestStore(t)}

	for _, in := range []SessionInput{
		{Date: "01/01/2024", StartTime: "10:00", EndTime: "11:00"},
		{Date: "2024-01-01", StartTime: "10am", EndTime: "11:00"},
		{Date: "2024-01-01", StartTime: "11:00", EndTime: "10:00"},
		{Date: "2024-01-01", StartTime: "10:00", EndTime: "10:00"},
	} {
		_, err := svc.Create(ctx, in, clock(9, 0, 0))
		require.ErrorIs(t, err, ErrInvalidSession, in)
	}

	s, err := svc.Create(ctx, SessionInput{Date: "2024-01-01", StartTime: "9:30", EndTime: "10:15"}, clock(9, 0, 0))
	require.NoError(t, err)
	require.Equal(t, "09:30", s.StartTime)
}

func TestSessionUpdate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &SessionService{Store: st}
	sess := createSession(t, st)

	end := "12:00"
	got, err := svc.Update(ctx, sess.ID, store.SessionPatch{EndTime: &end}, clock(9, 30, 0))
	require.NoError(t, err)
	require.Equal(t, "10:00", got.StartTime)
	require.Equal(t, "12:00", got.EndTime)
	require.True(t, got.UpdatedAt.Equal(clock(9, 30, 0)))

	early := "09:00"
	_, err = svc.Update(ctx, sess.ID, store.SessionPatch{EndTime: &early}, clock(9, 31, 0))
	require.ErrorIs(t, err, ErrInvalidSession)

	_, err = svc.Update(ctx, "missing", store.SessionPatch{EndTime: &end}, clock(9, 31, 0))
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
