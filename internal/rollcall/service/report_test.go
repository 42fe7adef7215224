package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/syncx"
	"github.com/aussiebroadwan/rollcall/pkg/bearer"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestReports(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	sess := createSession(t, st)
	asha := createUser(t, st, "+61400000020")
	vik := createUser(t, st, "+61400000021")

	rec := &Recorder{Store: st, Engine: newTestEngine(t, 0)}
	_, err := rec.MarkManual(ctx, asha.ID, sess.ID, clock(10, 1, 0))
	require.NoError(t, err)
	_, err = rec.MarkManual(ctx, vik.ID, sess.ID, clock(10, 2, 0))
	require.NoError(t, err)

	reports := &ReportService{Store: st}

	roster, err := reports.Roster(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	require.Equal(t, vik.ID, roster[0].UserID)

	var buf strings.Builder
	require.NoError(t, reports.ExportCSV(ctx, sess.ID, &buf))
	require.Equal(t,
		"marked_at,method,phone,name\n"+
			"2024-01-01T10:01:00Z,manual,+61400000020,User +61400000020\n"+
			"2024-01-01T10:02:00Z,manual,+61400000021,User +61400000021\n",
		buf.String())

	_, err = reports.Roster(ctx, "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
	require.ErrorIs(t, reports.ExportCSV(ctx, "missing", &buf), ErrSessionNotFound)

	sum, err := reports.Summary(ctx, clock(12, 0, 0))
	require.NoError(t, err)
	require.Equal(t, 1, sum.TotalSessions)
	require.Equal(t, 2, sum.TotalAttendance)
	require.Equal(t, 2, sum.UniqueUsers)
	require.Len(t, sum.SessionsPerDay, 1)

	sum, err = reports.Summary(ctx, clock(12, 0, 0).AddDate(0, 1, 0))
	require.NoError(t, err)
	require.Empty(t, sum.SessionsPerDay)
}

func TestSyncPush(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	sess := createSession(t, st)
	user := createUser(t, st, "+61400000030")

	_, err := (&Recorder{Store: st, Engine: newTestEngine(t, 0)}).MarkManual(ctx, user.ID, sess.ID, clock(10, 0, 0))
	require.NoError(t, err)

	svc := &SyncService{Store: st, Adapter: syncx.NewLogAdapter(slogx.Discard())}
	res, err := svc.Push(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, 1, res.Pushed)

	_, err = svc.Push(ctx, "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
	require.Equal(t, "stub", svc.Status().Mode)
}

func TestHousekeepingEvictsExpired(t *testing.T) {
	ctx := context.Background()
	bearers := bearer.NewMemoryStore()
	now := time.Now()

	require.NoError(t, bearers.Put(ctx, "old", bearer.Entry{ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, bearers.Put(ctx, "live", bearer.Entry{}))

	hk := NewHousekeepingService(bearers, nil, slogx.Discard(), 0)
	require.Equal(t, time.Hour, hk.Interval)
	hk.Cleanup(ctx, now)

	require.Equal(t, 1, bearers.Len())

	hk.Start()
	hk.Stop()
}
