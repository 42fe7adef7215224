package service

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store/drivers/sqlite"
	"github.com/aussiebroadwan/rollcall/pkg/idx"
	"github.com/aussiebroadwan/rollcall/pkg/qrtoken"
	"github.com/stretchr/testify/require"
)

var testSecret = bytes.Repeat([]byte("k"), qrtoken.MinSecretSize)

// clock returns 2024-01-01 at hh:mm:ss UTC.
func clock(hh, mm, ss int) time.Time {
	return time.Date(2024, 1, 1, hh, mm, ss, 0, time.UTC)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "rollcall.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestEngine(t *testing.T, grace int) *qrtoken.Engine {
	t.Helper()
	e, err := qrtoken.NewEngine(testSecret, qrtoken.Options{Window: 5 * time.Minute, GraceWindows: grace})
	require.NoError(t, err)
	return e
}

func createSession(t *testing.T, st *sqlite.Store) domain.Session {
	t.Helper()
	svc := &SessionService{Store: st}
	s, err := svc.Create(context.Background(), SessionInput{Date: "2024-01-01", StartTime: "10:00", EndTime: "11:00"}, clock(9, 0, 0))
	require.NoError(t, err)
	return s
}

func createUser(t *testing.T, st *sqlite.Store, phone string) domain.User {
	t.Helper()
	u := domain.User{ID: idx.New().String(), Phone: &phone, Name: "User " + phone, CreatedAt: clock(9, 0, 0)}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}
