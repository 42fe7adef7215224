package http_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	rollcallhttp "github.com/aussiebroadwan/rollcall/internal/rollcall/http"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/service"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store/drivers/sqlite"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/syncx"
	"github.com/aussiebroadwan/rollcall/pkg/bearer"
	"github.com/aussiebroadwan/rollcall/pkg/cryptox"
	"github.com/aussiebroadwan/rollcall/pkg/qrtoken"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const (
	adminUser     = "admin"
	adminPassword = "admin-password"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type codeSender struct {
	mu    sync.Mutex
	codes map[string]string
}

func (s *codeSender) SendOTP(_ context.Context, phone, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[phone] = code
	return nil
}

func (s *codeSender) code(phone string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codes[phone]
}

type testEnv struct {
	client  *rollcallsdk.Client
	clock   *fakeClock
	sender  *codeSender
	store   *sqlite.Store
	bearers *bearer.MemoryStore
	url     string
}

// at returns 2024-01-01 at hh:mm:ss UTC.
func at(hh, mm, ss int) time.Time {
	return time.Date(2024, 1, 1, hh, mm, ss, 0, time.UTC)
}

// newTestEnv starts the API on a temp database. opts adjust the auth
// service before any request is served.
func newTestEnv(t *testing.T, opts ...func(*service.AuthService)) *testEnv {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "rollcall.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	engine, err := qrtoken.NewEngine(bytes.Repeat([]byte("s"), qrtoken.MinSecretSize), qrtoken.Options{})
	require.NoError(t, err)

	clock := &fakeClock{now: at(10, 1, 0)}
	sender := &codeSender{codes: map[string]string{}}
	bearers := bearer.NewMemoryStoreWithClock(clock.Now)
	logger := slogx.Discard()

	auth := &service.AuthService{
		Store:     st,
		Bearers:   bearers,
		Hasher:    cryptox.NewArgon2Hasher("pepper"),
		OTPSender: sender,
		OTPKey:    []byte("otp-server-key-for-handler-tests"),
	}
	for _, opt := range opts {
		opt(auth)
	}
	created, err := auth.EnsureDefaultAdmin(ctx, adminUser, adminPassword, clock.Now())
	require.NoError(t, err)
	require.True(t, created)

	r := rollcallhttp.NewRouter(st, bearers, engine, "test", logger)
	r.Clock = clock.Now
	r.AuthService = auth
	r.SessionService = &service.SessionService{Store: st}
	r.Ledger = &service.Ledger{Store: st, Engine: engine}
	r.Recorder = &service.Recorder{Store: st, Engine: engine}
	r.ReportService = &service.ReportService{Store: st}
	r.SyncService = &service.SyncService{Store: st, Adapter: syncx.NewLogAdapter(logger)}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{
		client:  rollcallsdk.NewClient(srv.URL),
		clock:   clock,
		sender:  sender,
		store:   st,
		bearers: bearers,
		url:     srv.URL,
	}
}

func (e *testEnv) admin(t *testing.T) *rollcallsdk.AuthSession {
	t.Helper()
	s, err := e.client.AdminLogin(context.Background(), adminUser, adminPassword)
	require.NoError(t, err)
	return s
}

func (e *testEnv) user(t *testing.T, email string) *rollcallsdk.AuthSession {
	t.Helper()
	s, err := e.client.Register(context.Background(), rollcallsdk.RegisterRequest{
		Email:    email,
		Password: "correct horse battery",
		Name:     "Test User",
	})
	require.NoError(t, err)
	return s
}

func (e *testEnv) session(t *testing.T, admin *rollcallsdk.AuthSession) *rollcallsdk.Session {
	t.Helper()
	s, err := admin.CreateSession(context.Background(), rollcallsdk.CreateSessionRequest{
		Date: "2024-01-01", StartTime: "10:00", EndTime: "11:00",
	})
	require.NoError(t, err)
	return s
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	var apiErr *rollcallsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
