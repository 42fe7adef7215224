package rollcall_test

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/require"
)

// TestScanFlow covers a full class: schedule, display, scan, rescan, roster
// and export.
func TestScanFlow(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t, nil)
	defer cleanup()
	ctx := t.Context()

	client := rollcallsdk.NewClient(baseURL)
	admin := adminLogin(t, client)
	sess := todaySession(t, admin)

	alice := registerUser(t, client, "alice@example.com")
	bob := registerUser(t, client, "bob@example.com")

	first := scan(t, admin, alice, sess.ID)
	require.Equal(t, rollcallsdk.StatusMarked, first.Status)

	again := scan(t, admin, alice, sess.ID)
	require.Equal(t, rollcallsdk.StatusAlreadyMarked, again.Status)
	require.Equal(t, first.AttendanceID, again.AttendanceID)

	require.Equal(t, rollcallsdk.StatusMarked, scan(t, admin, bob, sess.ID).Status)

	roster, err := admin.Roster(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)

	csv, err := admin.ExportCSV(ctx, sess.ID)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "marked_at,method,phone,name", lines[0])

	sum, err := admin.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, sum.Attendance)
	require.Equal(t, 2, sum.UniqueUsers)
}

func TestForgedTokenRejected(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t, nil)
	defer cleanup()
	ctx := t.Context()

	client := rollcallsdk.NewClient(baseURL)
	admin := adminLogin(t, client)
	sess := todaySession(t, admin)
	user := registerUser(t, client, "mallory@example.com")

	_, err := user.Mark(ctx, sess.ID, strings.Repeat("0", 64), "")
	assertAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeInvalidToken)

	_, err = user.Mark(ctx, "no-such-session", strings.Repeat("0", 64), "")
	assertAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeInvalidToken)

	roster, err := admin.Roster(ctx, sess.ID)
	require.NoError(t, err)
	require.Empty(t, roster)
}

// TestConcurrentScansRecordOnce fires many scans for one user at once.
func TestConcurrentScansRecordOnce(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t, nil)
	defer cleanup()
	ctx := t.Context()

	client := rollcallsdk.NewClient(baseURL)
	admin := adminLogin(t, client)
	sess := todaySession(t, admin)
	user := registerUser(t, client, "eager@example.com")

	qr, err := admin.GetQR(ctx, sess.ID)
	require.NoError(t, err)

	const n = 10
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ids     = map[string]struct{}{}
		marked  int
		stale   int
		failure error
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := user.MarkPayload(ctx, qr.Payload, "")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ids[res.AttendanceID] = struct{}{}
				if res.Status == rollcallsdk.StatusMarked {
					marked++
				}
			case isAPIError(err, http.StatusBadRequest, rollcallsdk.ErrorCodeInvalidToken):
				stale++ // window rolled over mid-test
			default:
				failure = err
			}
		}()
	}
	wg.Wait()

	require.NoError(t, failure)
	if stale == n {
		t.Skip("window rolled over before any scan landed")
	}
	require.Len(t, ids, 1)
	require.Equal(t, 1, marked)
}

func TestRoleSeparation(t *testing.T) {
	baseURL, cleanup := setupRollcallContainer(t, nil)
	defer cleanup()
	ctx := t.Context()

	client := rollcallsdk.NewClient(baseURL)
	admin := adminLogin(t, client)
	sess := todaySession(t, admin)
	user := registerUser(t, client, "student@example.com")

	_, err := user.GetQR(ctx, sess.ID)
	assertAPIError(t, err, http.StatusForbidden, rollcallsdk.ErrorCodeForbidden)

	_, err = client.NewAuthSession("").ListSessions(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeUnauthorized)

	require.NoError(t, user.Logout(ctx))
	_, err = user.ListSessions(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeUnauthorized)
}
