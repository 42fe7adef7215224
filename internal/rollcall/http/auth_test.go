package http_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/service"
	"github.com/aussiebroadwan/rollcall/pkg/rollcallsdk"
	"github.com/stretchr/testify/require"
)

func TestOTPLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	phone := "+61400000001"

	req, err := env.client.RequestOTP(ctx, phone)
	require.NoError(t, err)
	require.NotEmpty(t, req.RequestID)
	require.Equal(t, 300, req.ExpiresIn)

	wrong := "000000"
	if env.sender.code(phone) == wrong {
		wrong = "111111"
	}
	_, err = env.client.VerifyOTP(ctx, phone, wrong)
	requireAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeInvalidOTP)

	// A failed attempt does not consume the request.
	sess, err := env.client.VerifyOTP(ctx, phone, env.sender.code(phone))
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token())
	require.NotNil(t, sess.Login().User)
	require.Equal(t, phone, *sess.Login().User.Phone)

	// Codes are single use.
	_, err = env.client.VerifyOTP(ctx, phone, env.sender.code(phone))
	requireAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeInvalidOTP)

	me, err := sess.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "user", me.Kind)
	require.Equal(t, sess.Login().User.ID, me.ID)
}

func TestRegisterLoginLogout(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	reg := env.user(t, "Eve@Example.com")
	require.Equal(t, "eve@example.com", *reg.Login().User.Email)

	_, err := env.client.Register(ctx, rollcallsdk.RegisterRequest{Email: "eve@example.com", Password: "another password"})
	requireAPIError(t, err, http.StatusConflict, rollcallsdk.ErrorCodeIdentifierTaken)

	_, err = env.client.Register(ctx, rollcallsdk.RegisterRequest{Password: "no identifier here"})
	requireAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeInvalidRequest)

	_, err = env.client.Login(ctx, "eve@example.com", "wrong password")
	requireAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeInvalidCredentials)

	sess, err := env.client.Login(ctx, "EVE@example.com", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, reg.Login().User.ID, sess.Login().User.ID)

	require.NoError(t, sess.Logout(ctx))
	_, err = sess.Me(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeUnauthorized)

	// The registration credential is independent of the logged out one.
	_, err = reg.Me(ctx)
	require.NoError(t, err)
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	admin := env.admin(t)
	require.NotNil(t, admin.Login().Admin)
	require.Equal(t, adminUser, admin.Login().Admin.Username)
	require.Nil(t, admin.Login().User)

	me, err := admin.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "admin", me.Kind)
	require.Nil(t, me.User)

	_, err = env.client.AdminLogin(ctx, adminUser, "nope")
	requireAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeInvalidCredentials)

	_, err = env.client.AdminLogin(ctx, "", "")
	requireAPIError(t, err, http.StatusBadRequest, rollcallsdk.ErrorCodeValidation)
}

// Bearer expiry follows the same clock that stamped it, not the wall clock.
func TestBearerExpiryFollowsRequestClock(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, func(a *service.AuthService) { a.BearerTTL = time.Hour })

	user := env.user(t, "ttl@example.com")
	require.NotNil(t, user.Login().ExpiresAt)
	require.Equal(t, at(11, 1, 0), user.Login().ExpiresAt.UTC())

	_, err := user.Me(ctx)
	require.NoError(t, err, "credential issued at the pinned time is live at the pinned time")

	env.clock.Set(at(11, 0, 59))
	_, err = user.Me(ctx)
	require.NoError(t, err)

	env.clock.Set(at(11, 1, 0))
	_, err = user.Me(ctx)
	requireAPIError(t, err, http.StatusUnauthorized, rollcallsdk.ErrorCodeUnauthorized)
}
