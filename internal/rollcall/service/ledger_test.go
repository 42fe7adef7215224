package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/aussiebroadwan/rollcall/pkg/qrtoken"
	"github.com/stretchr/testify/require"
)

func TestLedgerIdempotentWithinWindow(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	sess := createSession(t, st)
	ledger := &Ledger{Store: st, Engine: newTestEngine(t, 0)}

	first, err := ledger.CurrentOrNew(ctx, sess.ID, clock(10, 2, 0))
	require.NoError(t, err)
	require.Equal(t, clock(10, 0, 0), first.ValidFrom)
	require.Equal(t, clock(10, 5, 0), first.ValidTo)
	require.Len(t, first.Token, qrtoken.TokenLength)

	second, err := ledger.CurrentOrNew(ctx, sess.ID, clock(10, 4, 59))
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, first.Token, second.Token)

	n, err := st.SessionTokens().CountForSession(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestLedgerRollsOverWindows(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	sess := createSession(t, st)
	ledger := &Ledger{Store: st, Engine: newTestEngine(t, 0)}

	first, err := ledger.CurrentOrNew(ctx, sess.ID, clock(10, 2, 0))
	require.NoError(t, err)

	// valid_to is exclusive: the boundary instant belongs to the next window.
	next, err := ledger.CurrentOrNew(ctx, sess.ID, clock(10, 5, 0))
	require.NoError(t, err)
	require.NotEqual(t, first.Token, next.Token)
	require.Equal(t, clock(10, 5, 0), next.ValidFrom)

	n, err := st.SessionTokens().CountForSession(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestLedgerReissuesAfterSecretRotation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	sess := createSession(t, st)

	old := &Ledger{Store: st, Engine: newTestEngine(t, 0)}
	before, err := old.CurrentOrNew(ctx, sess.ID, clock(10, 1, 0))
	require.NoError(t, err)

	rotated, err := qrtoken.NewEngine(bytes.Repeat([]byte("r"), qrtoken.MinSecretSize), qrtoken.Options{})
	require.NoError(t, err)
	fresh := &Ledger{Store: st, Engine: rotated}

	after, err := fresh.CurrentOrNew(ctx, sess.ID, clock(10, 2, 0))
	require.NoError(t, err)
	require.NotEqual(t, before.Token, after.Token)
	require.True(t, rotated.Validate(sess.ID, after.Token, clock(10, 2, 0)))
}

func TestLedgerUnknownSession(t *testing.T) {
	st := newTestStore(t)
	ledger := &Ledger{Store: st, Engine: newTestEngine(t, 0)}

	_, err := ledger.CurrentOrNew(context.Background(), "missing", clock(10, 0, 0))
	require.ErrorIs(t, err, ErrSessionNotFound)
}
