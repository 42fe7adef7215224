package qrtoken

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	e, err := NewEngine(testSecret, opts)
	require.NoError(t, err)
	return e
}

func TestNewEngine(t *testing.T) {
	_, err := NewEngine([]byte("short"), Options{})
	require.ErrorIs(t, err, ErrSecretTooShort)

	_, err = NewEngine(testSecret, Options{Window: 1500 * time.Millisecond})
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewEngine(testSecret, Options{Window: -time.Minute})
	require.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewEngine(testSecret, Options{GraceWindows: -1})
	require.ErrorIs(t, err, ErrInvalidGrace)

	e := newTestEngine(t, Options{})
	require.Equal(t, DefaultWindow, e.Window())
	require.Zero(t, e.GraceWindows())
}

func TestDeriveIsDeterministic(t *testing.T) {
	e := newTestEngine(t, Options{})
	w := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	a := e.Derive("session-1", w)
	b := e.Derive("session-1", w)
	require.Equal(t, a, b)
	require.Len(t, a, TokenLength)
	require.Equal(t, strings.ToLower(a), a)

	require.NotEqual(t, a, e.Derive("session-2", w))
	require.NotEqual(t, a, e.Derive("session-1", w.Add(5*time.Minute)))

	other, err := NewEngine([]byte("fedcba9876543210fedcba9876543210"), Options{})
	require.NoError(t, err)
	require.NotEqual(t, a, other.Derive("session-1", w), "key must change the token")
}

func TestDeriveIgnoresLocation(t *testing.T) {
	e := newTestEngine(t, Options{})
	utc := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	local := utc.In(time.FixedZone("AEST", 10*60*60))
	require.Equal(t, e.Derive("s", utc), e.Derive("s", local))
}

func TestIssueWithinWindowIsStable(t *testing.T) {
	e := newTestEngine(t, Options{})
	first := e.Issue("s", time.Date(2024, 1, 1, 10, 2, 0, 0, time.UTC))
	second := e.Issue("s", time.Date(2024, 1, 1, 10, 4, 59, 0, time.UTC))

	require.Equal(t, first, second)
	require.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), first.ValidFrom)
	require.Equal(t, time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC), first.ValidTo)
}

func TestValidateWindowExclusivity(t *testing.T) {
	e := newTestEngine(t, Options{})
	issued := e.Issue("s", time.Date(2024, 1, 1, 10, 2, 0, 0, time.UTC))

	require.True(t, e.Validate("s", issued.Token, issued.ValidFrom))
	require.True(t, e.Validate("s", issued.Token, issued.ValidTo.Add(-time.Nanosecond)))

	require.False(t, e.Validate("s", issued.Token, issued.ValidTo), "following window")
	require.False(t, e.Validate("s", issued.Token, issued.ValidFrom.Add(-time.Second)), "preceding window")
	require.False(t, e.Validate("other", issued.Token, issued.ValidFrom), "other session")
}

func TestValidateGraceWindows(t *testing.T) {
	e := newTestEngine(t, Options{GraceWindows: 1})
	issued := e.Issue("s", time.Date(2024, 1, 1, 10, 2, 0, 0, time.UTC))

	require.True(t, e.Validate("s", issued.Token, issued.ValidTo.Add(time.Minute)))
	require.False(t, e.Validate("s", issued.Token, issued.ValidTo.Add(5*time.Minute)))
	require.False(t, e.Validate("s", issued.Token, issued.ValidFrom.Add(-time.Second)), "grace never looks forward")
}

func TestValidateRejectsForgedAndMalformed(t *testing.T) {
	e := newTestEngine(t, Options{})
	now := time.Date(2024, 1, 1, 10, 2, 0, 0, time.UTC)
	valid := e.Issue("s", now).Token

	for name, presented := range map[string]string{
		"all zeros":   strings.Repeat("0", TokenLength),
		"empty":       "",
		"short":       valid[:TokenLength-1],
		"long":        valid + "0",
		"upper case":  strings.ToUpper(valid),
		"bearer-like": "dGhpcyBpcyBub3QgYSBxciB0b2tlbg",
	} {
		t.Run(name, func(t *testing.T) {
			require.False(t, e.Validate("s", presented, now))
		})
	}

	require.False(t, e.Validate("", valid, now), "missing session id")
}
