package qrtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// MinSecretSize is the smallest accepted HMAC key, in bytes.
const MinSecretSize = 32

// TokenLength is the length of a hex-encoded token.
const TokenLength = sha256.Size * 2

var (
	ErrSecretTooShort = fmt.Errorf("qrtoken: secret must be at least %d bytes", MinSecretSize)
	ErrInvalidWindow  = errors.New("qrtoken: window must be a positive whole number of seconds")
	ErrInvalidGrace   = errors.New("qrtoken: grace windows must not be negative")
)

// Options tunes an Engine. The zero value means DefaultWindow and no grace.
type Options struct {
	// Window is the validity window of every token. Issuance and validation
	// must agree on it or every token mismatches.
	Window time.Duration

	// GraceWindows is the number of windows immediately preceding the current
	// one whose tokens are still accepted. Zero means a token dies with its
	// window.
	GraceWindows int
}

// Issued is a token together with its validity interval [ValidFrom, ValidTo).
type Issued struct {
	Token     string
	ValidFrom time.Time
	ValidTo   time.Time
}

// Engine derives and validates window tokens. It is immutable after
// construction and safe for concurrent use.
type Engine struct {
	secret []byte
	window time.Duration
	grace  int
}

// NewEngine returns an Engine keyed by secret.
func NewEngine(secret []byte, opts Options) (*Engine, error) {
	if len(secret) < MinSecretSize {
		return nil, ErrSecretTooShort
	}
	if opts.Window == 0 {
		opts.Window = DefaultWindow
	}
	if opts.Window < time.Second || opts.Window%time.Second != 0 {
		return nil, ErrInvalidWindow
	}
	if opts.GraceWindows < 0 {
		return nil, ErrInvalidGrace
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return &Engine{secret: key, window: opts.Window, grace: opts.GraceWindows}, nil
}

// Window returns the configured window length.
func (e *Engine) Window() time.Duration { return e.window }

// GraceWindows returns the number of extra past windows accepted.
func (e *Engine) GraceWindows() int { return e.grace }

// Derive computes the token for sessionID in the window starting at
// windowStart. The timestamp is rendered as RFC 3339 UTC with second
// precision.
func (e *Engine) Derive(sessionID string, windowStart time.Time) string {
	mac := hmac.New(sha256.New, e.secret)
	mac.Write([]byte(sessionID))
	mac.Write([]byte(windowStart.UTC().Format(time.RFC3339)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Issue returns the token for the window containing now.
func (e *Engine) Issue(sessionID string, now time.Time) Issued {
	start := WindowStart(now, e.window)
	return Issued{
		Token:     e.Derive(sessionID, start),
		ValidFrom: start,
		ValidTo:   WindowEnd(start, e.window),
	}
}

// Validate reports whether presented is the token for sessionID in the window
// containing now (or one of the configured grace windows). Malformed input
// yields false; comparison is constant time.
func (e *Engine) Validate(sessionID, presented string, now time.Time) bool {
	if sessionID == "" || len(presented) != TokenLength {
		return false
	}

	start := WindowStart(now, e.window)
	ok := 0
	for i := 0; i <= e.grace; i++ {
		expected := e.Derive(sessionID, start.Add(-time.Duration(i)*e.window))
		ok |= subtle.ConstantTimeCompare([]byte(expected), []byte(presented))
	}
	return ok == 1
}
