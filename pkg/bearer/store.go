// Package bearer holds the mapping from opaque bearer credentials to the
// authenticated principal behind them.
//
// Bearer credentials are unrelated to QR tokens: they prove a prior login,
// never attendance. Handlers receive a Store explicitly so tests can build
// isolated instances and a shared backend can replace the in-memory one
// without touching call sites.
package bearer

import (
	"context"
	"time"
)

// Kind distinguishes the two principal types.
type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// Principal is the identity a bearer credential resolves to.
type Principal struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Entry is what the store keeps per credential.
type Entry struct {
	Principal Principal
	IssuedAt  time.Time
	ExpiresAt time.Time // zero means no expiry
}

// Expired reports whether the entry has an expiry at or before now.
func (e Entry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

// Store is the credential store used by login handlers and the
// authentication middleware. Implementations must be safe for concurrent use.
type Store interface {
	// Put records token -> entry, replacing any previous entry.
	Put(ctx context.Context, token string, entry Entry) error

	// Get resolves token. Unknown and expired tokens report false.
	Get(ctx context.Context, token string) (Entry, bool, error)

	// Evict forgets token. Evicting an unknown token is not an error.
	Evict(ctx context.Context, token string) error

	// EvictExpired removes every entry expired at now and returns the count.
	EvictExpired(ctx context.Context, now time.Time) (int, error)
}
