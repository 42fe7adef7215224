package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
	"github.com/aussiebroadwan/rollcall/pkg/idx"
	"github.com/aussiebroadwan/rollcall/pkg/qrtoken"
	"github.com/aussiebroadwan/rollcall/pkg/slogx"
)

// Ledger hands out the token to display for a session. Within one window it
// keeps returning the stored row so a displayed QR code stays stable, and it
// appends a row whenever a new window starts. Validation never reads the
// ledger; it is display state and audit history.
type Ledger struct {
	Store  store.Store
	Engine *qrtoken.Engine
}

// CurrentOrNew returns the session's token for the window containing now,
// issuing and persisting one if none is stored.
func (l *Ledger) CurrentOrNew(ctx context.Context, sessionID string, now time.Time) (domain.SessionToken, error) {
	if err := requireSession(ctx, l.Store, sessionID); err != nil {
		return domain.SessionToken{}, err
	}

	current, err := l.Store.SessionTokens().LatestValid(ctx, sessionID, now)
	switch {
	case err == nil:
		if l.Engine.Validate(sessionID, current.Token, now) {
			return current, nil
		}
		// Stored under a different secret, e.g. before a restart with a new key.
		slogx.FromContext(ctx).Warn("stored session token no longer validates, reissuing",
			"session_id", sessionID, "token_id", current.ID)
	case !errors.Is(err, store.ErrNotFound):
		return domain.SessionToken{}, fmt.Errorf("lookup current token: %w", err)
	}

	issued := l.Engine.Issue(sessionID, now)
	tok := domain.SessionToken{
		ID:        idx.New().String(),
		SessionID: sessionID,
		Token:     issued.Token,
		ValidFrom: issued.ValidFrom,
		ValidTo:   issued.ValidTo,
		CreatedAt: now.UTC(),
	}
	if err := l.Store.SessionTokens().CreateSessionToken(ctx, tok); err != nil {
		return domain.SessionToken{}, fmt.Errorf("persist session token: %w", err)
	}

	slogx.FromContext(ctx).Info("issued session token",
		"session_id", sessionID, "valid_from", tok.ValidFrom, "valid_to", tok.ValidTo)
	return tok, nil
}

func requireSession(ctx context.Context, st store.Store, sessionID string) error {
	if sessionID == "" {
		return ErrSessionNotFound
	}
	if _, err := st.Sessions().GetSessionByID(ctx, sessionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("lookup session: %w", err)
	}
	return nil
}
