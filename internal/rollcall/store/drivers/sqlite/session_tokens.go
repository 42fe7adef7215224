package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
)

type sessionTokensRepo struct {
	db dbtx
}

func (r *sessionTokensRepo) CreateSessionToken(ctx context.Context, t domain.SessionToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_tokens (id, session_id, token, valid_from, valid_to, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.SessionID, t.Token,
		formatTime(t.ValidFrom), formatTime(t.ValidTo), formatTime(t.CreatedAt),
	)
	return mapUniqueViolation(err)
}

func (r *sessionTokensRepo) LatestValid(
	ctx context.Context,
	sessionID string,
	now time.Time,
) (domain.SessionToken, error) {
	at := formatTime(now)

	var (
		t                          domain.SessionToken
		validFrom, validTo, create string
	)
	// ULID ids sort by creation, so the greatest id is the latest issue.
	err := r.db.QueryRowContext(ctx, `
		SELECT id, session_id, token, valid_from, valid_to, created_at
		FROM session_tokens
		WHERE session_id = ? AND valid_from <= ? AND valid_to > ?
		ORDER BY id DESC
		LIMIT 1`,
		sessionID, at, at,
	).Scan(&t.ID, &t.SessionID, &t.Token, &validFrom, &validTo, &create)
	if err != nil {
		return domain.SessionToken{}, mapNotFound(err)
	}

	if t.ValidFrom, err = parseTime(validFrom); err != nil {
		return domain.SessionToken{}, err
	}
	if t.ValidTo, err = parseTime(validTo); err != nil {
		return domain.SessionToken{}, err
	}
	if t.CreatedAt, err = parseTime(create); err != nil {
		return domain.SessionToken{}, err
	}
	return t, nil
}

func (r *sessionTokensRepo) CountForSession(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM session_tokens WHERE session_id = ?`, sessionID).Scan(&n)
	return n, err
}
