package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
)

type sessionsRepo struct {
	db dbtx
}

const sessionColumns = `id, date, start_time, end_time, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.Session, error) {
	var (
		s                    domain.Session
		createdAt, updatedAt string
	)
	if err := row.Scan(&s.ID, &s.Date, &s.StartTime, &s.EndTime, &createdAt, &updatedAt); err != nil {
		return domain.Session{}, err
	}

	var err error
	if s.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Session{}, err
	}
	if s.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Session{}, err
	}
	return s, nil
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id string) (domain.Session, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id))
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sessionsRepo) ListSessions(ctx context.Context) ([]domain.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions ORDER BY date DESC, start_time DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (`+sessionColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Date, s.StartTime, s.EndTime, formatTime(s.CreatedAt), formatTime(s.UpdatedAt),
	)
	return mapUniqueViolation(err)
}

func (r *sessionsRepo) UpdateSession(
	ctx context.Context,
	id string,
	patch store.SessionPatch,
	now time.Time,
) (domain.Session, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sessions
		SET date       = COALESCE(?, date),
		    start_time = COALESCE(?, start_time),
		    end_time   = COALESCE(?, end_time),
		    updated_at = ?
		WHERE id = ?`,
		mapOptionalString(patch.Date),
		mapOptionalString(patch.StartTime),
		mapOptionalString(patch.EndTime),
		formatTime(now),
		id,
	)
	if err != nil {
		return domain.Session{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return domain.Session{}, err
	} else if n == 0 {
		return domain.Session{}, store.ErrNotFound
	}
	return r.GetSessionByID(ctx, id)
}
