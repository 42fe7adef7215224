package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
	"github.com/aussiebroadwan/rollcall/internal/rollcall/store"
)

type attendanceRepo struct {
	db dbtx
}

// InsertIfAbsent relies on UNIQUE(user_id, session_id): of any number of
// concurrent callers for one pair exactly one insert lands and the rest read
// the winner back.
func (r *attendanceRepo) InsertIfAbsent(ctx context.Context, a domain.Attendance) (store.InsertResult, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO attendance (id, user_id, session_id, marked_at, method, device_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, session_id) DO NOTHING`,
		a.ID, a.UserID, a.SessionID, formatTime(a.MarkedAt), string(a.Method), mapOptionalString(a.DeviceID),
	)
	if err != nil && !isUniqueViolation(err) {
		return store.InsertResult{}, err
	}

	if err == nil {
		n, err := res.RowsAffected()
		if err != nil {
			return store.InsertResult{}, err
		}
		if n == 1 {
			a.MarkedAt = a.MarkedAt.UTC()
			return store.InsertResult{Outcome: store.Inserted, Attendance: a}, nil
		}
	}

	existing, err := r.GetByUserSession(ctx, a.UserID, a.SessionID)
	if err != nil {
		return store.InsertResult{}, fmt.Errorf("read back existing attendance: %w", err)
	}
	return store.InsertResult{Outcome: store.AlreadyExists, Attendance: existing}, nil
}

func (r *attendanceRepo) GetByUserSession(ctx context.Context, userID, sessionID string) (domain.Attendance, error) {
	var (
		a        domain.Attendance
		method   string
		markedAt string
		device   sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, session_id, marked_at, method, device_id
		FROM attendance
		WHERE user_id = ? AND session_id = ?`,
		userID, sessionID,
	).Scan(&a.ID, &a.UserID, &a.SessionID, &markedAt, &method, &device)
	if err != nil {
		return domain.Attendance{}, mapNotFound(err)
	}

	a.Method = domain.Method(method)
	a.DeviceID = mapNullStringPtr(device)
	if a.MarkedAt, err = parseTime(markedAt); err != nil {
		return domain.Attendance{}, err
	}
	return a, nil
}

func (r *attendanceRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.RosterEntry, error) {
	return r.roster(ctx, sessionID, "DESC")
}

func (r *attendanceRepo) ListForExport(ctx context.Context, sessionID string) ([]domain.RosterEntry, error) {
	return r.roster(ctx, sessionID, "ASC")
}

func (r *attendanceRepo) roster(ctx context.Context, sessionID, order string) ([]domain.RosterEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT a.id, a.user_id, a.session_id, a.marked_at, a.method, a.device_id,
		       u.phone, u.email, u.name, u.mahatma_id
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		WHERE a.session_id = ?
		ORDER BY a.marked_at `+order+`, a.id `+order,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.RosterEntry, 0)
	for rows.Next() {
		var (
			e                       domain.RosterEntry
			method, markedAt        string
			device, phone, email, m sql.NullString
		)
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.SessionID, &markedAt, &method, &device,
			&phone, &email, &e.Name, &m,
		); err != nil {
			return nil, err
		}
		e.Method = domain.Method(method)
		e.DeviceID = mapNullStringPtr(device)
		e.Phone = mapNullStringPtr(phone)
		e.Email = mapNullStringPtr(email)
		e.MahatmaID = mapNullStringPtr(m)
		if e.MarkedAt, err = parseTime(markedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
