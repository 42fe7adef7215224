package sqlite

import (
	"context"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
)

type statsRepo struct {
	db dbtx
}

func (r *statsRepo) Summary(ctx context.Context, since string) (domain.Summary, error) {
	var s domain.Summary
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM sessions),
			(SELECT COUNT(*) FROM attendance),
			(SELECT COUNT(DISTINCT user_id) FROM attendance)`,
	).Scan(&s.TotalSessions, &s.TotalAttendance, &s.UniqueUsers)
	if err != nil {
		return domain.Summary{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT date, COUNT(*)
		FROM sessions
		WHERE date >= ?
		GROUP BY date
		ORDER BY date DESC`,
		since,
	)
	if err != nil {
		return domain.Summary{}, err
	}
	defer rows.Close()

	s.SessionsPerDay = make([]domain.DayCount, 0)
	for rows.Next() {
		var d domain.DayCount
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return domain.Summary{}, err
		}
		s.SessionsPerDay = append(s.SessionsPerDay, d)
	}
	return s, rows.Err()
}
