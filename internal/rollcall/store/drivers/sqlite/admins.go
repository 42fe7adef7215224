package sqlite

import (
	"context"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
)

type adminsRepo struct {
	db dbtx
}

func (r *adminsRepo) GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	var (
		a         domain.Admin
		createdAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = ?`,
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &createdAt)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	if a.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Admin{}, err
	}
	return a, nil
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.Username, a.PasswordHash, formatTime(a.CreatedAt),
	)
	return mapUniqueViolation(err)
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
