package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/rollcall/internal/rollcall/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, phone, email, mahatma_id, name, age, gender, location, password_hash, created_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (r *usersRepo) GetUserByPhone(ctx context.Context, phone string) (domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE phone = ?`, phone)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		mapOptionalString(u.Phone),
		mapOptionalString(u.Email),
		mapOptionalString(u.MahatmaID),
		u.Name,
		mapOptionalInt(u.Age),
		mapOptionalString(u.Gender),
		mapOptionalString(u.Location),
		mapOptionalString(u.PasswordHash),
		formatTime(u.CreatedAt),
	)
	return mapUniqueViolation(err)
}

func (r *usersRepo) getOne(ctx context.Context, query string, arg any) (domain.User, error) {
	var (
		u                                      domain.User
		phone, email, mahatma, gender, loc, pw sql.NullString
		age                                    sql.NullInt64
		createdAt                              string
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &phone, &email, &mahatma, &u.Name, &age, &gender, &loc, &pw, &createdAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Phone = mapNullStringPtr(phone)
	u.Email = mapNullStringPtr(email)
	u.MahatmaID = mapNullStringPtr(mahatma)
	u.Age = mapNullIntPtr(age)
	u.Gender = mapNullStringPtr(gender)
	u.Location = mapNullStringPtr(loc)
	u.PasswordHash = mapNullStringPtr(pw)
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.User{}, err
	}
	return u, nil
}
