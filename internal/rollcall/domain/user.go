package domain

import "time"

type User struct {
	ID           string
	Phone        *string
	Email        *string
	MahatmaID    *string // external membership id
	Name         string
	Age          *int
	Gender       *string
	Location     *string
	PasswordHash *string // argon2 encoded, nil for OTP-only signup
	CreatedAt    time.Time
}

// HasIdentifier reports whether the user carries a phone or an email.
func (u User) HasIdentifier() bool {
	return (u.Phone != nil && *u.Phone != "") || (u.Email != nil && *u.Email != "")
}
