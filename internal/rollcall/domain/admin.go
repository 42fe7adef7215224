package domain

import "time"

type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
