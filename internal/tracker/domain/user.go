package domain

import "time"

type User struct {
	ID           string
	Username     string // display label
	Email        string // unique across all users
	PasswordHash string // argon2 encoded, never the plaintext
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
