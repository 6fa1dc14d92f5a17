package domain

import "time"

// User represents an application user registered with email + password.
// PasswordHash holds only the bcrypt hash; the plaintext never leaves the
// signup/signin code paths and the hash is never exposed through the API.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
