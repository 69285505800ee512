package users

import "time"

// User represents a registered account. PasswordHash holds the bcrypt hash;
// plaintext passwords are never persisted.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	EmailAddress string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
