package users

import "time"

// User is the stored account record. PasswordHash never leaves the package.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	LastActive   *time.Time
	CreatedAt    time.Time
}
