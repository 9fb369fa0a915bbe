package entity

import "time"

// User represents a registered account (an architecture firm entrant or a
// program administrator). Identity and credentials are owned by the auth
// side; the submission core only reads ID and IsAdmin.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	FirmName     string
	ContactName  string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
