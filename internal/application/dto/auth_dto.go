package dto

import "time"

// RegisterRequest body of POST /api/auth/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirmName    string `json:"firm_name"`
	ContactName string `json:"contact_name"`
}

// LoginRequest body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse public view of a user (no credential hash).
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirmName    string    `json:"firm_name"`
	ContactName string    `json:"contact_name"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse token plus the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
