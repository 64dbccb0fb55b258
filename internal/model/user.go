package model

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// User represents a registered account
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never leaves the server
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    time.Time `json:"last_login"`
}

// UserSummary is the public view of a user returned by auth endpoints
type UserSummary struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Summary strips the record down to what clients may see
func (u *User) Summary() UserSummary {
	return UserSummary{Email: u.Email, Name: u.Name, Role: u.Role}
}

// Principal is the identity attached to a request after token verification
type Principal struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterRequest is the body of POST /api/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResult is what register and login hand back to the HTTP layer
type AuthResult struct {
	Token  string
	UserID string
	User   UserSummary
	Demo   bool
}
