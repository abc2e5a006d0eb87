package dto

import (
	"time"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginResponse carries the session and the view to open.
type LoginResponse struct {
	User    UserResponse `json:"user"`
	Auth    AuthResponse `json:"auth"`
	Landing string       `json:"landing"`
}

// LogoutResponse names the view shown after signing out.
type LogoutResponse struct {
	Landing string `json:"landing"`
}

// UserResponse never exposes the password hash.
type UserResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	CompanyID   string      `json:"company_id"`
	HasPassword bool        `json:"has_password"`
}

// CreateUserRequest payload for admin-created client accounts.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest payload; omitted fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
