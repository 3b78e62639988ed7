package models

import (
	"time"
)

// Employee roles. Staff can read the console; admins manage it.
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// EmployeeRequest creates or updates a console account.
type EmployeeRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role" binding:"required,oneof=staff admin"`
}

type UserListResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// SessionContext is the authenticated identity handed explicitly to anything
// that needs it, instead of ambient per-request lookups.
type SessionContext struct {
	UserID int
	Email  string
	Role   string
}

func (s SessionContext) IsAdmin() bool {
	return s.Role == RoleAdmin
}
