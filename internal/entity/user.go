package entity

import (
	"fmt"
	"time"
)

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleAuthor UserRole = "author"
	RoleAdmin  UserRole = "admin"
)

// ParseRole validates role input at the API boundary. Roles are a closed set;
// anything else is a validation error.
func ParseRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleUser, RoleAuthor, RoleAdmin:
		return UserRole(s), nil
	}
	return "", fmt.Errorf("%w: invalid role %q", ErrValidation, s)
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Actor is the authenticated identity performing a request, as resolved from
// the bearer token.
type Actor struct {
	ID   string
	Role UserRole
}
