package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is the credential identity. Every user owns exactly one Profile,
// created in the same transaction as the user row.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:150"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Password  string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the user's full name, falling back to the username.
func (u *User) DisplayName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full == "" {
		return u.Username
	}
	return full
}

// SignupRequest registers a new account. The username is derived from the
// email's local part, suffixed with a number when already taken.
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"omitempty,max=150"`
	LastName  string `json:"last_name" validate:"omitempty,max=150"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	ProfileID uint   `json:"profile_id"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}
