package domain

import (
	"context"
	"time"
)

var (
	ErrEmailTaken         = &Error{Code: ECONFLICT, Message: "A user with this email already exists"}
	ErrInvalidCredentials = &Error{Code: EUNAUTHORIZED, Message: "Invalid email or password"}
	ErrInvalidToken       = &Error{Code: EUNAUTHORIZED, Message: "Invalid or expired token"}
)

// User is a registered account. PasswordHash is a bcrypt hash and is
// never serialized into API responses.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthToken is an opaque bearer credential bound to a user with a
// fixed expiry.
type AuthToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser is the projection of a user safe to return to clients.
type PublicUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Phone:   u.Phone,
		Address: u.Address,
	}
}

// Credentials is an issued bearer token with its user projection.
type Credentials struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// RegisterRequest carries a signup payload.
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// UserService handles registration, login, and token resolution.
type UserService interface {
	// Register creates a user and issues a bearer token.
	Register(ctx context.Context, req RegisterRequest) (*Credentials, error)

	// Login verifies the password and issues a bearer token.
	Login(ctx context.Context, email, password string) (*Credentials, error)

	// CurrentUser resolves a bearer token to its user. Missing,
	// unknown, and expired tokens all fail with ErrInvalidToken.
	CurrentUser(ctx context.Context, token string) (*PublicUser, error)
}
