package auth

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no admin credentials are set in the
// environment; the admin dashboard is simply unavailable in that case.
var ErrNotConfigured = errors.New("admin credentials not configured")

// ErrInvalidCredentials is returned for a wrong email or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service defines the interface for admin authentication.
type Service interface {
	// Login checks the credentials against the configured admin account and
	// returns a signed session token.
	Login(ctx context.Context, email, password string) (string, error)
}
