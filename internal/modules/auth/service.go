package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type service struct {
	jwtSecret  []byte
	adminEmail string
	adminHash  string
}

// NewService creates an auth service backed by the single admin account
// configured through the environment.
func NewService(jwtSecret, adminEmail, adminPasswordHash string) Service {
	return &service{
		jwtSecret:  []byte(jwtSecret),
		adminEmail: adminEmail,
		adminHash:  adminPasswordHash,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	if s.adminEmail == "" || s.adminHash == "" {
		return "", ErrNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) != 1 {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.StandardClaims{
		Subject:   email,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
