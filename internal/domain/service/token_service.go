package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for session tokens. Subject carries the
// sealed device identity.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and validates session JWTs.
type TokenService interface {
	// GenerateToken creates a session token for a sealed identity.
	GenerateToken(sealedIdentity string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
