package usecase

import (
	"context"
	"time"
)

// SessionOutput is an issued session token.
type SessionOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionUsecase exchanges device ids for session tokens and back.
type SessionUsecase interface {
	CreateSession(ctx context.Context, deviceID string) (*SessionOutput, error)

	// Authenticate validates a token and returns the plaintext device id.
	Authenticate(ctx context.Context, token string) (string, error)
}
