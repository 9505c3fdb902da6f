// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "safezone/internal/delivery/context"
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	"safezone/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identity     service.IdentityProtector
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	identity service.IdentityProtector,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		identity:     identity,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession issues a token whose subject is the sealed device id.
func (srv *sessionService) CreateSession(ctx context.Context, deviceID string) (*usecase.SessionOutput, error) {
	identity, err := protectIdentity(srv.identity, deviceID)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := srv.tokenService.GenerateToken(identity.Sealed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Session created", slog.Time("expires_at", expiresAt))

	return &usecase.SessionOutput{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate validates the token and unseals its subject.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Rejected session token", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrSessionInvalid, "invalid session token")
	}

	deviceID, err := srv.identity.Open(claims.Subject)
	if err != nil {
		srv.log(ctx).Warn("Session token carries an unreadable identity", slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrSessionInvalid, "invalid session subject")
	}

	return deviceID, nil
}
