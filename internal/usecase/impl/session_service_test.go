package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	mockSvc "safezone/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateSession(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	protector := newTestProtector(t)
	svc := NewSessionService(protector, tokenSvc, newDiscardLogger())
	expiresAt := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	var subject string
	tokenSvc.EXPECT().GenerateToken(mock.AnythingOfType("string")).
		Run(func(sealed string) { subject = sealed }).
		Return("signed-token", expiresAt, nil)

	session, err := svc.CreateSession(context.Background(), "device-1")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, expiresAt, session.ExpiresAt)
	assert.NotContains(t, subject, "device-1")

	opened, err := protector.Open(subject)
	require.NoError(t, err)
	assert.Equal(t, "device-1", opened)
}

func TestSessionService_CreateSession_InvalidDevice(t *testing.T) {
	svc := NewSessionService(newTestProtector(t), mockSvc.NewMockTokenService(t), newDiscardLogger())

	_, err := svc.CreateSession(context.Background(), "")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentity))
}

func TestSessionService_Authenticate(t *testing.T) {
	protector := newTestProtector(t)
	ident, err := protector.Protect("device-1")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		svc := NewSessionService(protector, tokenSvc, newDiscardLogger())
		tokenSvc.EXPECT().ValidateToken("good").
			Return(&service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: ident.Sealed}}, nil)

		deviceID, err := svc.Authenticate(context.Background(), "good")

		require.NoError(t, err)
		assert.Equal(t, "device-1", deviceID)
	})

	t.Run("rejected token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		svc := NewSessionService(protector, tokenSvc, newDiscardLogger())
		tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

		_, err := svc.Authenticate(context.Background(), "expired")

		assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
	})

	t.Run("tampered subject", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		svc := NewSessionService(protector, tokenSvc, newDiscardLogger())
		tokenSvc.EXPECT().ValidateToken("forged").
			Return(&service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "bm90LXNlYWxlZA"}}, nil)

		_, err := svc.Authenticate(context.Background(), "forged")

		assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
	})
}

func TestSessionService_CreateSession_ProtectorFailure(t *testing.T) {
	protector := mockSvc.NewMockIdentityProtector(t)
	svc := NewSessionService(protector, mockSvc.NewMockTokenService(t), newDiscardLogger())
	protector.EXPECT().Protect("device-1").Return(service.Identity{}, errors.New("cipher unavailable"))

	_, err := svc.CreateSession(context.Background(), "device-1")

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidIdentity))
}

func TestSessionService_CreateSession_SigningFailure(t *testing.T) {
	protector := mockSvc.NewMockIdentityProtector(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	svc := NewSessionService(protector, tokenSvc, newDiscardLogger())
	protector.EXPECT().Protect("device-1").Return(service.Identity{Hash: "h", Sealed: "s"}, nil)
	tokenSvc.EXPECT().GenerateToken("s").Return("", time.Time{}, errors.New("no key"))

	_, err := svc.CreateSession(context.Background(), "device-1")

	assert.ErrorContains(t, err, "failed to generate session token")
}
