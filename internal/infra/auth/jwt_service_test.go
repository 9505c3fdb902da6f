package auth

import (
	"testing"
	"time"

	"safezone/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	before := time.Now()
	token, expiresAt, err := jwtService.GenerateToken("sealed-identity")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, before.Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sealed-identity", claims.Subject)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTService_RejectsEmptyIdentity(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	_, _, err = jwtService.GenerateToken("")
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse session token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two"))
	require.NoError(t, err)

	token, _, err := issuer.GenerateToken("sealed")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)
	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := jwtSvc.GenerateToken("sealed")
	require.NoError(t, err)

	jwtSvc.now = time.Now
	_, err = jwtSvc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
