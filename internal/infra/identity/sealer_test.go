package identity

import (
	"strings"
	"testing"

	"safezone/config"
	"safezone/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSealer(t *testing.T, secret string) *sealer {
	t.Helper()
	s, err := newSealer([]byte(secret))
	require.NoError(t, err)

	return s
}

func TestSealer_ProtectAndOpen(t *testing.T) {
	s := newTestSealer(t, "identity-secret")

	identity, err := s.Protect("device-123")
	require.NoError(t, err)
	assert.Len(t, identity.Hash, 64)
	assert.NotContains(t, identity.Sealed, "device-123")

	opened, err := s.Open(identity.Sealed)
	require.NoError(t, err)
	assert.Equal(t, "device-123", opened)
}

func TestSealer_HashIsStableAndSealIsNot(t *testing.T) {
	s := newTestSealer(t, "identity-secret")

	first, err := s.Protect("device-123")
	require.NoError(t, err)
	second, err := s.Protect("device-123")
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
	assert.NotEqual(t, first.Sealed, second.Sealed, "fresh nonce per seal")

	hash, err := s.Hash("device-123")
	require.NoError(t, err)
	assert.Equal(t, first.Hash, hash)

	abc, err := s.Hash("abc")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", abc)
}

func TestSealer_RejectsInvalidIDs(t *testing.T) {
	s := newTestSealer(t, "identity-secret")

	for _, deviceID := range []string{"", "   ", strings.Repeat("x", maxDeviceIDLength+1), "bad\x00id"} {
		_, err := s.Protect(deviceID)
		assert.ErrorIs(t, err, service.ErrInvalidDeviceID, "device id %q", deviceID)
	}
}

func TestSealer_OpenRejectsTampering(t *testing.T) {
	s := newTestSealer(t, "identity-secret")
	other := newTestSealer(t, "another-secret")

	identity, err := s.Protect("device-123")
	require.NoError(t, err)

	_, err = other.Open(identity.Sealed)
	assert.ErrorIs(t, err, service.ErrInvalidDeviceID)

	_, err = s.Open("!!not-base64!!")
	assert.ErrorIs(t, err, service.ErrInvalidDeviceID)

	_, err = s.Open("c2hvcnQ")
	assert.ErrorIs(t, err, service.ErrInvalidDeviceID)
}

func TestNewProtector_RequiresSecret(t *testing.T) {
	_, err := NewProtector(&config.Config{})
	assert.Error(t, err)

	protector, err := NewProtector(&config.Config{Identity: &config.IdentityConfig{Secret: "s"}})
	require.NoError(t, err)
	assert.NotNil(t, protector)
}
