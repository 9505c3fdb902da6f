// Package identity hashes and seals device ids so that plaintext ids never
// reach storage.
package identity

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"
	"strings"
	"unicode"

	"safezone/config"
	"safezone/internal/domain/service"
	"safezone/internal/errors"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	maxDeviceIDLength = 255
	keyInfo           = "safezone identity seal v1"
)

type sealer struct {
	key []byte
}

// NewProtector derives the sealing key from the configured identity secret.
func NewProtector(cfg *config.Config) (service.IdentityProtector, error) {
	if cfg.Identity == nil || cfg.Identity.Secret == "" {
		return nil, errors.New("identity secret must be provided")
	}

	return newSealer([]byte(cfg.Identity.Secret))
}

func newSealer(secret []byte) (*sealer, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(keyInfo)), key); err != nil {
		return nil, errors.Wrap(err, "failed to derive identity key")
	}

	return &sealer{key: key}, nil
}

// Protect validates deviceID and returns its hash and sealed form.
func (s *sealer) Protect(deviceID string) (service.Identity, error) {
	hash, err := s.Hash(deviceID)
	if err != nil {
		return service.Identity{}, err
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return service.Identity{}, errors.Wrap(err, "failed to init cipher")
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(deviceID)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return service.Identity{}, errors.Wrap(err, "failed to read nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(deviceID), []byte(keyInfo))

	return service.Identity{
		Hash:   hash,
		Sealed: base64.RawURLEncoding.EncodeToString(sealed),
	}, nil
}

// Hash returns the sha256 hex digest used for lookups.
func (s *sealer) Hash(deviceID string) (string, error) {
	if err := validateDeviceID(deviceID); err != nil {
		return "", err
	}

	sum := sha256.Sum256([]byte(deviceID))

	return hex.EncodeToString(sum[:]), nil
}

// Open decrypts a sealed identity.
func (s *sealer) Open(sealed string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Wrap(service.ErrInvalidDeviceID, "sealed identity is not base64")
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to init cipher")
	}
	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return "", errors.Wrap(service.ErrInvalidDeviceID, "sealed identity too short")
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(keyInfo))
	if err != nil {
		return "", errors.Wrap(service.ErrInvalidDeviceID, "sealed identity failed authentication")
	}

	return string(plaintext), nil
}

func validateDeviceID(deviceID string) error {
	if strings.TrimSpace(deviceID) == "" {
		return errors.Wrap(service.ErrInvalidDeviceID, "device id is empty")
	}
	if len(deviceID) > maxDeviceIDLength {
		return errors.Wrap(service.ErrInvalidDeviceID, "device id too long")
	}
	for _, r := range deviceID {
		if !unicode.IsPrint(r) {
			return errors.Wrap(service.ErrInvalidDeviceID, "device id contains non-printable characters")
		}
	}

	return nil
}
