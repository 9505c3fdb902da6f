package service

import "github.com/pkg/errors"

// ErrInvalidDeviceID is returned for empty, oversized, non-printable or
// tampered identities.
var ErrInvalidDeviceID = errors.New("invalid device id")

// Identity is a device id in the two forms we persist.
type Identity struct {
	Hash   string // sha256 hex, used for every lookup
	Sealed string // encrypted, base64, never queried
}

// IdentityProtector turns plaintext device ids into their stored forms.
type IdentityProtector interface {
	// Protect validates deviceID and returns its hash and sealed form.
	Protect(deviceID string) (Identity, error)

	// Hash returns only the lookup hash of deviceID.
	Hash(deviceID string) (string, error)

	// Open decrypts a sealed identity back to the device id.
	Open(sealed string) (string, error)
}
