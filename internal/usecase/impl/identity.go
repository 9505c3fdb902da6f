package impl

import (
	domainerrors "safezone/internal/domain/errors"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
)

// protectIdentity maps a malformed device id to a client error.
func protectIdentity(protector service.IdentityProtector, deviceID string) (service.Identity, error) {
	identity, err := protector.Protect(deviceID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDeviceID) {
			return service.Identity{}, errors.Wrap(domainerrors.ErrInvalidIdentity, err.Error())
		}

		return service.Identity{}, errors.Wrap(err, "failed to protect device id")
	}

	return identity, nil
}

func hashIdentity(protector service.IdentityProtector, deviceID string) (string, error) {
	hash, err := protector.Hash(deviceID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDeviceID) {
			return "", errors.Wrap(domainerrors.ErrInvalidIdentity, err.Error())
		}

		return "", errors.Wrap(err, "failed to hash device id")
	}

	return hash, nil
}
