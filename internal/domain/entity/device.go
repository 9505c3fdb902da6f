package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device platforms accepted at registration.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
	PlatformWeb     = "web"
)

// UserDevice is a device registered for push notifications. There is at
// most one row per identity.
type UserDevice struct {
	ID             uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the registration.
	IdentityHash   string    `json:"-"`          // sha256 of the device id, unique.
	SealedIdentity string    `json:"-"`          // Encrypted device id.
	FCMToken       string    `json:"-"`          // Firebase Cloud Messaging token. Never echoed back.
	Platform       string    `json:"platform"`   // Device platform (android, ios, web).
	IsActive       bool      `json:"is_active"`  // Inactive devices are never notified.
	CreatedAt      time.Time `json:"created_at"` // Timestamp of the first registration.
	UpdatedAt      time.Time `json:"updated_at"` // Timestamp of the last token refresh.
}
