package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents a device registered for push notifications.
type UserDeviceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdentityHash   string    `gorm:"type:char(64);not null;uniqueIndex"`
	SealedIdentity string    `gorm:"type:text;not null"`
	FCMToken       string    `gorm:"type:text;not null;index"`
	Platform       string    `gorm:"type:varchar(20);not null"`
	IsActive       bool      `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
