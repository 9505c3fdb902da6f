package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationAttemptModel is the GORM-specific struct for the 'notification_attempts' table.
// It represents one push delivery attempt for one device.
type NotificationAttemptModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	IncidentID   int64     `gorm:"not null;index"`
	IdentityHash string    `gorm:"type:char(64);not null;index"`
	FCMToken     string    `gorm:"type:text;not null"`
	Success      bool      `gorm:"not null"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationAttemptModel) TableName() string {
	return "notification_attempts"
}
