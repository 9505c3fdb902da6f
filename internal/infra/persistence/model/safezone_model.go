package model

import (
	"time"

	"github.com/google/uuid"
)

// SafeZoneModel is the GORM-specific struct for the 'safe_zones' table.
type SafeZoneModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerHash     string    `gorm:"type:char(64);not null;index"`
	SealedOwner   string    `gorm:"type:text;not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Latitude      float64   `gorm:"not null"`
	Longitude     float64   `gorm:"not null"`
	RadiusMeters  float64   `gorm:"not null"`
	ZoneType      string    `gorm:"type:varchar(20);not null"`
	IsActive      bool      `gorm:"not null;index"`
	NotifyOnEnter bool      `gorm:"not null"`
	NotifyOnExit  bool      `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SafeZoneModel) TableName() string {
	return "safe_zones"
}
