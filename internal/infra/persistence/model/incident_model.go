package model

import "time"

// IncidentModel is the GORM-specific struct for the 'incidents' table.
type IncidentModel struct {
	ID                int64   `gorm:"primaryKey;autoIncrement"`
	Category          string  `gorm:"type:varchar(50);not null;index:idx_incidents_category_created,priority:1"`
	Latitude          float64 `gorm:"not null;index:idx_incidents_lat_lon,priority:1"`
	Longitude         float64 `gorm:"not null;index:idx_incidents_lat_lon,priority:2"`
	Title             string  `gorm:"type:varchar(200);not null"`
	Description       *string `gorm:"type:text"`
	NotifyNearby      bool    `gorm:"not null"`
	ConfirmationCount int     `gorm:"not null"`
	ReporterHash      *string `gorm:"type:char(64);index"`
	VerifiedAt        *time.Time
	CreatedAt         time.Time `gorm:"not null;index;index:idx_incidents_category_created,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (IncidentModel) TableName() string {
	return "incidents"
}
