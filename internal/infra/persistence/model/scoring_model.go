package model

import (
	"time"

	"github.com/google/uuid"
)

// ScoreProfileModel is the GORM-specific struct for the 'score_profiles' table.
type ScoreProfileModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdentityHash       string    `gorm:"type:char(64);not null;uniqueIndex"`
	SealedIdentity     string    `gorm:"type:text;not null"`
	TotalPoints        int       `gorm:"not null;index"`
	ReportsCount       int       `gorm:"not null"`
	ConfirmationsCount int       `gorm:"not null"`
	VerifiedReports    int       `gorm:"not null"`
	CurrentTier        int       `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScoreProfileModel) TableName() string {
	return "score_profiles"
}

// BadgeModel is the GORM-specific struct for the 'badges' table.
type BadgeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_badges_profile_type,priority:1"`
	BadgeType string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_badges_profile_type,priority:2"`
	EarnedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (BadgeModel) TableName() string {
	return "badges"
}

// ConfirmationModel is the GORM-specific struct for the 'incident_confirmations' table.
type ConfirmationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	IncidentID   int64     `gorm:"not null;uniqueIndex:idx_confirmations_incident_identity,priority:1"`
	IdentityHash string    `gorm:"type:char(64);not null;uniqueIndex:idx_confirmations_incident_identity,priority:2"`
	ConfirmedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ConfirmationModel) TableName() string {
	return "incident_confirmations"
}

// All lists every persistence model, in dependency order.
func All() []any {
	return []any{
		&IncidentModel{},
		&SafeZoneModel{},
		&UserDeviceModel{},
		&NotificationAttemptModel{},
		&ScoreProfileModel{},
		&BadgeModel{},
		&ConfirmationModel{},
	}
}
