package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationAttempt is the append-only record of one push delivery attempt
// for one (incident, device) pair.
type NotificationAttempt struct {
	ID           uuid.UUID `json:"id"`
	IncidentID   int64     `json:"incident_id"`
	IdentityHash string    `json:"-"`
	FCMToken     string    `json:"-"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"error_message,omitempty"`
	SentAt       time.Time `json:"sent_at"`
}

// NotificationSummary aggregates attempts for one incident.
type NotificationSummary struct {
	IncidentID int64      `json:"incident_id"`
	Total      int64      `json:"total"`
	Succeeded  int64      `json:"succeeded"`
	Failed     int64      `json:"failed"`
	LastSentAt *time.Time `json:"last_sent_at,omitempty"`
}
