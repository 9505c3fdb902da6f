package usecase

import "context"

// Confirmation messages returned to clients.
const (
	MessageConfirmed           = "Incident confirmed successfully!"
	MessageConfirmedCapReached = "Incident confirmed but max confirmations reached"
)

// ConfirmationResult is the outcome of one successful confirmation.
type ConfirmationResult struct {
	PointsEarned      int    `json:"points_earned"`
	TotalPoints       int    `json:"total_points"`
	TierChanged       bool   `json:"tier_changed"`
	NewTier           *int   `json:"new_tier,omitempty"`
	TierName          string `json:"tier_name,omitempty"`
	TierIcon          string `json:"tier_icon,omitempty"`
	ConfirmationCount int    `json:"confirmation_count"`
	Message           string `json:"message"`
}

// ConfirmationLedger records confirmations and triggers scoring.
type ConfirmationLedger interface {
	// Confirm fails with errors.ErrIncidentNotFound for unknown incidents and
	// errors.ErrAlreadyConfirmed on a repeat by the same device.
	Confirm(ctx context.Context, incidentID int64, deviceID string) (*ConfirmationResult, error)
}
