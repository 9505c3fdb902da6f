package usecase

import (
	"context"

	"safezone/internal/domain/entity"
)

// IncidentPayload is the push content for one incident.
type IncidentPayload struct {
	IncidentID int64
	Title      string
	Body       string
	Data       map[string]string
}

// DispatchTarget is one identity and the token it is reachable at.
type DispatchTarget struct {
	IdentityHash string
	FCMToken     string
}

// DispatchResult summarizes one dispatch. Failures lists identity hashes.
type DispatchResult struct {
	SuccessCount int
	Failures     []string
}

// NotificationDispatcher sends an incident payload to a set of targets and
// records one attempt per target. It never returns an error; failures are
// reported in the result.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, payload *IncidentPayload, targets []DispatchTarget) *DispatchResult
}

// IncidentNotifier runs the notification fanout for a committed incident.
// Nothing it does is reported back to the caller.
type IncidentNotifier interface {
	OnIncidentCreated(ctx context.Context, incident *entity.Incident)
}
