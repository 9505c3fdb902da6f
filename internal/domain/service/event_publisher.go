package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrPublishingDisabled is returned by the no-op publisher. Callers fall
// back to in-process fanout.
var ErrPublishingDisabled = errors.New("event publishing disabled")

// IncidentEvent is published after an incident is committed and consumed by
// the alert worker.
type IncidentEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	IncidentID int64  `json:"incident_id"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishIncidentEvent publishes an incident for async notification fanout
	PublishIncidentEvent(ctx context.Context, event *IncidentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
