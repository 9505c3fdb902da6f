package handler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"safezone/config"
	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/domain/constants"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	"safezone/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultFanoutTimeout = 2 * time.Minute

// retryableError wraps an error to indicate the event should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError reports whether redelivering the event may succeed
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// IncidentProcessorParams holds dependencies for IncidentProcessor, injected by Fx.
type IncidentProcessorParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	IncidentRepo repository.IncidentRepository
	Notifier     usecase.IncidentNotifier
}

// IncidentProcessor runs the notification fanout for a published incident
// event. It is shared by the push endpoint and the queue consumer.
type IncidentProcessor struct {
	logger        *slog.Logger
	incidentRepo  repository.IncidentRepository
	notifier      usecase.IncidentNotifier
	fanoutTimeout time.Duration
}

// NewIncidentProcessor creates a new IncidentProcessor
func NewIncidentProcessor(params IncidentProcessorParams) *IncidentProcessor {
	fanoutTimeout := defaultFanoutTimeout
	if params.Config.Notification != nil && params.Config.Notification.FanoutTimeout > 0 {
		fanoutTimeout = params.Config.Notification.FanoutTimeout
	}

	return &IncidentProcessor{
		logger:        params.Logger,
		incidentRepo:  params.IncidentRepo,
		notifier:      params.Notifier,
		fanoutTimeout: fanoutTimeout,
	}
}

// Process loads the incident and notifies matching safe zone owners.
// Lookup failures other than a missing incident are retryable; a missing
// incident is dropped since it was deleted after publishing.
func (p *IncidentProcessor) Process(ctx context.Context, event *service.IncidentEvent) error {
	requestID := event.RequestID
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := p.logger.With(
		slog.String(constants.AttrRequestID, requestID),
		slog.Int64(constants.AttrIncidentID, event.IncidentID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if event.IncidentID <= 0 {
		return errors.Errorf("invalid incident id %d", event.IncidentID)
	}

	incident, err := p.incidentRepo.FindIncidentByID(ctx, event.IncidentID)
	if err != nil {
		if errors.Is(err, repository.ErrIncidentNotFound) {
			reqLogger.Warn("[Worker] Incident no longer exists, dropping event")

			return nil
		}

		return newRetryableError(errors.Wrap(err, "failed to load incident"))
	}

	// A dropped push request or a stopping consumer must not cut the fanout short.
	fanoutCtx, cancel := deliverycontext.Detach(ctx, p.fanoutTimeout)
	defer cancel()

	reqLogger.Info("[Worker] Processing incident event")
	p.notifier.OnIncidentCreated(fanoutCtx, incident)

	return nil
}
