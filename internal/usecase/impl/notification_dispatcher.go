package impl

import (
	"context"
	"log/slog"
	"time"

	"safezone/config"
	deliverycontext "safezone/internal/delivery/context"
	"safezone/internal/domain/entity"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	"safezone/internal/usecase"

	"github.com/google/uuid"
)

// ErrTransportNotConfigured is recorded for every target when no push
// transport is available.
var ErrTransportNotConfigured = errors.New("push transport not configured")

// recordTimeout bounds the attempt-row and token cleanup writes that follow a
// batch. They run detached from the caller so an expired fanout context still
// leaves one row per target.
const recordTimeout = 10 * time.Second

type notificationDispatcher struct {
	pushSvc          service.PushService
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	sendTimeout      time.Duration
	logger           *slog.Logger
	now              func() time.Time
}

// NewNotificationDispatcher creates the per-target push sender. pushSvc may
// be nil when Firebase is not configured.
func NewNotificationDispatcher(
	cfg *config.Config,
	pushSvc service.PushService,
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	logger *slog.Logger,
) usecase.NotificationDispatcher {
	return &notificationDispatcher{
		pushSvc:          pushSvc,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		sendTimeout:      cfg.Notification.SendTimeout,
		logger:           logger,
		now:              time.Now,
	}
}

// Dispatch sends payload to every target, one transport call each, then
// writes one attempt row per target.
func (d *notificationDispatcher) Dispatch(ctx context.Context, payload *usecase.IncidentPayload, targets []usecase.DispatchTarget) *usecase.DispatchResult {
	result := &usecase.DispatchResult{Failures: []string{}}
	if len(targets) == 0 {
		return result
	}

	attempts := make([]*entity.NotificationAttempt, 0, len(targets))
	var deadTokens []string

	for _, target := range targets {
		attempt := &entity.NotificationAttempt{
			ID:           uuid.New(),
			IncidentID:   payload.IncidentID,
			IdentityHash: target.IdentityHash,
			FCMToken:     target.FCMToken,
		}

		err := d.send(ctx, payload, target.FCMToken)
		attempt.SentAt = d.now().UTC()
		if err != nil {
			attempt.ErrorMessage = err.Error()
			result.Failures = append(result.Failures, target.IdentityHash)
			if errors.Is(err, service.ErrInvalidPushToken) {
				deadTokens = append(deadTokens, target.FCMToken)
			}
		} else {
			attempt.Success = true
			result.SuccessCount++
		}

		attempts = append(attempts, attempt)
	}

	recordCtx, cancel := deliverycontext.Detach(ctx, recordTimeout)
	defer cancel()

	for _, attempt := range attempts {
		if err := d.notificationRepo.CreateAttempt(recordCtx, attempt); err != nil {
			d.logger.Warn("Failed to record notification attempt",
				slog.Int64("incident_id", attempt.IncidentID),
				slog.Bool("success", attempt.Success),
				slog.Any("error", err),
			)
		}
	}

	for _, token := range deadTokens {
		affected, err := d.deviceRepo.DeactivateByToken(recordCtx, token)
		if err != nil {
			d.logger.Warn("Failed to deactivate device with invalid token", slog.Any("error", err))

			continue
		}
		d.logger.Info("Deactivated device with invalid token", slog.Int64("devices", affected))
	}

	d.logger.Info("Incident notifications dispatched",
		slog.Int64("incident_id", payload.IncidentID),
		slog.Int("targets", len(targets)),
		slog.Int("succeeded", result.SuccessCount),
		slog.Int("failed", len(result.Failures)),
	)

	return result
}

func (d *notificationDispatcher) send(ctx context.Context, payload *usecase.IncidentPayload, token string) error {
	if d.pushSvc == nil {
		return ErrTransportNotConfigured
	}

	sendCtx := ctx
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}

	if err := d.pushSvc.SendSingleNotification(sendCtx, token, payload.Title, payload.Body, payload.Data); err != nil {
		return errors.Wrap(err, "push send failed")
	}

	return nil
}
