package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"safezone/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisQueuePublisher pushes events onto a Redis list consumed with BRPOP
// by the alert worker.
type redisQueuePublisher struct {
	client   *redis.Client
	queueKey string
	logger   *slog.Logger
}

// NewRedisQueuePublisher creates a publisher writing to queueKey.
func NewRedisQueuePublisher(client *redis.Client, queueKey string, logger *slog.Logger) service.EventPublisher {
	return &redisQueuePublisher{
		client:   client,
		queueKey: queueKey,
		logger:   logger,
	}
}

// PublishIncidentEvent LPUSHes the JSON-encoded event.
func (p *redisQueuePublisher) PublishIncidentEvent(ctx context.Context, event *service.IncidentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.client.LPush(ctx, p.queueKey, payload).Err(); err != nil {
		return errors.Wrap(err, "failed to push incident event")
	}

	p.logger.Info("[RedisQueue] Event queued",
		slog.Int64("incident_id", event.IncidentID),
		slog.String("queue_key", p.queueKey),
	)

	return nil
}

// Close is a no-op; the shared client is closed by its own lifecycle hook.
func (p *redisQueuePublisher) Close() error {
	return nil
}
