package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"safezone/config"
	"safezone/internal/delivery"
	"safezone/internal/delivery/worker/handler"
	"safezone/internal/domain/constants"
	"safezone/internal/domain/service"
	"safezone/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	popTimeout   = 5 * time.Second
	retryBackoff = 2 * time.Second
	maxAttempts  = 5
)

// queuedEvent is the list element. Attempts is only set on requeue.
type queuedEvent struct {
	service.IncidentEvent
	Attempts int `json:"attempts,omitempty"`
}

type queueConsumer struct {
	client    *redis.Client
	queueKey  string
	enabled   bool
	processor *handler.IncidentProcessor
	logger    *slog.Logger

	popTimeout   time.Duration
	retryBackoff time.Duration

	quit     chan struct{}
	quitOnce sync.Once
	done     chan struct{}
	doneOnce sync.Once
}

// QueueConsumerParams holds dependencies for the Redis queue consumer
type QueueConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Redis     *redis.Client `optional:"true"`
	Processor *handler.IncidentProcessor
}

// NewQueueConsumer creates the BRPOP loop for the redis provider. With any
// other provider Serve returns immediately.
func NewQueueConsumer(params QueueConsumerParams) delivery.Delivery {
	enabled := params.Redis != nil && params.Cfg.PubSub != nil &&
		params.Cfg.PubSub.Provider == constants.PubSubProviderRedis

	c := &queueConsumer{
		client:       params.Redis,
		enabled:      enabled,
		processor:    params.Processor,
		logger:       params.Logger,
		popTimeout:   popTimeout,
		retryBackoff: retryBackoff,
		quit:         make(chan struct{}),
		done:         make(chan struct{}),
	}
	if params.Cfg.Redis != nil {
		c.queueKey = params.Cfg.Redis.QueueKey
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c
}

// Serve pops events until stopped.
func (c *queueConsumer) Serve(ctx context.Context) error {
	defer c.doneOnce.Do(func() { close(c.done) })

	if !c.enabled {
		c.logger.Info("Redis queue consumer disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	c.logger.Info("Starting Redis queue consumer", slog.String("queue_key", c.queueKey))

	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := c.consumeOne(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Error("[Worker] Queue pop failed", slog.Any("error", err))
			sleep(ctx, c.retryBackoff)
		}
	}
}

// consumeOne waits up to c.popTimeout for one event and processes it.
func (c *queueConsumer) consumeOne(ctx context.Context) error {
	result, err := c.client.BRPop(ctx, c.popTimeout, c.queueKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return errors.WithStack(err)
	}

	// result is [key, value]
	var event queuedEvent
	if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
		c.logger.Error("[Worker] Dropping malformed queue entry", slog.Any("error", err))

		return nil
	}

	// An in-flight fanout finishes even when the consumer is stopping
	err = c.processor.Process(context.WithoutCancel(ctx), &event.IncidentEvent)
	if err == nil {
		return nil
	}

	logger := c.logger.With(slog.Int64(constants.AttrIncidentID, event.IncidentID), slog.Any("error", err))
	if !handler.IsRetryableError(err) || event.Attempts+1 >= maxAttempts {
		logger.Error("[Worker] Dropping incident event", slog.Int("attempts", event.Attempts+1))

		return nil
	}

	event.Attempts++
	logger.Warn("[Worker] Requeueing incident event", slog.Int("attempts", event.Attempts))
	sleep(ctx, c.retryBackoff)

	return c.requeue(context.WithoutCancel(ctx), &event)
}

func (c *queueConsumer) requeue(ctx context.Context, event *queuedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.client.LPush(ctx, c.queueKey, payload).Err())
}

func (c *queueConsumer) stop(ctx context.Context) error {
	c.quitOnce.Do(func() { close(c.quit) })

	select {
	case <-c.done:
	case <-ctx.Done():
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
