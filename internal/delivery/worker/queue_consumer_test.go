package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"safezone/config"
	"safezone/internal/delivery/worker/handler"
	"safezone/internal/domain/constants"
	"safezone/internal/domain/entity"
	"safezone/internal/domain/repository"
	"safezone/internal/domain/service"
	"safezone/internal/errors"
	"safezone/internal/infra/pubsub"
	mockRepo "safezone/internal/mocks/repository"
	mockUC "safezone/internal/mocks/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

const testQueueKey = "safezone:test:incidents"

type consumerFixtures struct {
	consumer     *queueConsumer
	client       *redis.Client
	incidentRepo *mockRepo.MockIncidentRepository
	notifier     *mockUC.MockIncidentNotifier
}

func createTestConsumer(t *testing.T) consumerFixtures {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	incidentRepo := mockRepo.NewMockIncidentRepository(t)
	notifier := mockUC.NewMockIncidentNotifier(t)

	consumer := NewQueueConsumer(QueueConsumerParams{
		Lc: fxtest.NewLifecycle(t),
		Cfg: &config.Config{
			PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderRedis},
			Redis:  &config.RedisConfig{QueueKey: testQueueKey},
		},
		Logger: logger,
		Redis:  client,
		Processor: handler.NewIncidentProcessor(handler.IncidentProcessorParams{
			Config:       &config.Config{},
			Logger:       logger,
			IncidentRepo: incidentRepo,
			Notifier:     notifier,
		}),
	}).(*queueConsumer)
	consumer.popTimeout = time.Second
	consumer.retryBackoff = 0

	return consumerFixtures{consumer: consumer, client: client, incidentRepo: incidentRepo, notifier: notifier}
}

func (fx consumerFixtures) push(t *testing.T, event queuedEvent) {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	require.NoError(t, fx.client.LPush(context.Background(), testQueueKey, payload).Err())
}

func (fx consumerFixtures) queued(t *testing.T) []queuedEvent {
	t.Helper()
	raw, err := fx.client.LRange(context.Background(), testQueueKey, 0, -1).Result()
	require.NoError(t, err)

	events := make([]queuedEvent, 0, len(raw))
	for _, r := range raw {
		var e queuedEvent
		require.NoError(t, json.Unmarshal([]byte(r), &e))
		events = append(events, e)
	}

	return events
}

func TestQueueConsumer_ConsumesPublishedEvent(t *testing.T) {
	fx := createTestConsumer(t)
	publisher := pubsub.NewRedisQueuePublisher(fx.client, testQueueKey, fx.consumer.logger)
	require.NoError(t, publisher.PublishIncidentEvent(context.Background(), &service.IncidentEvent{IncidentID: 11, RequestID: "req-11"}))

	incident := &entity.Incident{ID: 11}
	fx.incidentRepo.EXPECT().FindIncidentByID(mock.Anything, int64(11)).Return(incident, nil)
	fx.notifier.EXPECT().OnIncidentCreated(mock.Anything, incident).Once()

	require.NoError(t, fx.consumer.consumeOne(context.Background()))
	assert.Empty(t, fx.queued(t))
}

func TestQueueConsumer_EmptyQueue(t *testing.T) {
	fx := createTestConsumer(t)

	assert.NoError(t, fx.consumer.consumeOne(context.Background()))
}

func TestQueueConsumer_RequeuesRetryableFailure(t *testing.T) {
	fx := createTestConsumer(t)
	fx.push(t, queuedEvent{IncidentEvent: service.IncidentEvent{IncidentID: 5}})
	fx.incidentRepo.EXPECT().FindIncidentByID(mock.Anything, int64(5)).Return(nil, errors.New("connection reset")).Once()

	require.NoError(t, fx.consumer.consumeOne(context.Background()))

	events := fx.queued(t)
	require.Len(t, events, 1)
	assert.Equal(t, int64(5), events[0].IncidentID)
	assert.Equal(t, 1, events[0].Attempts)
}

func TestQueueConsumer_DropsAfterMaxAttempts(t *testing.T) {
	fx := createTestConsumer(t)
	fx.push(t, queuedEvent{IncidentEvent: service.IncidentEvent{IncidentID: 5}, Attempts: maxAttempts - 1})
	fx.incidentRepo.EXPECT().FindIncidentByID(mock.Anything, int64(5)).Return(nil, errors.New("connection reset")).Once()

	require.NoError(t, fx.consumer.consumeOne(context.Background()))
	assert.Empty(t, fx.queued(t))
}

func TestQueueConsumer_DropsDeletedIncidentAndMalformedEntries(t *testing.T) {
	fx := createTestConsumer(t)
	require.NoError(t, fx.client.LPush(context.Background(), testQueueKey, "{not json").Err())
	fx.push(t, queuedEvent{IncidentEvent: service.IncidentEvent{IncidentID: 8}})
	fx.incidentRepo.EXPECT().FindIncidentByID(mock.Anything, int64(8)).Return(nil, repository.ErrIncidentNotFound).Once()

	// BRPOP takes the oldest entry first.
	require.NoError(t, fx.consumer.consumeOne(context.Background()))
	require.NoError(t, fx.consumer.consumeOne(context.Background()))
	assert.Empty(t, fx.queued(t))
}

func TestQueueConsumer_ServeUntilStopped(t *testing.T) {
	fx := createTestConsumer(t)
	processed := make(chan struct{})
	fx.incidentRepo.EXPECT().FindIncidentByID(mock.Anything, int64(21)).Return(&entity.Incident{ID: 21}, nil)
	fx.notifier.EXPECT().OnIncidentCreated(mock.Anything, mock.Anything).
		Run(func(context.Context, *entity.Incident) { close(processed) }).Once()

	served := make(chan error, 1)
	go func() { served <- fx.consumer.Serve(context.Background()) }()

	fx.push(t, queuedEvent{IncidentEvent: service.IncidentEvent{IncidentID: 21}})

	select {
	case <-processed:
	case <-time.After(5 * time.Second):
		t.Fatal("event was not processed")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, fx.consumer.stop(stopCtx))

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after stop")
	}
}

func TestQueueConsumer_DisabledWithoutRedisProvider(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := NewQueueConsumer(QueueConsumerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		Logger: logger,
	})

	assert.NoError(t, d.Serve(context.Background()))
}
