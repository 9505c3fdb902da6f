package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"safezone/internal/domain/constants"
	"safezone/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// Alerts are latency sensitive and rare, so messages are not held back for
// batching.
const (
	publishDelayThreshold = 10 * time.Millisecond
	publishTimeout        = 30 * time.Second
)

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicID   string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and verifies topicID exists.
// PUBSUB_EMULATOR_HOST is honored by the client library.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = publishDelayThreshold
	publisher.PublishSettings.Timeout = publishTimeout

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topicID:   topicID,
		logger:    logger,
	}, nil
}

// PublishIncidentEvent blocks until the broker acknowledges the message.
func (p *googlePubSubPublisher) PublishIncidentEvent(ctx context.Context, event *service.IncidentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish incident %d to %s", event.IncidentID, p.topicID)
	}

	p.logger.Info("[GooglePubSub] Event published",
		slog.Int64(constants.AttrIncidentID, event.IncidentID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
