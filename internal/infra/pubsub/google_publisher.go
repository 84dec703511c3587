package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"autohub/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends events to a Cloud Pub/Sub topic. Events are ordered
// per recipient so a customer never sees "delivered" before "confirmed".
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &googlePublisher{client: client, publisher: publisher, logger: logger}, nil
}

func (p *googlePublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode event")
	}

	orderingKey := event.RecipientID
	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  event.Attributes(),
		OrderingKey: orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// a failed ordered publish pauses the key until resumed
		if orderingKey != "" {
			p.publisher.ResumePublish(orderingKey)
		}

		return errors.Wrapf(err, "failed to publish %s event", event.Kind)
	}

	p.logger.DebugContext(ctx, "Event published to Pub/Sub",
		slog.String("event_id", event.EventID),
		slog.String("kind", string(event.Kind)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
