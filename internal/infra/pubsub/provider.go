// Package pubsub publishes marketplace events for the notifier worker.
package pubsub

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"autohub/config"
	"autohub/internal/domain/constants"
	"autohub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Module provides the service.EventPublisher selected by pubsub.provider.
var Module = fx.Module("pubsub", fx.Provide(NewEventPublisher))

type factory func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

var factories = map[string]factory{
	constants.PubSubProviderLocal: func(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		if err := missingFields(map[string]string{"localEndpoint": cfg.LocalEndpoint}); err != nil {
			return nil, err
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	},
	constants.PubSubProviderGoogle: func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		if err := missingFields(map[string]string{"projectId": cfg.ProjectID, "topicId": cfg.TopicID}); err != nil {
			return nil, err
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	},
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher returns a publisher that drops events when no provider is
// configured, so order and appointment workflows never depend on Pub/Sub.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Pub/Sub not configured, events will be dropped")

		return &discardPublisher{logger: params.Logger}, nil
	}

	build, ok := factories[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	publisher, err := build(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, errors.Wrapf(err, "pubsub provider %s", cfg.Provider)
	}

	params.Lc.Append(fx.StopHook(publisher.Close))
	params.Logger.Info("Event publisher ready", slog.String("provider", cfg.Provider))

	return publisher, nil
}

func missingFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)

	return errors.Errorf("missing %s", strings.Join(missing, ", "))
}

// discardPublisher drops events.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event",
		slog.String("event_id", event.EventID),
		slog.String("kind", string(event.Kind)),
	)

	return nil
}

func (p *discardPublisher) Close() error { return nil }
