package changefeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"autohub/internal/domain/service"
	"autohub/internal/errors"

	"github.com/redis/go-redis/v9"
)

// redisFeed publishes changes on Redis channels so every API instance can
// notify its own live-query subscribers. One Redis subscription is held per
// topic with at least one local subscriber.
type redisFeed struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
	hub    *hub
	ctx    context.Context
	cancel context.CancelFunc

	// mu guards subscriptions only; Redis calls happen outside it.
	mu            sync.Mutex
	subscriptions map[string]*topicSubscription
}

// topicSubscription is the Redis side of one topic. ready is closed once the
// subscription is confirmed or has failed.
type topicSubscription struct {
	ready  chan struct{}
	pubsub *redis.PubSub
	err    error
}

// NewRedisFeed creates a change feed backed by Redis pub/sub.
func NewRedisFeed(client *redis.Client, prefix string, logger *slog.Logger) service.ChangeFeed {
	ctx, cancel := context.WithCancel(context.Background())

	return &redisFeed{
		client:        client,
		prefix:        prefix,
		logger:        logger,
		hub:           newHub(),
		subscriptions: make(map[string]*topicSubscription),
		ctx:           ctx,
		cancel:        cancel,
	}
}

func (f *redisFeed) channel(topic string) string {
	return f.prefix + topic
}

// Publish announces a change to every instance subscribed to the topic.
func (f *redisFeed) Publish(ctx context.Context, change service.Change) error {
	data, err := json.Marshal(change)
	if err != nil {
		return errors.Wrap(err, "failed to marshal change")
	}

	if err := f.client.Publish(ctx, f.channel(change.Topic), data).Err(); err != nil {
		return errors.Wrapf(err, "failed to publish change on %s", change.Topic)
	}

	return nil
}

// Subscribe registers a local subscriber and, for the first one, opens the
// Redis subscription. Later subscribers of the topic wait for that to finish.
// The returned channel is closed when ctx is done.
func (f *redisFeed) Subscribe(ctx context.Context, topic string) (<-chan service.Change, error) {
	f.mu.Lock()
	ch, first := f.hub.add(topic)
	sub := f.subscriptions[topic]
	opener := first || sub == nil
	if opener {
		sub = &topicSubscription{ready: make(chan struct{})}
		f.subscriptions[topic] = sub
	}
	f.mu.Unlock()

	if opener {
		sub.pubsub, sub.err = f.open(ctx, topic)
		close(sub.ready)
	}

	select {
	case <-sub.ready:
	case <-ctx.Done():
		f.unsubscribe(topic, ch)

		return nil, errors.WithStack(ctx.Err())
	}
	if sub.err != nil {
		f.unsubscribe(topic, ch)

		return nil, sub.err
	}

	f.logger.Debug("live query subscribed", slog.String("topic", topic), slog.Int("subscribers", f.hub.count(topic)))

	go func() {
		<-ctx.Done()
		f.unsubscribe(topic, ch)
	}()

	return ch, nil
}

// open subscribes to the topic channel and waits for the confirmation, so
// changes published right after Subscribe returns are delivered.
func (f *redisFeed) open(ctx context.Context, topic string) (*redis.PubSub, error) {
	ctx, stop := context.WithCancel(ctx)
	defer stop()
	defer context.AfterFunc(f.ctx, stop)()

	pubsub := f.client.Subscribe(f.ctx, f.channel(topic))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, errors.Wrapf(err, "failed to subscribe to %s", topic)
	}

	go f.receive(topic, pubsub)

	return pubsub, nil
}

func (f *redisFeed) receive(topic string, pubsub *redis.PubSub) {
	messages := pubsub.Channel()
	for {
		select {
		case <-f.ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			var change service.Change
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				f.logger.Warn("dropping malformed change", slog.String("topic", topic), slog.Any("error", err))

				continue
			}

			f.hub.broadcast(change)
		}
	}
}

func (f *redisFeed) unsubscribe(topic string, ch chan service.Change) {
	f.mu.Lock()
	if !f.hub.remove(topic, ch) {
		f.mu.Unlock()

		return
	}
	sub := f.subscriptions[topic]
	delete(f.subscriptions, topic)
	f.mu.Unlock()

	if sub == nil {
		return
	}
	<-sub.ready
	if sub.pubsub == nil {
		return
	}
	if err := sub.pubsub.Close(); err != nil {
		f.logger.Warn("failed to close subscription", slog.String("topic", topic), slog.Any("error", err))
	}
}

// Close ends every subscription and the Redis client.
func (f *redisFeed) Close() error {
	f.cancel()

	f.mu.Lock()
	subscriptions := f.subscriptions
	f.subscriptions = make(map[string]*topicSubscription)
	f.mu.Unlock()

	var errs []error
	for topic, sub := range subscriptions {
		<-sub.ready
		if sub.pubsub == nil {
			continue
		}
		if err := sub.pubsub.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "close %s", topic))
		}
	}

	f.hub.closeAll()

	if err := f.client.Close(); err != nil {
		errs = append(errs, errors.Wrap(err, "close redis client"))
	}

	return errors.Join(errs...)
}
