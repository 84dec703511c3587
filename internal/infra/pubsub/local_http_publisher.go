package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription  = "projects/local/subscriptions/autohub-notifier"
	localMaxAttempts   = 3
	localRetryBackoff  = 200 * time.Millisecond
	localClientTimeout = 30 * time.Second
)

// PubSubPushMessage is the body Cloud Pub/Sub POSTs to push subscribers.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher pushes events straight to the notifier in development.
// Like a push subscription it redelivers when the notifier answers 5xx.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	backoff    time.Duration
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localClientTimeout},
		backoff:    localRetryBackoff,
		logger:     logger,
	}
}

func newPushMessage(event *service.NotificationEvent, publishedAt time.Time) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event")
	}

	var msg PubSubPushMessage
	msg.Subscription = localSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = event.Attributes()
	msg.Message.MessageID = event.EventID
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	body, err := json.Marshal(msg)

	return body, errors.WithStack(err)
}

func (p *localHTTPPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	body, err := newPushMessage(event, time.Now())
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= localMaxAttempts; attempt++ {
		retry, err := p.push(ctx, body, event.RequestID)
		if err == nil {
			p.logger.DebugContext(ctx, "Event pushed to local notifier",
				slog.String("event_id", event.EventID),
				slog.String("kind", string(event.Kind)),
				slog.Int("attempt", attempt),
			)

			return nil
		}
		lastErr = err
		if !retry || attempt == localMaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.backoff * time.Duration(attempt)):
		}
	}

	return lastErr
}

// push reports whether a failure is worth redelivering.
func (p *localHTTPPublisher) push(ctx context.Context, body []byte, requestID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return true, errors.Wrap(err, "failed to reach notifier")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return false, nil
	case resp.StatusCode >= 500:
		return true, errors.Errorf("notifier returned status %d", resp.StatusCode)
	default:
		return false, errors.Errorf("notifier rejected event with status %d", resp.StatusCode)
	}
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
