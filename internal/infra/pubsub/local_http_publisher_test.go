package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autohub/config"
	"autohub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.NotificationEvent{
		EventID:     "evt-1",
		RequestID:   "req-1",
		Kind:        service.EventOrderPlaced,
		RecipientID: "owner-1",
		Title:       "New order",
		Body:        "2 x Brake pad",
	}

	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "order_placed", received.Message.Attributes["kind"])
	assert.Equal(t, "owner-1", received.Message.Attributes["recipient_id"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.NotificationEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_Redelivery(t *testing.T) {
	tests := []struct {
		name      string
		statuses  []int
		wantCalls int
		wantErr   string
	}{
		{name: "recovers after a 503", statuses: []int{503, 200}, wantCalls: 2},
		{name: "gives up after max attempts", statuses: []int{503, 503, 503}, wantCalls: localMaxAttempts, wantErr: "503"},
		{name: "client error not retried", statuses: []int{400}, wantCalls: 1, wantErr: "400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statuses[calls])
				calls++
			}))
			defer server.Close()

			publisher := NewLocalHTTPPublisher(server.URL, discardLogger()).(*localHTTPPublisher)
			publisher.backoff = time.Millisecond

			err := publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{EventID: "evt-2"})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	newParams := func(cfg *config.Config) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: cfg,
			Logger: discardLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(&config.Config{}))
	require.NoError(t, err)
	assert.IsType(t, &discardPublisher{}, publisher)
	assert.NoError(t, publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{}))

	publisher, err = NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}))
	assert.ErrorContains(t, err, "missing localEndpoint")

	_, err = NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}))
	assert.ErrorContains(t, err, "missing projectId, topicId")

	_, err = NewEventPublisher(newParams(&config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}))
	assert.ErrorContains(t, err, "unknown pubsub provider")
}
