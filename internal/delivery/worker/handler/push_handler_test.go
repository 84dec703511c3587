package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autohub/internal/domain/service"
	mockUc "autohub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUc.MockNotificationUsecase) {
	notificationUC := mockUc.NewMockNotificationUsecase(t)

	return &PushHandler{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationUC: notificationUC,
	}, notificationUC
}

func pushBody(t *testing.T, event *service.NotificationEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	msg.Subscription = "projects/p/subscriptions/notifier"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestPushHandler_Delivered(t *testing.T) {
	h, notificationUC := newTestPushHandler(t)

	event := &service.NotificationEvent{
		EventID:     "evt-1",
		Kind:        service.EventOrderPlaced,
		RecipientID: "11111111-1111-1111-1111-111111111111",
		Title:       "New order",
	}

	notificationUC.EXPECT().Deliver(mock.Anything, mock.MatchedBy(func(got *service.NotificationEvent) bool {
		return got.EventID == "evt-1" && got.Kind == service.EventOrderPlaced
	})).Return(nil)

	rec := doPush(t, h, pushBody(t, event, map[string]string{"request_id": "req-7"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableFailure(t *testing.T) {
	h, notificationUC := newTestPushHandler(t)

	notificationUC.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.New("fcm unavailable"))

	rec := doPush(t, h, pushBody(t, &service.NotificationEvent{EventID: "evt-2"}, nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_DropsPoisonMessages(t *testing.T) {
	h, _ := newTestPushHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "bad base64", body: `{"message":{"data":"%%%"}}`},
		{name: "bad event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doPush(t, h, tt.body)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestPushHandler_RejectsUnverifiedPush(t *testing.T) {
	h, _ := newTestPushHandler(t)
	h.verify = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := doPush(t, h, pushBody(t, &service.NotificationEvent{EventID: "evt-3"}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t)
	ctx := httptest.NewRequest(http.MethodPost, "/push", nil).Context()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(ctx, &msg, &service.NotificationEvent{RequestID: "from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", h.extractRequestID(ctx, &msg, &service.NotificationEvent{RequestID: "from-event"}))

	assert.NotEmpty(t, h.extractRequestID(ctx, &msg, &service.NotificationEvent{}))
}

func TestPushAuth_Verify(t *testing.T) {
	validPayload := func(email string) *idtoken.Payload {
		return &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{"email": email, "email_verified": true},
		}
	}

	tests := []struct {
		name         string
		header       string
		audience     string
		account      string
		payload      *idtoken.Payload
		validateErr  error
		wantAudience string
		wantErr      string
	}{
		{name: "missing token", header: "", wantErr: "missing bearer token"},
		{
			name:         "derived audience",
			header:       "Bearer tok",
			payload:      validPayload("push@proj.iam.gserviceaccount.com"),
			wantAudience: "http://notifier.internal/push",
		},
		{
			name:         "configured audience and account",
			header:       "Bearer tok",
			audience:     "https://notifier.example.com/push",
			account:      "push@proj.iam.gserviceaccount.com",
			payload:      validPayload("push@proj.iam.gserviceaccount.com"),
			wantAudience: "https://notifier.example.com/push",
		},
		{
			name:    "foreign service account",
			header:  "Bearer tok",
			account: "push@proj.iam.gserviceaccount.com",
			payload: validPayload("intruder@other.iam.gserviceaccount.com"),
			wantErr: "push sent by",
		},
		{
			name:    "wrong issuer",
			header:  "Bearer tok",
			payload: &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantErr: "unexpected issuer",
		},
		{name: "signature rejected", header: "Bearer tok", validateErr: errors.New("bad signature"), wantErr: "invalid push token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAudience string
			auth := &pushAuth{
				audience:       tt.audience,
				serviceAccount: tt.account,
				validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
					assert.Equal(t, "tok", token)
					gotAudience = audience

					return tt.payload, tt.validateErr
				},
			}

			req := httptest.NewRequest(http.MethodPost, "http://notifier.internal/push", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}

			err := auth.verify(req)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAudience, gotAudience)
		})
	}
}
