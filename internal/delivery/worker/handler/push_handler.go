// Package handler contains the Pub/Sub push handler of the notifier worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"autohub/config"
	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/constants"
	"autohub/internal/domain/service"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body of a push delivery.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

var errPoisonMessage = errors.New("undeliverable push message")

type tokenVerifier func(req *http.Request) error

// PushHandler turns push deliveries into NotificationUsecase.Deliver calls.
//
// Pub/Sub redelivers anything not answered with 2xx, so the status codes are:
// 200 delivered, 204 dropped (payload can never succeed), 503 retry later,
// 401 not from Pub/Sub.
type PushHandler struct {
	verify         tokenVerifier
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// NewPushHandler only checks push tokens for the google provider outside of
// local development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}

	cfg := params.Config.PubSub
	if cfg != nil && cfg.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop {
		auth := &pushAuth{
			audience:       cfg.PushAudience,
			serviceAccount: cfg.PushServiceAccount,
			validate:       idtoken.Validate,
		}
		h.verify = auth.verify
	}

	return h
}

func (h *PushHandler) HandlePush(c echo.Context) error {
	req := c.Request()

	if h.verify != nil {
		if err := h.verify(req); err != nil {
			h.logger.WarnContext(req.Context(), "Rejected unauthenticated push", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		return h.drop(c, errors.Wrap(errPoisonMessage, "envelope is not json"))
	}
	event, err := decodeEvent(&msg)
	if err != nil {
		return h.drop(c, err)
	}

	requestID := h.extractRequestID(req.Context(), &msg, event)
	logger := h.logger.With(slog.String("request_id", requestID), slog.String("event_id", event.EventID))
	ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(req.Context(), requestID), logger)

	if err := h.notificationUC.Deliver(ctx, event); err != nil {
		logger.Error("Notification delivery failed, asking for redelivery",
			slog.String("kind", string(event.Kind)),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	logger.Info("Notification delivered",
		slog.String("kind", string(event.Kind)),
		slog.String("recipient_id", event.RecipientID),
	)

	return c.NoContent(http.StatusOK)
}

// drop acknowledges a message that would fail on every redelivery.
func (h *PushHandler) drop(c echo.Context, err error) error {
	h.logger.ErrorContext(c.Request().Context(), "Dropping push message", slog.Any("error", err))

	return c.NoContent(http.StatusNoContent)
}

func decodeEvent(msg *PubSubMessage) (*service.NotificationEvent, error) {
	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(errPoisonMessage, "data is not base64")
	}

	var event service.NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(errPoisonMessage, "data is not a notification event")
	}
	if event.EventID == "" && msg.Message.MessageID != "" {
		event.EventID = msg.Message.MessageID
	}

	return &event, nil
}

// extractRequestID prefers the message attribute, then the event, then the
// X-Request-Id of the push request itself.
func (h *PushHandler) extractRequestID(ctx context.Context, msg *PubSubMessage, event *service.NotificationEvent) string {
	if id := msg.Message.Attributes["request_id"]; id != "" {
		return id
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		return id
	}

	return uuid.NewString()
}

// pushAuth validates the Google-signed OIDC token of a push subscription.
type pushAuth struct {
	audience       string
	serviceAccount string
	validate       func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func (a *pushAuth) verify(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	audience := a.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil && req.Header.Get(echo.HeaderXForwardedProto) != "https" {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := a.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "invalid push token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push identity email not verified")
	}
	if a.serviceAccount != "" && payload.Claims["email"] != a.serviceAccount {
		return errors.Errorf("push sent by %v", payload.Claims["email"])
	}

	return nil
}
