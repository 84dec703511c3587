package notification

import (
	"context"
	"fmt"
	"log/slog"

	"autohub/config"
	"autohub/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the Firebase limit per multicast request.
const maxMulticastTokens = 500

// messagingClient is the subset of the FCM client used here.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client messagingClient
}

// Params holds the dependencies of the push notification service.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New returns the Firebase service when credentials are configured and a
// logging no-op otherwise, so local runs work without a Firebase project.
func New(params Params) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("firebase credentials not configured, push notifications are logged only")

		return &logOnlyService{logger: params.Logger}, nil
	}

	return NewFirebaseService(context.Background(), cfg.ProjectID, cfg.CredentialsPath)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{client: client}, nil
}

// SendSingleNotification sends a push notification to a single device token.
// Unregistered tokens are reported as service.ErrInvalidPushToken.
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		if isInvalidTokenError(err) {
			return fmt.Errorf("%w: %w", service.ErrInvalidPushToken, err)
		}

		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// SendBatchNotification sends push notifications to multiple device tokens,
// splitting them into requests of at most 500 tokens.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	invalidTokens = make([]string, 0)

	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := min(start+maxMulticastTokens, len(tokens))
		chunk := tokens[start:end]

		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
		if err != nil {
			return successCount, failureCount, invalidTokens, fmt.Errorf("failed to send multicast notification: %w", err)
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error != nil && isInvalidTokenError(sendResponse.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}

func isInvalidTokenError(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

// logOnlyService records notifications in the log instead of sending them.
type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "push notification (not sent)",
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}

func (s *logOnlyService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	for _, token := range tokens {
		_ = s.SendSingleNotification(ctx, token, title, body, data)
	}

	return len(tokens), 0, nil, nil
}
