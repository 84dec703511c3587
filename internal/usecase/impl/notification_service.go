package impl

import (
	"context"
	"log/slog"

	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/repository"
	"autohub/internal/domain/service"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type notificationService struct {
	profileRepo     repository.ProfileRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	profileRepo repository.ProfileRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		profileRepo:     profileRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Deliver pushes event to the recipient's device. A missing recipient, an
// unregistered device or an invalid token are permanent and only logged.
func (s *notificationService) Deliver(ctx context.Context, event *service.NotificationEvent) error {
	logger := s.log(ctx).With(
		slog.String("event_id", event.EventID),
		slog.String("kind", string(event.Kind)),
		slog.String("recipient_id", event.RecipientID),
	)

	if event.Kind == service.EventPasswordReset {
		// No mail provider is wired; the outbox is the log.
		logger.Info("Password reset mail queued", slog.String("email", event.Email))

		return nil
	}

	recipientID, err := uuid.Parse(event.RecipientID)
	if err != nil {
		logger.Warn("Dropping event with malformed recipient", slog.Any("error", err))

		return nil
	}

	profile, err := s.profileRepo.FindByUserID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			logger.Info("Dropping event for recipient without profile")

			return nil
		}

		return errors.Wrap(err, "failed to load recipient profile")
	}

	if profile.PushToken == "" {
		logger.Debug("Recipient has no registered device")

		return nil
	}

	data := make(map[string]string, len(event.Data)+2)
	for k, v := range event.Data {
		data[k] = v
	}
	data["event_id"] = event.EventID
	data["kind"] = string(event.Kind)

	err = s.notificationSvc.SendSingleNotification(ctx, profile.PushToken, event.Title, event.Body, data)
	if err == nil {
		logger.Debug("Notification delivered")

		return nil
	}

	if errors.Is(err, service.ErrInvalidPushToken) {
		logger.Info("Clearing invalid push token")
		if clearErr := s.profileRepo.ClearPushToken(ctx, profile.PushToken); clearErr != nil {
			logger.Warn("Failed to clear push token", slog.Any("error", clearErr))
		}

		return nil
	}

	return errors.Wrap(err, "failed to send notification")
}
