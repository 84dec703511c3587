package impl

import (
	"context"
	"testing"

	"autohub/internal/domain/entity"
	"autohub/internal/domain/repository"
	"autohub/internal/domain/service"
	mockRepo "autohub/internal/mocks/repository"
	mockSvc "autohub/internal/mocks/service"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockProfileRepository, *mockSvc.MockNotificationService) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	return NewNotificationService(profileRepo, notificationSvc, newDiscardLogger()), profileRepo, notificationSvc
}

func newOrderEvent(recipientID uuid.UUID) *service.NotificationEvent {
	return &service.NotificationEvent{
		EventID:     "evt-1",
		Kind:        service.EventOrderStatusChanged,
		RecipientID: recipientID.String(),
		Title:       "Order update",
		Body:        "Order is now Order Confirmed",
		Data:        map[string]string{"order_id": "o-1"},
	}
}

func TestNotificationService_Deliver_Success(t *testing.T) {
	service, profileRepo, notificationSvc := createTestNotificationService(t)
	recipientID := uuid.New()
	event := newOrderEvent(recipientID)

	profileRepo.EXPECT().FindByUserID(mock.Anything, recipientID).
		Return(&entity.UserProfile{UserID: recipientID, PushToken: "token-1"}, nil)
	notificationSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-1", event.Title, event.Body, mock.MatchedBy(func(data map[string]string) bool {
			return data["order_id"] == "o-1" && data["event_id"] == "evt-1" && data["kind"] == "order_status_changed"
		})).
		Return(nil)

	require.NoError(t, service.Deliver(context.Background(), event))
}

func TestNotificationService_Deliver_InvalidTokenIsCleared(t *testing.T) {
	svc, profileRepo, notificationSvc := createTestNotificationService(t)
	recipientID := uuid.New()

	profileRepo.EXPECT().FindByUserID(mock.Anything, recipientID).
		Return(&entity.UserProfile{UserID: recipientID, PushToken: "stale"}, nil)
	notificationSvc.EXPECT().
		SendSingleNotification(mock.Anything, "stale", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.Wrap(service.ErrInvalidPushToken, "fcm"))
	profileRepo.EXPECT().ClearPushToken(mock.Anything, "stale").Return(nil)

	require.NoError(t, svc.Deliver(context.Background(), newOrderEvent(recipientID)))
}

func TestNotificationService_Deliver_RetryableError(t *testing.T) {
	svc, profileRepo, notificationSvc := createTestNotificationService(t)
	recipientID := uuid.New()

	profileRepo.EXPECT().FindByUserID(mock.Anything, recipientID).
		Return(&entity.UserProfile{UserID: recipientID, PushToken: "token-1"}, nil)
	notificationSvc.EXPECT().
		SendSingleNotification(mock.Anything, "token-1", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("unavailable"))

	assert.Error(t, svc.Deliver(context.Background(), newOrderEvent(recipientID)))
}

func TestNotificationService_Deliver_PermanentDrops(t *testing.T) {
	t.Run("no profile", func(t *testing.T) {
		svc, profileRepo, _ := createTestNotificationService(t)
		recipientID := uuid.New()
		profileRepo.EXPECT().FindByUserID(mock.Anything, recipientID).Return(nil, repository.ErrProfileNotFound)

		assert.NoError(t, svc.Deliver(context.Background(), newOrderEvent(recipientID)))
	})

	t.Run("no device", func(t *testing.T) {
		svc, profileRepo, _ := createTestNotificationService(t)
		recipientID := uuid.New()
		profileRepo.EXPECT().FindByUserID(mock.Anything, recipientID).Return(&entity.UserProfile{UserID: recipientID}, nil)

		assert.NoError(t, svc.Deliver(context.Background(), newOrderEvent(recipientID)))
	})

	t.Run("malformed recipient", func(t *testing.T) {
		svc, _, _ := createTestNotificationService(t)
		event := newOrderEvent(uuid.New())
		event.RecipientID = "not-a-uuid"

		assert.NoError(t, svc.Deliver(context.Background(), event))
	})

	t.Run("password reset goes to the mail outbox", func(t *testing.T) {
		svc, _, _ := createTestNotificationService(t)
		event := &service.NotificationEvent{EventID: "evt-2", Kind: service.EventPasswordReset, Email: "a@b.c"}

		assert.NoError(t, svc.Deliver(context.Background(), event))
	})

	t.Run("profile store failure is retryable", func(t *testing.T) {
		svc, profileRepo, _ := createTestNotificationService(t)
		recipientID := uuid.New()
		profileRepo.EXPECT().FindByUserID(mock.Anything, recipientID).Return(nil, errors.New("timeout"))

		assert.Error(t, svc.Deliver(context.Background(), newOrderEvent(recipientID)))
	})
}
