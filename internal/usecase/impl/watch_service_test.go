package impl

import (
	"context"
	"testing"
	"time"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/service"
	mockRepo "autohub/internal/mocks/repository"
	mockSvc "autohub/internal/mocks/service"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func receiveSnapshot(t *testing.T, snapshots <-chan usecase.Snapshot) usecase.Snapshot {
	t.Helper()

	select {
	case snapshot, ok := <-snapshots:
		require.True(t, ok, "snapshot channel closed")

		return snapshot
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}

	return usecase.Snapshot{}
}

func TestWatchService_Watch_ResendsOnChange(t *testing.T) {
	feed := mockSvc.NewMockChangeFeed(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	svc := NewWatchService(feed, orderRepo, mockRepo.NewMockAppointmentRepository(t), newTestConfig(), newDiscardLogger())

	shopID := uuid.New()
	changes := make(chan service.Change, 4)

	feed.EXPECT().Subscribe(mock.Anything, service.ShopOrdersTopic(shopID)).Return((<-chan service.Change)(changes), nil)
	orderRepo.EXPECT().ListByShop(mock.Anything, shopID, 50).Return([]*entity.Order{}, nil).Once()
	orderRepo.EXPECT().ListByShop(mock.Anything, shopID, 50).Return([]*entity.Order{{ID: uuid.New()}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots, err := svc.Watch(ctx, ownerSession(shopID), usecase.WatchShopOrders)
	require.NoError(t, err)

	first := receiveSnapshot(t, snapshots)
	assert.Equal(t, usecase.WatchShopOrders, first.Stream)
	assert.Empty(t, first.Orders)

	changes <- service.Change{Topic: service.ShopOrdersTopic(shopID), Kind: changeCreated}
	changes <- service.Change{Topic: service.ShopOrdersTopic(shopID), Kind: changeStatus}

	second := receiveSnapshot(t, snapshots)
	assert.Len(t, second.Orders, 1)

	cancel()
	close(changes)

	for range snapshots {
	}
}

func TestWatchService_Watch_Rejects(t *testing.T) {
	t.Run("shop stream without a shop", func(t *testing.T) {
		svc := NewWatchService(mockSvc.NewMockChangeFeed(t), mockRepo.NewMockOrderRepository(t),
			mockRepo.NewMockAppointmentRepository(t), newTestConfig(), newDiscardLogger())

		_, err := svc.Watch(context.Background(), customerSession(), usecase.WatchShopAppointments)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown stream", func(t *testing.T) {
		svc := NewWatchService(mockSvc.NewMockChangeFeed(t), mockRepo.NewMockOrderRepository(t),
			mockRepo.NewMockAppointmentRepository(t), newTestConfig(), newDiscardLogger())

		_, err := svc.Watch(context.Background(), customerSession(), usecase.WatchStream("reviews"))

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestWatchService_Watch_ClosesWhenFeedEnds(t *testing.T) {
	feed := mockSvc.NewMockChangeFeed(t)
	appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	svc := NewWatchService(feed, mockRepo.NewMockOrderRepository(t), appointmentRepo, newTestConfig(), newDiscardLogger())
	session := customerSession()
	changes := make(chan service.Change)

	feed.EXPECT().Subscribe(mock.Anything, service.CustomerAppointmentsTopic(session.PrincipalID)).Return((<-chan service.Change)(changes), nil)
	appointmentRepo.EXPECT().ListByCustomer(mock.Anything, session.PrincipalID, 50).Return([]*entity.Appointment{}, nil)

	snapshots, err := svc.Watch(context.Background(), session, usecase.WatchCustomerAppointments)
	require.NoError(t, err)

	receiveSnapshot(t, snapshots)
	close(changes)

	select {
	case _, ok := <-snapshots:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
