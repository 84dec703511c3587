package impl

import (
	"context"
	"testing"
	"time"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	mockRepo "autohub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Summary(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	partRepo := mockRepo.NewMockSparePartRepository(t)
	srv := NewDashboardService(orderRepo, appointmentRepo, partRepo, newTestConfig(), newDiscardLogger()).(*dashboardService)
	srv.now = func() time.Time { return time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC) }

	shopID := uuid.New()
	today := "2025-03-01"
	item := func(price int64) []entity.OrderItem {
		return []entity.OrderItem{{Part: entity.PartSnapshot{Price: price}, Quantity: 1}}
	}

	orders := []*entity.Order{
		{ShopID: shopID, OrderDate: today, Status: entity.OrderPlaced, Items: item(100)},
		{ShopID: shopID, OrderDate: today, Status: entity.OrderCanceled, Items: item(900)},
		{ShopID: shopID, OrderDate: "2025-02-27", Status: entity.OrderPlaced, Items: item(50)},
		{ShopID: shopID, OrderDate: today, Status: entity.OrderReceived, Items: item(40)},
	}
	appointments := []*entity.Appointment{
		{ID: uuid.New(), Date: today, Status: entity.AppointmentCompleted, Bill: "300.5"},
		{ID: uuid.New(), Date: today, Status: entity.AppointmentPending, Bill: "n/a"},
		{ID: uuid.New(), Date: today, Status: entity.AppointmentCancelled, Bill: "999"},
		{ID: uuid.New(), Date: "2025-02-28", Status: entity.AppointmentCompleted, Bill: "10"},
	}
	parts := []*entity.SparePart{
		{ManageInventory: true, Quantity: 0, LowStockLimit: 5},
		{ManageInventory: true, Quantity: 2, LowStockLimit: 5},
		{ManageInventory: true, Quantity: 20, LowStockLimit: 5},
		{ManageInventory: false, Quantity: 0, LowStockLimit: 5},
	}

	orderRepo.EXPECT().ListByShop(mock.Anything, shopID, 0).Return(orders, nil)
	appointmentRepo.EXPECT().ListByShop(mock.Anything, shopID, 0).Return(appointments, nil)
	partRepo.EXPECT().ListByShop(mock.Anything, shopID).Return(parts, nil)

	summary, err := srv.Summary(context.Background(), ownerSession(shopID), "")

	require.NoError(t, err)
	assert.Equal(t, today, summary.Date)
	assert.Equal(t, 2, summary.PendingOrders)
	assert.Equal(t, 2, summary.TodayOrders)
	assert.InDelta(t, 140, summary.OrderSales, 0.001)
	assert.Equal(t, 3, summary.TodayAppointments)
	assert.InDelta(t, 300.5, summary.AppointmentSales, 0.001)
	assert.InDelta(t, 440.5, summary.TotalSales, 0.001)
	assert.Equal(t, 1, summary.UnparsableBills)
	assert.Equal(t, 1, summary.LowStockParts)
	assert.Equal(t, 1, summary.OutOfStockParts)
}

func TestDashboardService_Summary_Errors(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		svc := NewDashboardService(mockRepo.NewMockOrderRepository(t), mockRepo.NewMockAppointmentRepository(t),
			mockRepo.NewMockSparePartRepository(t), newTestConfig(), newDiscardLogger())

		_, err := svc.Summary(context.Background(), ownerSession(uuid.New()), "March 1st")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("customer", func(t *testing.T) {
		svc := NewDashboardService(mockRepo.NewMockOrderRepository(t), mockRepo.NewMockAppointmentRepository(t),
			mockRepo.NewMockSparePartRepository(t), newTestConfig(), newDiscardLogger())

		_, err := svc.Summary(context.Background(), customerSession(), "")

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("store failure", func(t *testing.T) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		svc := NewDashboardService(orderRepo, mockRepo.NewMockAppointmentRepository(t),
			mockRepo.NewMockSparePartRepository(t), newTestConfig(), newDiscardLogger())
		shopID := uuid.New()
		orderRepo.EXPECT().ListByShop(mock.Anything, shopID, 0).Return(nil, errors.New("timeout"))

		_, err := svc.Summary(context.Background(), ownerSession(shopID), "2025-03-01")

		assert.Error(t, err)
	})
}
