package impl

import (
	"context"
	"testing"
	"time"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
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

type orderServiceFixtures struct {
	service         *orderService
	txManager       *mockRepo.MockTransactionManager
	orderRepo       *mockRepo.MockOrderRepository
	shopRepo        *mockRepo.MockShopRepository
	appointmentRepo *mockRepo.MockAppointmentRepository
	feed            *mockSvc.MockChangeFeed
	publisher       *mockSvc.MockEventPublisher
	metrics         *mockSvc.MockMetrics
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fixtures := orderServiceFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		orderRepo:       mockRepo.NewMockOrderRepository(t),
		shopRepo:        mockRepo.NewMockShopRepository(t),
		appointmentRepo: mockRepo.NewMockAppointmentRepository(t),
		feed:            mockSvc.NewMockChangeFeed(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
		metrics:         mockSvc.NewMockMetrics(t),
	}

	srv := NewOrderService(OrderServiceParams{
		TxManager:       fixtures.txManager,
		OrderRepo:       fixtures.orderRepo,
		ShopRepo:        fixtures.shopRepo,
		AppointmentRepo: fixtures.appointmentRepo,
		ChangeFeed:      fixtures.feed,
		Publisher:       fixtures.publisher,
		Metrics:         fixtures.metrics,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	}).(*orderService)
	srv.now = func() time.Time { return time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC) }
	fixtures.service = srv

	return fixtures
}

func (f orderServiceFixtures) expectChanges() {
	f.feed.EXPECT().Publish(mock.Anything, mock.AnythingOfType("service.Change")).Return(nil)
}

func newPart(shopID uuid.UUID, quantity int) *entity.SparePart {
	return &entity.SparePart{
		ID:              uuid.New(),
		ShopID:          shopID,
		Title:           "Brake pad",
		Price:           250,
		ManageInventory: true,
		Quantity:        quantity,
		LowStockLimit:   5,
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	t.Run("snapshots parts and clamps the decrement", func(t *testing.T) {
		f := createTestOrderService(t)
		shop := &entity.Shop{ID: uuid.New(), OwnerID: uuid.New()}
		part := newPart(shop.ID, 2)
		session := customerSession()

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			shopRepo := mockRepo.NewMockShopRepository(t)
			partRepo := mockRepo.NewMockSparePartRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().NewShopRepository().Return(shopRepo)
			factory.EXPECT().NewSparePartRepository().Return(partRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
			partRepo.EXPECT().FindByID(mock.Anything, part.ID).Return(part, nil)
			partRepo.EXPECT().DecreaseQuantity(mock.Anything, part.ID, 3).Return(&entity.SparePart{ID: part.ID}, 2, nil)
			orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
		})
		f.metrics.EXPECT().OrderTransition("", entity.OrderPlaced.String()).Return()
		f.metrics.EXPECT().InventoryAdjusted(inventoryDecrease, 2).Return()
		f.expectChanges()
		f.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool {
				return event.Kind == service.EventOrderPlaced && event.RecipientID == shop.OwnerID.String()
			})).
			Return(nil)

		order, err := f.service.PlaceOrder(context.Background(), session, &usecase.PlaceOrderInput{
			ShopID:  shop.ID,
			Items:   []usecase.OrderLineInput{{PartID: part.ID, Quantity: 3}},
			Address: " 12 Main St ",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.OrderPlaced, order.Status)
		assert.Equal(t, "2025-03-01", order.OrderDate)
		assert.Equal(t, "12 Main St", order.Address)
		assert.True(t, order.IsCustomer(session.PrincipalID))
		assert.Equal(t, "0912345678", order.Customer.Contact)
		require.Len(t, order.Items, 1)
		assert.Equal(t, part.Price, order.Items[0].Part.Price)
		assert.Equal(t, 3, order.Items[0].Quantity)
		assert.Equal(t, 2, order.Items[0].DeductedQuantity)
		assert.Equal(t, int64(750), order.Total())
	})

	t.Run("part from another shop", func(t *testing.T) {
		f := createTestOrderService(t)
		shop := &entity.Shop{ID: uuid.New(), OwnerID: uuid.New()}
		part := newPart(uuid.New(), 10)

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			shopRepo := mockRepo.NewMockShopRepository(t)
			partRepo := mockRepo.NewMockSparePartRepository(t)

			factory.EXPECT().NewShopRepository().Return(shopRepo)
			factory.EXPECT().NewSparePartRepository().Return(partRepo)

			shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
			partRepo.EXPECT().FindByID(mock.Anything, part.ID).Return(part, nil)
		})

		_, err := f.service.PlaceOrder(context.Background(), customerSession(), &usecase.PlaceOrderInput{
			ShopID: shop.ID,
			Items:  []usecase.OrderLineInput{{PartID: part.ID, Quantity: 1}},
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown shop", func(t *testing.T) {
		f := createTestOrderService(t)
		shopID := uuid.New()

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			shopRepo := mockRepo.NewMockShopRepository(t)
			factory.EXPECT().NewShopRepository().Return(shopRepo)
			shopRepo.EXPECT().FindByID(mock.Anything, shopID).Return(nil, repository.ErrShopNotFound)
		})

		_, err := f.service.PlaceOrder(context.Background(), customerSession(), &usecase.PlaceOrderInput{
			ShopID: shopID,
			Items:  []usecase.OrderLineInput{{PartID: uuid.New(), Quantity: 1}},
		})

		assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	})

	t.Run("empty order", func(t *testing.T) {
		f := createTestOrderService(t)

		_, err := f.service.PlaceOrder(context.Background(), customerSession(), &usecase.PlaceOrderInput{ShopID: uuid.New()})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		f := createTestOrderService(t)

		_, err := f.service.PlaceOrder(context.Background(), customerSession(), &usecase.PlaceOrderInput{
			ShopID: uuid.New(),
			Items:  []usecase.OrderLineInput{{PartID: uuid.New(), Quantity: 0}},
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestOrderService_CreateManualOrder_LinksBooking(t *testing.T) {
	f := createTestOrderService(t)
	shopID := uuid.New()
	part := newPart(shopID, 10)
	appointment := &entity.Appointment{ID: uuid.New(), ShopID: shopID, AppointmentID: "legacy-42"}

	expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
		partRepo := mockRepo.NewMockSparePartRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewAppointmentRepository().Return(appointmentRepo)
		factory.EXPECT().NewSparePartRepository().Return(partRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		appointmentRepo.EXPECT().FindByID(mock.Anything, appointment.ID).Return(appointment, nil)
		partRepo.EXPECT().FindByID(mock.Anything, part.ID).Return(part, nil)
		partRepo.EXPECT().DecreaseQuantity(mock.Anything, part.ID, 1).Return(part, 1, nil)
		orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	})
	f.metrics.EXPECT().OrderTransition("", entity.OrderPlaced.String()).Return()
	f.metrics.EXPECT().InventoryAdjusted(inventoryDecrease, 1).Return()
	f.expectChanges()

	order, err := f.service.CreateManualOrder(context.Background(), ownerSession(shopID), &usecase.ManualOrderInput{
		Items:        []usecase.OrderLineInput{{PartID: part.ID, Quantity: 1}},
		CustomerName: "Walk-in",
		BookingID:    appointment.ID.String(),
	})

	require.NoError(t, err)
	assert.True(t, order.ManualEntry)
	assert.Equal(t, "legacy-42", order.BookingID)
	assert.Nil(t, order.Customer.ID)
}

func TestOrderService_CreateManualOrder_ClosedAppointment(t *testing.T) {
	for _, status := range []entity.AppointmentStatus{entity.AppointmentCompleted, entity.AppointmentCancelled} {
		t.Run(status.String(), func(t *testing.T) {
			f := createTestOrderService(t)
			shopID := uuid.New()
			appointment := &entity.Appointment{ID: uuid.New(), ShopID: shopID, Status: status}

			expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
				factory.EXPECT().NewAppointmentRepository().Return(appointmentRepo)
				appointmentRepo.EXPECT().FindByID(mock.Anything, appointment.ID).Return(appointment, nil)
			})

			_, err := f.service.CreateManualOrder(context.Background(), ownerSession(shopID), &usecase.ManualOrderInput{
				Items:        []usecase.OrderLineInput{{PartID: uuid.New(), Quantity: 1}},
				CustomerName: "Walk-in",
				BookingID:    appointment.ID.String(),
			})

			assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
		})
	}
}

func TestOrderService_PlaceOrder_LocksPartsInIDOrder(t *testing.T) {
	f := createTestOrderService(t)
	shop := &entity.Shop{ID: uuid.New(), OwnerID: uuid.New()}
	low := newPart(shop.ID, 10)
	low.ID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	high := newPart(shop.ID, 10)
	high.ID = uuid.MustParse("ffffffff-0000-0000-0000-000000000000")

	expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		shopRepo := mockRepo.NewMockShopRepository(t)
		partRepo := mockRepo.NewMockSparePartRepository(t)
		orderRepo := mockRepo.NewMockOrderRepository(t)

		factory.EXPECT().NewShopRepository().Return(shopRepo)
		factory.EXPECT().NewSparePartRepository().Return(partRepo)
		factory.EXPECT().NewOrderRepository().Return(orderRepo)

		shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
		partRepo.EXPECT().FindByID(mock.Anything, low.ID).Return(low, nil)
		partRepo.EXPECT().FindByID(mock.Anything, high.ID).Return(high, nil)
		mock.InOrder(
			partRepo.EXPECT().DecreaseQuantity(mock.Anything, low.ID, 1).Return(low, 1, nil).Call,
			partRepo.EXPECT().DecreaseQuantity(mock.Anything, high.ID, 2).Return(high, 2, nil).Call,
		)
		orderRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Order")).Return(nil)
	})
	f.metrics.EXPECT().OrderTransition("", entity.OrderPlaced.String()).Return()
	f.metrics.EXPECT().InventoryAdjusted(inventoryDecrease, 3).Return()
	f.expectChanges()
	f.publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(nil)

	order, err := f.service.PlaceOrder(context.Background(), customerSession(), &usecase.PlaceOrderInput{
		ShopID: shop.ID,
		Items: []usecase.OrderLineInput{
			{PartID: high.ID, Quantity: 2},
			{PartID: low.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, high.ID, order.Items[0].Part.PartID)
	assert.Equal(t, low.ID, order.Items[1].Part.PartID)
}

func TestOrderService_CreateManualOrder_RequiresShop(t *testing.T) {
	f := createTestOrderService(t)

	_, err := f.service.CreateManualOrder(context.Background(), customerSession(), &usecase.ManualOrderInput{
		Items:        []usecase.OrderLineInput{{PartID: uuid.New(), Quantity: 1}},
		CustomerName: "Walk-in",
	})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func placedOrder(shopID uuid.UUID, customerID uuid.UUID, status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:       uuid.New(),
		ShopID:   shopID,
		Customer: entity.CustomerInfo{ID: &customerID, Name: "Customer"},
		Status:   status,
		Items: []entity.OrderItem{
			{Part: entity.PartSnapshot{PartID: uuid.New(), Price: 100}, Quantity: 3, DeductedQuantity: 2},
			{Part: entity.PartSnapshot{PartID: uuid.New(), Price: 40}, Quantity: 1, DeductedQuantity: 0},
		},
	}
}

func TestOrderService_TransitionOrder(t *testing.T) {
	t.Run("owner confirms and the customer is notified", func(t *testing.T) {
		f := createTestOrderService(t)
		shopID := uuid.New()
		customerID := uuid.New()
		order := placedOrder(shopID, customerID, entity.OrderPlaced)

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			orderRepo.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)
			orderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID, entity.OrderConfirmed).Return(nil)
		})
		f.metrics.EXPECT().OrderTransition(entity.OrderPlaced.String(), entity.OrderConfirmed.String()).Return()
		f.expectChanges()
		f.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool {
				return event.RecipientID == customerID.String() && event.Data["status"] == entity.OrderConfirmed.String()
			})).
			Return(nil)

		updated, err := f.service.TransitionOrder(context.Background(), ownerSession(shopID), order.ID, entity.OrderActionConfirm)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderConfirmed, updated.Status)
	})

	t.Run("customer cancel restocks deducted amounts", func(t *testing.T) {
		f := createTestOrderService(t)
		session := customerSession()
		shop := &entity.Shop{ID: uuid.New(), OwnerID: uuid.New()}
		order := placedOrder(shop.ID, session.PrincipalID, entity.OrderConfirmed)

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			partRepo := mockRepo.NewMockSparePartRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			factory.EXPECT().NewSparePartRepository().Return(partRepo)

			orderRepo.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)
			partRepo.EXPECT().RestoreQuantity(mock.Anything, order.Items[0].Part.PartID, 2).Return(nil).Once()
			orderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID, entity.OrderCanceled).Return(nil)
		})
		f.metrics.EXPECT().OrderTransition(entity.OrderConfirmed.String(), entity.OrderCanceled.String()).Return()
		f.metrics.EXPECT().InventoryAdjusted(inventoryRestore, 2).Return()
		f.expectChanges()
		f.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
		f.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool {
				return event.RecipientID == shop.OwnerID.String()
			})).
			Return(nil)

		updated, err := f.service.TransitionOrder(context.Background(), session, order.ID, entity.OrderActionCancel)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderCanceled, updated.Status)
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		f := createTestOrderService(t)
		session := customerSession()
		order := placedOrder(uuid.New(), session.PrincipalID, entity.OrderPlaced)

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			orderRepo.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)
		})

		_, err := f.service.TransitionOrder(context.Background(), session, order.ID, entity.OrderActionConfirm)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("delivered orders cannot be canceled", func(t *testing.T) {
		f := createTestOrderService(t)
		shopID := uuid.New()
		order := placedOrder(shopID, uuid.New(), entity.OrderDelivered)

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			orderRepo.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)
		})

		_, err := f.service.TransitionOrder(context.Background(), ownerSession(shopID), order.ID, entity.OrderActionCancel)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		f := createTestOrderService(t)
		order := placedOrder(uuid.New(), uuid.New(), entity.OrderPlaced)

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			orderRepo.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)
		})

		_, err := f.service.TransitionOrder(context.Background(), customerSession(), order.ID, entity.OrderActionCancel)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("missing order", func(t *testing.T) {
		f := createTestOrderService(t)
		orderID := uuid.New()

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			orderRepo.EXPECT().FindByIDForUpdate(mock.Anything, orderID).Return(nil, repository.ErrOrderNotFound)
		})

		_, err := f.service.TransitionOrder(context.Background(), customerSession(), orderID, entity.OrderActionCancel)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_SetOrderStatus(t *testing.T) {
	t.Run("unknown label", func(t *testing.T) {
		f := createTestOrderService(t)

		_, err := f.service.SetOrderStatus(context.Background(), customerSession(), uuid.New(), "shipped")

		assert.ErrorIs(t, err, domainerrors.ErrUnknownStatus)
	})

	t.Run("back to placed is not a transition", func(t *testing.T) {
		f := createTestOrderService(t)

		_, err := f.service.SetOrderStatus(context.Background(), customerSession(), uuid.New(), "pending")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("legacy label maps to receive", func(t *testing.T) {
		f := createTestOrderService(t)
		session := customerSession()
		shop := &entity.Shop{ID: uuid.New(), OwnerID: uuid.New()}
		order := placedOrder(shop.ID, session.PrincipalID, entity.OrderDelivered)

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)
			orderRepo.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)
			orderRepo.EXPECT().UpdateStatus(mock.Anything, order.ID, entity.OrderReceived).Return(nil)
		})
		f.metrics.EXPECT().OrderTransition(entity.OrderDelivered.String(), entity.OrderReceived.String()).Return()
		f.expectChanges()
		f.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(nil, errors.New("db down"))

		updated, err := f.service.SetOrderStatus(context.Background(), session, order.ID, "Completed")

		require.NoError(t, err)
		assert.Equal(t, entity.OrderReceived, updated.Status)
	})
}

func TestOrderService_Lists(t *testing.T) {
	t.Run("shop orders clamp the limit", func(t *testing.T) {
		f := createTestOrderService(t)
		shopID := uuid.New()
		f.orderRepo.EXPECT().ListByShop(mock.Anything, shopID, 50).Return([]*entity.Order{}, nil)

		orders, err := f.service.ListShopOrders(context.Background(), ownerSession(shopID), 500)

		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("booking orders use the booking key", func(t *testing.T) {
		f := createTestOrderService(t)
		session := customerSession()
		appointment := &entity.Appointment{ID: uuid.New(), ShopID: uuid.New(), Customer: entity.CustomerInfo{ID: &session.PrincipalID}}
		linked := []*entity.Order{{ID: uuid.New()}}

		f.appointmentRepo.EXPECT().FindByID(mock.Anything, appointment.ID).Return(appointment, nil)
		f.orderRepo.EXPECT().ListByBooking(mock.Anything, appointment.ShopID, appointment.ID.String()).Return(linked, nil)

		orders, err := f.service.ListBookingOrders(context.Background(), session, appointment.ID)

		require.NoError(t, err)
		assert.Equal(t, linked, orders)
	})

	t.Run("get order of someone else", func(t *testing.T) {
		f := createTestOrderService(t)
		order := placedOrder(uuid.New(), uuid.New(), entity.OrderPlaced)
		f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

		_, err := f.service.GetOrder(context.Background(), customerSession(), order.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
