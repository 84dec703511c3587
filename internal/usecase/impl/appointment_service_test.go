package impl

import (
	"context"
	"testing"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/domain/service"
	mockRepo "autohub/internal/mocks/repository"
	mockSvc "autohub/internal/mocks/service"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type appointmentServiceFixtures struct {
	service         usecase.AppointmentUsecase
	txManager       *mockRepo.MockTransactionManager
	appointmentRepo *mockRepo.MockAppointmentRepository
	orderRepo       *mockRepo.MockOrderRepository
	shopRepo        *mockRepo.MockShopRepository
	serviceRepo     *mockRepo.MockServiceRepository
	publisher       *mockSvc.MockEventPublisher
}

func createTestAppointmentService(t *testing.T) appointmentServiceFixtures {
	fixtures := appointmentServiceFixtures{
		txManager:       mockRepo.NewMockTransactionManager(t),
		appointmentRepo: mockRepo.NewMockAppointmentRepository(t),
		orderRepo:       mockRepo.NewMockOrderRepository(t),
		shopRepo:        mockRepo.NewMockShopRepository(t),
		serviceRepo:     mockRepo.NewMockServiceRepository(t),
		publisher:       mockSvc.NewMockEventPublisher(t),
	}

	fixtures.service = NewAppointmentService(AppointmentServiceParams{
		TxManager:       fixtures.txManager,
		AppointmentRepo: fixtures.appointmentRepo,
		OrderRepo:       fixtures.orderRepo,
		ShopRepo:        fixtures.shopRepo,
		ServiceRepo:     fixtures.serviceRepo,
		Publisher:       fixtures.publisher,
		Metrics:         service.NopMetrics{},
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return fixtures
}

func TestAppointmentService_Book(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := createTestAppointmentService(t)
		shop := &entity.Shop{ID: uuid.New(), OwnerID: uuid.New()}
		shopService := &entity.ShopService{ID: uuid.New(), ShopID: shop.ID, Name: "Oil change", Price: 1200}
		session := customerSession()

		f.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
		f.serviceRepo.EXPECT().FindByID(mock.Anything, shopService.ID).Return(shopService, nil)
		f.appointmentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Appointment")).Return(nil)
		f.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool {
				return event.Kind == service.EventAppointmentBooked && event.RecipientID == shop.OwnerID.String()
			})).
			Return(nil)

		appointment, err := f.service.Book(context.Background(), session, &usecase.BookAppointmentInput{
			ShopID:    shop.ID,
			ServiceID: shopService.ID,
			Date:      "2025-03-04",
			Time:      "10:30",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.AppointmentPending, appointment.Status)
		assert.Equal(t, "1200", appointment.Bill)
		assert.Equal(t, "Oil change", appointment.ServiceName)
		assert.True(t, appointment.IsCustomer(session.PrincipalID))
	})

	t.Run("bad date", func(t *testing.T) {
		f := createTestAppointmentService(t)

		_, err := f.service.Book(context.Background(), customerSession(), &usecase.BookAppointmentInput{
			ShopID:    uuid.New(),
			ServiceID: uuid.New(),
			Date:      "04/03/2025",
			Time:      "10:30",
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("service of another shop", func(t *testing.T) {
		f := createTestAppointmentService(t)
		shop := &entity.Shop{ID: uuid.New(), OwnerID: uuid.New()}
		shopService := &entity.ShopService{ID: uuid.New(), ShopID: uuid.New()}

		f.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
		f.serviceRepo.EXPECT().FindByID(mock.Anything, shopService.ID).Return(shopService, nil)

		_, err := f.service.Book(context.Background(), customerSession(), &usecase.BookAppointmentInput{
			ShopID:    shop.ID,
			ServiceID: shopService.ID,
			Date:      "2025-03-04",
			Time:      "10:30",
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing service", func(t *testing.T) {
		f := createTestAppointmentService(t)
		shop := &entity.Shop{ID: uuid.New(), OwnerID: uuid.New()}
		serviceID := uuid.New()

		f.shopRepo.EXPECT().FindByID(mock.Anything, shop.ID).Return(shop, nil)
		f.serviceRepo.EXPECT().FindByID(mock.Anything, serviceID).Return(nil, repository.ErrServiceNotFound)

		_, err := f.service.Book(context.Background(), customerSession(), &usecase.BookAppointmentInput{
			ShopID:    shop.ID,
			ServiceID: serviceID,
			Date:      "2025-03-04",
			Time:      "10:30",
		})

		assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
	})
}

func TestAppointmentService_CreateManual(t *testing.T) {
	f := createTestAppointmentService(t)
	shopID := uuid.New()
	shopService := &entity.ShopService{ID: uuid.New(), ShopID: shopID, Name: "Tyre swap", Price: 300}

	f.serviceRepo.EXPECT().FindByID(mock.Anything, shopService.ID).Return(shopService, nil)
	f.appointmentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Appointment")).Return(nil)

	appointment, err := f.service.CreateManual(context.Background(), ownerSession(shopID), &usecase.ManualAppointmentInput{
		ServiceID:     shopService.ID,
		Date:          "2025-03-04",
		Time:          "14:00",
		CustomerName:  "Walk-in",
		CustomerEmail: " Walk@In.com ",
	})

	require.NoError(t, err)
	assert.True(t, appointment.ManualEntry)
	assert.Nil(t, appointment.Customer.ID)
	assert.Equal(t, "walk@in.com", appointment.Customer.Email)
}

func TestAppointmentService_TransitionAppointment(t *testing.T) {
	t.Run("complete stores the computed bill", func(t *testing.T) {
		f := createTestAppointmentService(t)
		shopID := uuid.New()
		customerID := uuid.New()
		appointment := &entity.Appointment{
			ID:           uuid.New(),
			ShopID:       shopID,
			Customer:     entity.CustomerInfo{ID: &customerID},
			ServicePrice: 1000,
			Status:       entity.AppointmentConfirmed,
		}
		linked := []*entity.Order{
			{Status: entity.OrderReceived, Items: []entity.OrderItem{{Part: entity.PartSnapshot{Price: 150}, Quantity: 2}}},
			{Status: entity.OrderCanceled, Items: []entity.OrderItem{{Part: entity.PartSnapshot{Price: 999}, Quantity: 1}}},
		}

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
			orderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewAppointmentRepository().Return(appointmentRepo)
			factory.EXPECT().NewOrderRepository().Return(orderRepo)

			appointmentRepo.EXPECT().FindByIDForUpdate(mock.Anything, appointment.ID).Return(appointment, nil)
			orderRepo.EXPECT().ListByBooking(mock.Anything, shopID, appointment.ID.String()).Return(linked, nil)
			appointmentRepo.EXPECT().UpdateStatus(mock.Anything, appointment.ID, entity.AppointmentCompleted, "1300").Return(nil)
		})
		f.publisher.EXPECT().
			PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool {
				return event.RecipientID == customerID.String() && event.Kind == service.EventAppointmentStatusChanged
			})).
			Return(nil)

		updated, err := f.service.TransitionAppointment(context.Background(), ownerSession(shopID), appointment.ID, entity.AppointmentActionComplete)

		require.NoError(t, err)
		assert.Equal(t, entity.AppointmentCompleted, updated.Status)
		assert.Equal(t, "1300", updated.Bill)
	})

	t.Run("customer cannot complete", func(t *testing.T) {
		f := createTestAppointmentService(t)
		session := customerSession()
		appointment := &entity.Appointment{
			ID:       uuid.New(),
			ShopID:   uuid.New(),
			Customer: entity.CustomerInfo{ID: &session.PrincipalID},
			Status:   entity.AppointmentConfirmed,
		}

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
			factory.EXPECT().NewAppointmentRepository().Return(appointmentRepo)
			appointmentRepo.EXPECT().FindByIDForUpdate(mock.Anything, appointment.ID).Return(appointment, nil)
		})

		_, err := f.service.TransitionAppointment(context.Background(), session, appointment.ID, entity.AppointmentActionComplete)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("cancel after confirmation is rejected", func(t *testing.T) {
		f := createTestAppointmentService(t)
		shopID := uuid.New()
		appointment := &entity.Appointment{ID: uuid.New(), ShopID: shopID, Status: entity.AppointmentConfirmed}

		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
			factory.EXPECT().NewAppointmentRepository().Return(appointmentRepo)
			appointmentRepo.EXPECT().FindByIDForUpdate(mock.Anything, appointment.ID).Return(appointment, nil)
		})

		_, err := f.service.SetAppointmentStatus(context.Background(), ownerSession(shopID), appointment.ID, "canceled")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
	})

	t.Run("unknown label", func(t *testing.T) {
		f := createTestAppointmentService(t)

		_, err := f.service.SetAppointmentStatus(context.Background(), customerSession(), uuid.New(), "rescheduled")

		assert.ErrorIs(t, err, domainerrors.ErrUnknownStatus)
	})
}

func TestAppointmentService_Bill(t *testing.T) {
	f := createTestAppointmentService(t)
	shopID := uuid.New()
	appointment := &entity.Appointment{ID: uuid.New(), AppointmentID: "A-7", ShopID: shopID, ServicePrice: 500}
	linked := []*entity.Order{
		{Status: entity.OrderPlaced, Items: []entity.OrderItem{{Part: entity.PartSnapshot{Price: 40}, Quantity: 5}}},
	}

	f.appointmentRepo.EXPECT().FindByID(mock.Anything, appointment.ID).Return(appointment, nil)
	f.orderRepo.EXPECT().ListByBooking(mock.Anything, shopID, "A-7").Return(linked, nil)

	bill, err := f.service.Bill(context.Background(), ownerSession(shopID), appointment.ID)

	require.NoError(t, err)
	assert.InDelta(t, 500, bill.ServicePrice, 0.001)
	assert.InDelta(t, 200, bill.PartsTotal, 0.001)
	assert.InDelta(t, 700, bill.Total, 0.001)
	assert.Len(t, bill.Orders, 1)
}
