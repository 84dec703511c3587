package impl

import (
	"context"
	"math"
	"testing"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	mockRepo "autohub/internal/mocks/repository"
	mockSvc "autohub/internal/mocks/service"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service         usecase.ReviewUsecase
	reviewRepo      *mockRepo.MockReviewRepository
	orderRepo       *mockRepo.MockOrderRepository
	appointmentRepo *mockRepo.MockAppointmentRepository
	metrics         *mockSvc.MockMetrics
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fixtures := reviewServiceFixtures{
		reviewRepo:      mockRepo.NewMockReviewRepository(t),
		orderRepo:       mockRepo.NewMockOrderRepository(t),
		appointmentRepo: mockRepo.NewMockAppointmentRepository(t),
		metrics:         mockSvc.NewMockMetrics(t),
	}

	fixtures.service = NewReviewService(ReviewServiceParams{
		ReviewRepo:      fixtures.reviewRepo,
		OrderRepo:       fixtures.orderRepo,
		AppointmentRepo: fixtures.appointmentRepo,
		Metrics:         fixtures.metrics,
		Logger:          newDiscardLogger(),
	})

	return fixtures
}

func TestReviewService_Submit(t *testing.T) {
	t.Run("received order", func(t *testing.T) {
		f := createTestReviewService(t)
		session := customerSession()
		order := placedOrder(uuid.New(), session.PrincipalID, entity.OrderReceived)

		f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
		f.reviewRepo.EXPECT().Exists(mock.Anything, order.ID, session.PrincipalID).Return(false, nil)
		f.reviewRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)
		f.metrics.EXPECT().ReviewSubmitted("ORDER").Return()

		review, err := f.service.Submit(context.Background(), session, &usecase.SubmitReviewInput{
			ShopID:   order.ShopID,
			ItemID:   order.ID,
			ItemType: "order",
			Rating:   4,
			Comment:  " quick ",
		})

		require.NoError(t, err)
		assert.Equal(t, entity.ReviewItemOrder, review.ItemType)
		assert.Equal(t, "quick", review.Comment)
		assert.Equal(t, "Customer", review.AuthorName)
	})

	t.Run("order not yet received", func(t *testing.T) {
		f := createTestReviewService(t)
		session := customerSession()
		order := placedOrder(uuid.New(), session.PrincipalID, entity.OrderDelivered)
		f.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

		_, err := f.service.Submit(context.Background(), session, &usecase.SubmitReviewInput{
			ShopID: order.ShopID, ItemID: order.ID, ItemType: "ORDER", Rating: 5,
		})

		assert.ErrorIs(t, err, domainerrors.ErrReviewNotAllowed)
	})

	t.Run("appointment of another customer", func(t *testing.T) {
		f := createTestReviewService(t)
		otherID := uuid.New()
		appointment := &entity.Appointment{
			ID:       uuid.New(),
			ShopID:   uuid.New(),
			Customer: entity.CustomerInfo{ID: &otherID},
			Status:   entity.AppointmentCompleted,
		}
		f.appointmentRepo.EXPECT().FindByID(mock.Anything, appointment.ID).Return(appointment, nil)

		_, err := f.service.Submit(context.Background(), customerSession(), &usecase.SubmitReviewInput{
			ShopID: appointment.ShopID, ItemID: appointment.ID, ItemType: "APPOINTMENT", Rating: 3,
		})

		assert.ErrorIs(t, err, domainerrors.ErrReviewNotAllowed)
	})

	t.Run("second review", func(t *testing.T) {
		f := createTestReviewService(t)
		session := customerSession()
		appointment := &entity.Appointment{
			ID:       uuid.New(),
			ShopID:   uuid.New(),
			Customer: entity.CustomerInfo{ID: &session.PrincipalID},
			Status:   entity.AppointmentCompleted,
		}
		f.appointmentRepo.EXPECT().FindByID(mock.Anything, appointment.ID).Return(appointment, nil)
		f.reviewRepo.EXPECT().Exists(mock.Anything, appointment.ID, session.PrincipalID).Return(true, nil)

		_, err := f.service.Submit(context.Background(), session, &usecase.SubmitReviewInput{
			ShopID: appointment.ShopID, ItemID: appointment.ID, ItemType: "appointment", Rating: 3,
		})

		assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
	})

	for name, rating := range map[string]float64{
		"rating above range": 6,
		"rating below range": 0.5,
		"rating NaN":         math.NaN(),
		"rating infinite":    math.Inf(1),
	} {
		t.Run(name, func(t *testing.T) {
			f := createTestReviewService(t)

			_, err := f.service.Submit(context.Background(), customerSession(), &usecase.SubmitReviewInput{ItemType: "ORDER", Rating: rating})

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}

	t.Run("unknown item type", func(t *testing.T) {
		f := createTestReviewService(t)

		_, err := f.service.Submit(context.Background(), customerSession(), &usecase.SubmitReviewInput{ItemType: "SHOP", Rating: 3})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestReviewService_Ratings(t *testing.T) {
	f := createTestReviewService(t)
	shopID := uuid.New()
	f.reviewRepo.EXPECT().ListByShop(mock.Anything, shopID).Return([]*entity.Review{{Rating: 2}, {Rating: 3}, {Rating: 4}}, nil)

	rating, err := f.service.ShopRating(context.Background(), shopID)

	require.NoError(t, err)
	assert.Equal(t, 3, rating.Count)
	assert.InDelta(t, 3.0, rating.Average, 0.001)

	itemID := uuid.New()
	f.reviewRepo.EXPECT().ListByItem(mock.Anything, itemID).Return(nil, nil)

	empty, err := f.service.ItemRating(context.Background(), itemID)

	require.NoError(t, err)
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.Average)
}
