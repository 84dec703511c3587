package impl

import (
	"context"
	"testing"
	"time"

	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	mockRepo "autohub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_CustomerActivity(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	appointmentRepo := mockRepo.NewMockAppointmentRepository(t)
	svc := NewActivityService(orderRepo, appointmentRepo)
	session := customerSession()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	orders := []*entity.Order{
		{ID: uuid.New(), CreatedAt: base.Add(3 * time.Hour)},
		{ID: uuid.New(), CreatedAt: base.Add(1 * time.Hour)},
	}
	appointments := []*entity.Appointment{
		{ID: uuid.New(), CreatedAt: base.Add(2 * time.Hour)},
	}

	orderRepo.EXPECT().ListByCustomer(mock.Anything, session.PrincipalID, 2).Return(orders, nil)
	appointmentRepo.EXPECT().ListByCustomer(mock.Anything, session.PrincipalID, 2).Return(appointments, nil)

	items, err := svc.CustomerActivity(context.Background(), session, 2)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, entity.ActivityOrder, items[0].Kind())
	assert.Equal(t, entity.ActivityAppointment, items[1].Kind())
	assert.Equal(t, base.Add(2*time.Hour), items[1].CreatedAt())
}

func TestActivityService_ShopActivity_RequiresShop(t *testing.T) {
	svc := NewActivityService(mockRepo.NewMockOrderRepository(t), mockRepo.NewMockAppointmentRepository(t))

	_, err := svc.ShopActivity(context.Background(), customerSession(), 10)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
