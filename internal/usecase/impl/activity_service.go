package impl

import (
	"context"

	"autohub/internal/domain/entity"
	"autohub/internal/domain/repository"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type activityService struct {
	orderRepo       repository.OrderRepository
	appointmentRepo repository.AppointmentRepository
}

// NewActivityService is the constructor for activityService.
func NewActivityService(orderRepo repository.OrderRepository, appointmentRepo repository.AppointmentRepository) usecase.ActivityUsecase {
	return &activityService{
		orderRepo:       orderRepo,
		appointmentRepo: appointmentRepo,
	}
}

// CustomerActivity merges the principal's orders and appointments, newest first.
func (srv *activityService) CustomerActivity(ctx context.Context, session *entity.Session, limit int) ([]entity.ActivityItem, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	return srv.merge(ctx, limit, session.PrincipalID, srv.orderRepo.ListByCustomer, srv.appointmentRepo.ListByCustomer)
}

// ShopActivity merges the owner's shop orders and appointments, newest first.
func (srv *activityService) ShopActivity(ctx context.Context, session *entity.Session, limit int) ([]entity.ActivityItem, error) {
	shopID, err := requireShop(session)
	if err != nil {
		return nil, err
	}

	return srv.merge(ctx, limit, shopID, srv.orderRepo.ListByShop, srv.appointmentRepo.ListByShop)
}

func (srv *activityService) merge(
	ctx context.Context,
	limit int,
	id uuid.UUID,
	listOrders func(context.Context, uuid.UUID, int) ([]*entity.Order, error),
	listAppointments func(context.Context, uuid.UUID, int) ([]*entity.Appointment, error),
) ([]entity.ActivityItem, error) {
	if limit < 0 {
		limit = 0
	}

	orders, err := listOrders(ctx, id, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	appointments, err := listAppointments(ctx, id, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	items := entity.MergeActivity(orders, appointments)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}
