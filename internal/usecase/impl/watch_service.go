package impl

import (
	"context"
	"log/slog"

	"autohub/config"
	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/domain/service"
	"autohub/internal/usecase"

	"github.com/pkg/errors"
)

type watchService struct {
	feed            service.ChangeFeed
	orderRepo       repository.OrderRepository
	appointmentRepo repository.AppointmentRepository
	listLimit       int
	logger          *slog.Logger
}

// NewWatchService is the constructor for watchService.
func NewWatchService(
	feed service.ChangeFeed,
	orderRepo repository.OrderRepository,
	appointmentRepo repository.AppointmentRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.WatchUsecase {
	listLimit := 100
	if cfg != nil && cfg.Marketplace != nil {
		listLimit = cfg.Marketplace.ListLimit
	}

	return &watchService{
		feed:            feed,
		orderRepo:       orderRepo,
		appointmentRepo: appointmentRepo,
		listLimit:       listLimit,
		logger:          logger,
	}
}

func (srv *watchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type snapshotQuery struct {
	topic string
	fetch func(context.Context) (usecase.Snapshot, error)
}

func (srv *watchService) query(session *entity.Session, stream usecase.WatchStream) (*snapshotQuery, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	principalID := session.PrincipalID

	switch stream {
	case usecase.WatchCustomerOrders:
		return &snapshotQuery{
			topic: service.CustomerOrdersTopic(principalID),
			fetch: func(ctx context.Context) (usecase.Snapshot, error) {
				orders, err := srv.orderRepo.ListByCustomer(ctx, principalID, srv.listLimit)

				return usecase.Snapshot{Stream: stream, Orders: orders}, err
			},
		}, nil
	case usecase.WatchCustomerAppointments:
		return &snapshotQuery{
			topic: service.CustomerAppointmentsTopic(principalID),
			fetch: func(ctx context.Context) (usecase.Snapshot, error) {
				appointments, err := srv.appointmentRepo.ListByCustomer(ctx, principalID, srv.listLimit)

				return usecase.Snapshot{Stream: stream, Appointments: appointments}, err
			},
		}, nil
	case usecase.WatchShopOrders, usecase.WatchShopAppointments:
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown stream " + string(stream))
	}

	shopID, err := requireShop(session)
	if err != nil {
		return nil, err
	}

	if stream == usecase.WatchShopOrders {
		return &snapshotQuery{
			topic: service.ShopOrdersTopic(shopID),
			fetch: func(ctx context.Context) (usecase.Snapshot, error) {
				orders, err := srv.orderRepo.ListByShop(ctx, shopID, srv.listLimit)

				return usecase.Snapshot{Stream: stream, Orders: orders}, err
			},
		}, nil
	}

	return &snapshotQuery{
		topic: service.ShopAppointmentsTopic(shopID),
		fetch: func(ctx context.Context) (usecase.Snapshot, error) {
			appointments, err := srv.appointmentRepo.ListByShop(ctx, shopID, srv.listLimit)

			return usecase.Snapshot{Stream: stream, Appointments: appointments}, err
		},
	}, nil
}

// Watch subscribes before the first query so no change between the two is lost.
// Bursts of changes are coalesced into one re-query.
func (srv *watchService) Watch(ctx context.Context, session *entity.Session, stream usecase.WatchStream) (<-chan usecase.Snapshot, error) {
	q, err := srv.query(session, stream)
	if err != nil {
		return nil, err
	}

	changes, err := srv.feed.Subscribe(ctx, q.topic)
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe to changes")
	}

	snapshots := make(chan usecase.Snapshot, 1)

	go func() {
		defer close(snapshots)

		logger := srv.log(ctx).With(slog.String("stream", string(stream)), slog.String("topic", q.topic))
		logger.Debug("Watch started")
		defer logger.Debug("Watch stopped")

		for {
			snapshot, err := q.fetch(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Warn("Snapshot query failed", slog.Any("error", err))
			} else {
				select {
				case snapshots <- snapshot:
				case <-ctx.Done():
					return
				}
			}

			select {
			case _, ok := <-changes:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}

			drainChanges(changes)
		}
	}()

	return snapshots, nil
}

func drainChanges(changes <-chan service.Change) {
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
