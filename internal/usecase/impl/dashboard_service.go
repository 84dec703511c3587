package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"autohub/config"
	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/repository"
	"autohub/internal/usecase"

	"github.com/pkg/errors"
)

type dashboardService struct {
	orderRepo       repository.OrderRepository
	appointmentRepo repository.AppointmentRepository
	partRepo        repository.SparePartRepository
	dateLayout      string
	now             func() time.Time
	logger          *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	orderRepo repository.OrderRepository,
	appointmentRepo repository.AppointmentRepository,
	partRepo repository.SparePartRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	dateLayout := time.DateOnly
	if cfg != nil && cfg.Marketplace != nil {
		dateLayout = cfg.Marketplace.DateLayout
	}

	return &dashboardService{
		orderRepo:       orderRepo,
		appointmentRepo: appointmentRepo,
		partRepo:        partRepo,
		dateLayout:      dateLayout,
		now:             time.Now,
		logger:          logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Summary aggregates the owner's shop for date, or for today when date is empty.
func (srv *dashboardService) Summary(ctx context.Context, session *entity.Session, date string) (*entity.DashboardSummary, error) {
	shopID, err := requireShop(session)
	if err != nil {
		return nil, err
	}

	date = strings.TrimSpace(date)
	if date == "" {
		date = srv.now().Format(srv.dateLayout)
	} else if _, err := time.Parse(srv.dateLayout, date); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("date must match layout %s", srv.dateLayout))
	}

	// Pending orders count across all dates, so the whole list is needed.
	orders, err := srv.orderRepo.ListByShop(ctx, shopID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop orders")
	}

	appointments, err := srv.appointmentRepo.ListByShop(ctx, shopID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop appointments")
	}

	parts, err := srv.partRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spare parts")
	}

	summary, failures := entity.SummarizeDay(shopID, date, orders, appointments, parts)
	for _, failure := range failures {
		srv.log(ctx).Warn("Unparsable appointment bill counted as zero",
			slog.Any("appointmentID", failure.AppointmentID),
			slog.String("bill", failure.Bill),
		)
	}

	return summary, nil
}
