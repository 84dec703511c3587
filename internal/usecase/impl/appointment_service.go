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
	"autohub/internal/domain/service"
	"autohub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type appointmentService struct {
	txManager       repository.TransactionManager
	appointmentRepo repository.AppointmentRepository
	orderRepo       repository.OrderRepository
	shopRepo        repository.ShopRepository
	serviceRepo     repository.ServiceRepository
	metrics         service.Metrics
	events          *marketplaceEvents
	dateLayout      string
	listLimit       int
	logger          *slog.Logger
}

// AppointmentServiceParams holds dependencies for AppointmentService, injected by Fx.
type AppointmentServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	AppointmentRepo repository.AppointmentRepository
	OrderRepo       repository.OrderRepository
	ShopRepo        repository.ShopRepository
	ServiceRepo     repository.ServiceRepository
	ChangeFeed      service.ChangeFeed
	Publisher       service.EventPublisher
	Metrics         service.Metrics
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(params AppointmentServiceParams) usecase.AppointmentUsecase {
	dateLayout, listLimit := time.DateOnly, 100
	if params.Config != nil && params.Config.Marketplace != nil {
		dateLayout = params.Config.Marketplace.DateLayout
		listLimit = params.Config.Marketplace.ListLimit
	}

	return &appointmentService{
		txManager:       params.TxManager,
		appointmentRepo: params.AppointmentRepo,
		orderRepo:       params.OrderRepo,
		shopRepo:        params.ShopRepo,
		serviceRepo:     params.ServiceRepo,
		metrics:         params.Metrics,
		events:          &marketplaceEvents{feed: params.ChangeFeed, publisher: params.Publisher, logger: params.Logger},
		dateLayout:      dateLayout,
		listLimit:       listLimit,
		logger:          params.Logger,
	}
}

func (srv *appointmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *appointmentService) validateSlot(date, slot string) error {
	if _, err := time.Parse(srv.dateLayout, strings.TrimSpace(date)); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("date must match layout %s", srv.dateLayout))
	}
	if strings.TrimSpace(slot) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("time is required")
	}

	return nil
}

// findService loads a service and checks it is offered by shopID.
func (srv *appointmentService) findService(ctx context.Context, shopID, serviceID uuid.UUID) (*entity.ShopService, error) {
	shopService, err := srv.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrServiceNotFound, domainerrors.ErrServiceNotFound, "failed to find service")
	}
	if shopService.ShopID != shopID {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("service is not offered by this shop")
	}

	return shopService, nil
}

func newAppointment(shopService *entity.ShopService, customer entity.CustomerInfo, date, slot string) *entity.Appointment {
	return &entity.Appointment{
		ShopID:       shopService.ShopID,
		Customer:     customer,
		ServiceID:    shopService.ID,
		ServiceName:  shopService.Name,
		ServiceImage: shopService.ImageURL,
		ServicePrice: shopService.Price,
		Status:       entity.AppointmentPending,
		Date:         strings.TrimSpace(date),
		Time:         strings.TrimSpace(slot),
		Bill:         entity.FormatBill(shopService.Price),
	}
}

// Book reserves a service slot for the session principal.
func (srv *appointmentService) Book(ctx context.Context, session *entity.Session, input *usecase.BookAppointmentInput) (*entity.Appointment, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if err := srv.validateSlot(input.Date, input.Time); err != nil {
		return nil, err
	}

	shop, err := srv.shopRepo.FindByID(ctx, input.ShopID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to find shop")
	}

	shopService, err := srv.findService(ctx, shop.ID, input.ServiceID)
	if err != nil {
		return nil, err
	}

	appointment := newAppointment(shopService, customerFromSession(session, strings.TrimSpace(input.Contact)), input.Date, input.Time)
	if err := srv.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to create appointment")
	}

	srv.afterCreate(ctx, appointment)
	srv.events.notify(ctx, shop.OwnerID, service.EventAppointmentBooked,
		"New appointment",
		fmt.Sprintf("%s booked %s on %s at %s", appointment.Customer.Name, appointment.ServiceName, appointment.Date, appointment.Time),
		map[string]string{"appointment_id": appointment.ID.String(), "shop_id": appointment.ShopID.String()},
	)

	return appointment, nil
}

// CreateManual records a walk-in booking for the owner's shop.
func (srv *appointmentService) CreateManual(ctx context.Context, session *entity.Session, input *usecase.ManualAppointmentInput) (*entity.Appointment, error) {
	shopID, err := requireShop(session)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("customer name is required")
	}
	if err := srv.validateSlot(input.Date, input.Time); err != nil {
		return nil, err
	}

	shopService, err := srv.findService(ctx, shopID, input.ServiceID)
	if err != nil {
		return nil, err
	}

	customer := entity.CustomerInfo{
		Name:    strings.TrimSpace(input.CustomerName),
		Email:   normalizeEmail(input.CustomerEmail),
		Contact: strings.TrimSpace(input.CustomerContact),
	}

	appointment := newAppointment(shopService, customer, input.Date, input.Time)
	appointment.ManualEntry = true

	if err := srv.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, errors.Wrap(err, "failed to create appointment")
	}

	srv.afterCreate(ctx, appointment)

	return appointment, nil
}

func (srv *appointmentService) afterCreate(ctx context.Context, appointment *entity.Appointment) {
	srv.metrics.AppointmentTransition("", appointment.Status.String())
	srv.log(ctx).Info("Appointment created",
		slog.Any("appointmentID", appointment.ID),
		slog.Any("shopID", appointment.ShopID),
		slog.Bool("manual", appointment.ManualEntry),
	)

	srv.events.appointmentChanged(ctx, appointment, changeCreated)
}

func appointmentActors(session *entity.Session, appointment *entity.Appointment) []entity.Actor {
	actors := make([]entity.Actor, 0, 2)
	if session.OwnsShop(appointment.ShopID) {
		actors = append(actors, entity.ActorShopOwner)
	}
	if session != nil && appointment.IsCustomer(session.PrincipalID) {
		actors = append(actors, entity.ActorCustomer)
	}

	return actors
}

// TransitionAppointment applies action under a row lock. Completing recomputes
// and stores the bill from the linked orders.
func (srv *appointmentService) TransitionAppointment(
	ctx context.Context,
	session *entity.Session,
	appointmentID uuid.UUID,
	action entity.AppointmentAction,
) (*entity.Appointment, error) {
	var (
		appointment *entity.Appointment
		from        entity.AppointmentStatus
		actor       entity.Actor
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appointmentRepo := repoFactory.NewAppointmentRepository()

		var err error
		appointment, err = appointmentRepo.FindByIDForUpdate(ctx, appointmentID)
		if err != nil {
			return translateNotFound(err, repository.ErrAppointmentNotFound, domainerrors.ErrAppointmentNotFound, "failed to find appointment")
		}

		actors := appointmentActors(session, appointment)
		if len(actors) == 0 {
			return domainerrors.ErrForbidden.WrapMessage("appointment belongs to another principal")
		}

		from = appointment.Status
		next, ok := from, false
		for _, candidate := range actors {
			if next, ok = entity.NextAppointmentStatus(from, action, candidate); ok {
				actor = candidate

				break
			}
		}
		if !ok {
			return domainerrors.ErrInvalidTransition.WrapMessage(fmt.Sprintf("cannot %s an appointment in status %q", action, from))
		}

		var bill string
		if next == entity.AppointmentCompleted {
			linked, err := repoFactory.NewOrderRepository().ListByBooking(ctx, appointment.ShopID, appointment.BookingKey())
			if err != nil {
				return errors.Wrap(err, "failed to list linked orders")
			}

			bill = entity.FormatBill(entity.ComputeBill(appointment.ServicePrice, linked))
			appointment.Bill = bill
		}

		if err := appointmentRepo.UpdateStatus(ctx, appointment.ID, next, bill); err != nil {
			return errors.Wrap(err, "failed to update appointment status")
		}

		appointment.Status = next

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Appointment transition rejected",
			slog.Any("appointmentID", appointmentID),
			slog.String("action", string(action)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute appointment transition")
	}

	srv.metrics.AppointmentTransition(from.String(), appointment.Status.String())
	srv.log(ctx).Info("Appointment status changed",
		slog.Any("appointmentID", appointment.ID),
		slog.String("from", from.String()),
		slog.String("to", appointment.Status.String()),
		slog.String("actor", string(actor)),
	)

	srv.events.appointmentChanged(ctx, appointment, changeStatus)
	srv.notifyCounterpart(ctx, appointment, actor)

	return appointment, nil
}

func (srv *appointmentService) notifyCounterpart(ctx context.Context, appointment *entity.Appointment, actor entity.Actor) {
	data := map[string]string{"appointment_id": appointment.ID.String(), "status": appointment.Status.String()}
	body := fmt.Sprintf("%s on %s is now %s", appointment.ServiceName, appointment.Date, appointment.Status)

	if actor == entity.ActorShopOwner {
		if appointment.Customer.ID != nil {
			srv.events.notify(ctx, *appointment.Customer.ID, service.EventAppointmentStatusChanged, "Appointment update", body, data)
		}

		return
	}

	shop, err := srv.shopRepo.FindByID(ctx, appointment.ShopID)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve shop owner for notification", slog.Any("shopID", appointment.ShopID), slog.Any("error", err))

		return
	}

	srv.events.notify(ctx, shop.OwnerID, service.EventAppointmentStatusChanged, "Appointment update", body, data)
}

var appointmentActionByTarget = map[entity.AppointmentStatus]entity.AppointmentAction{
	entity.AppointmentConfirmed: entity.AppointmentActionConfirm,
	entity.AppointmentCompleted: entity.AppointmentActionComplete,
	entity.AppointmentCancelled: entity.AppointmentActionCancel,
}

func (srv *appointmentService) SetAppointmentStatus(ctx context.Context, session *entity.Session, appointmentID uuid.UUID, label string) (*entity.Appointment, error) {
	target, ok := entity.ParseAppointmentStatus(label)
	if !ok {
		return nil, domainerrors.ErrUnknownStatus.WrapMessage(fmt.Sprintf("unknown appointment status %q", label))
	}

	action, ok := appointmentActionByTarget[target]
	if !ok {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(fmt.Sprintf("appointments cannot move back to %q", target))
	}

	return srv.TransitionAppointment(ctx, session, appointmentID, action)
}

func (srv *appointmentService) GetAppointment(ctx context.Context, session *entity.Session, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := srv.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrAppointmentNotFound, domainerrors.ErrAppointmentNotFound, "failed to find appointment")
	}

	if len(appointmentActors(session, appointment)) == 0 {
		return nil, domainerrors.ErrForbidden.WrapMessage("appointment belongs to another principal")
	}

	return appointment, nil
}

func (srv *appointmentService) ListShopAppointments(ctx context.Context, session *entity.Session, limit int) ([]*entity.Appointment, error) {
	shopID, err := requireShop(session)
	if err != nil {
		return nil, err
	}

	appointments, err := srv.appointmentRepo.ListByShop(ctx, shopID, clampLimit(limit, srv.listLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop appointments")
	}

	return appointments, nil
}

func (srv *appointmentService) ListCustomerAppointments(ctx context.Context, session *entity.Session, limit int) ([]*entity.Appointment, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	appointments, err := srv.appointmentRepo.ListByCustomer(ctx, session.PrincipalID, clampLimit(limit, srv.listLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer appointments")
	}

	return appointments, nil
}

// Bill computes the current bill: service price plus linked, non-canceled orders.
func (srv *appointmentService) Bill(ctx context.Context, session *entity.Session, appointmentID uuid.UUID) (*usecase.BillOutput, error) {
	appointment, err := srv.GetAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	linked, err := srv.orderRepo.ListByBooking(ctx, appointment.ShopID, appointment.BookingKey())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list linked orders")
	}

	total := entity.ComputeBill(appointment.ServicePrice, linked)

	return &usecase.BillOutput{
		AppointmentID: appointment.ID,
		ServicePrice:  appointment.ServicePrice,
		PartsTotal:    total - appointment.ServicePrice,
		Total:         total,
		Orders:        linked,
	}, nil
}
