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

// Change kinds published on the order and appointment topics.
const (
	changeCreated = "created"
	changeStatus  = "status"
)

type orderService struct {
	txManager       repository.TransactionManager
	orderRepo       repository.OrderRepository
	shopRepo        repository.ShopRepository
	appointmentRepo repository.AppointmentRepository
	metrics         service.Metrics
	events          *marketplaceEvents
	dateLayout      string
	listLimit       int
	now             func() time.Time
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	OrderRepo       repository.OrderRepository
	ShopRepo        repository.ShopRepository
	AppointmentRepo repository.AppointmentRepository
	ChangeFeed      service.ChangeFeed
	Publisher       service.EventPublisher
	Metrics         service.Metrics
	Config          *config.Config
	Logger          *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	dateLayout, listLimit := time.DateOnly, 100
	if params.Config != nil && params.Config.Marketplace != nil {
		dateLayout = params.Config.Marketplace.DateLayout
		listLimit = params.Config.Marketplace.ListLimit
	}

	return &orderService{
		txManager:       params.TxManager,
		orderRepo:       params.OrderRepo,
		shopRepo:        params.ShopRepo,
		appointmentRepo: params.AppointmentRepo,
		metrics:         params.Metrics,
		events:          &marketplaceEvents{feed: params.ChangeFeed, publisher: params.Publisher, logger: params.Logger},
		dateLayout:      dateLayout,
		listLimit:       listLimit,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateOrderLines(lines []usecase.OrderLineInput) error {
	if len(lines) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("an order needs at least one item")
	}

	for _, line := range lines {
		if line.PartID == uuid.Nil {
			return domainerrors.ErrValidationFailed.WrapMessage("item part id is required")
		}
		if line.Quantity <= 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("item quantity must be positive")
		}
	}

	return nil
}

// PlaceOrder records a customer's order and decrements inventory in the same transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, session *entity.Session, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	if input.ShopID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("shop id is required")
	}
	if err := validateOrderLines(input.Items); err != nil {
		return nil, err
	}

	order := &entity.Order{
		ShopID:              input.ShopID,
		Customer:            customerFromSession(session, strings.TrimSpace(input.Contact)),
		Status:              entity.OrderPlaced,
		Address:             strings.TrimSpace(input.Address),
		SpecialRequirements: strings.TrimSpace(input.SpecialRequirements),
		OrderDate:           srv.now().Format(srv.dateLayout),
	}

	var shop *entity.Shop
	removed, err := srv.createWithInventory(ctx, order, input.Items, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if shop, err = repoFactory.NewShopRepository().FindByID(ctx, input.ShopID); err != nil {
			return translateNotFound(err, repository.ErrShopNotFound, domainerrors.ErrShopNotFound, "failed to find shop")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to place order", slog.Any("shopID", input.ShopID), slog.Any("error", err))

		return nil, err
	}

	srv.afterCreate(ctx, order, removed)
	srv.events.notify(ctx, shop.OwnerID, service.EventOrderPlaced,
		"New order",
		fmt.Sprintf("%s ordered %d item(s)", order.Customer.Name, len(order.Items)),
		map[string]string{"order_id": order.ID.String(), "shop_id": order.ShopID.String()},
	)

	return order, nil
}

// CreateManualOrder records a walk-in sale for the owner's shop.
func (srv *orderService) CreateManualOrder(ctx context.Context, session *entity.Session, input *usecase.ManualOrderInput) (*entity.Order, error) {
	shopID, err := requireShop(session)
	if err != nil {
		return nil, err
	}
	if err := validateOrderLines(input.Items); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("customer name is required")
	}

	order := &entity.Order{
		ShopID: shopID,
		Customer: entity.CustomerInfo{
			Name:    strings.TrimSpace(input.CustomerName),
			Email:   normalizeEmail(input.CustomerEmail),
			Contact: strings.TrimSpace(input.CustomerContact),
		},
		Status:              entity.OrderPlaced,
		Address:             strings.TrimSpace(input.Address),
		SpecialRequirements: strings.TrimSpace(input.SpecialRequirements),
		OrderDate:           srv.now().Format(srv.dateLayout),
		BookingID:           strings.TrimSpace(input.BookingID),
		ManualEntry:         true,
	}

	removed, err := srv.createWithInventory(ctx, order, input.Items, func(repoFactory repository.RepositoryFactory) error {
		return srv.resolveBooking(ctx, repoFactory, order)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create manual order", slog.Any("shopID", shopID), slog.Any("error", err))

		return nil, err
	}

	srv.afterCreate(ctx, order, removed)

	return order, nil
}

// resolveBooking checks that a booking id naming an appointment belongs to the
// same shop and is still open, then stores the appointment's booking key. Legacy keys that are not
// identifiers are kept verbatim.
func (srv *orderService) resolveBooking(ctx context.Context, repoFactory repository.RepositoryFactory, order *entity.Order) error {
	if order.BookingID == "" {
		return nil
	}

	appointmentID, err := uuid.Parse(order.BookingID)
	if err != nil {
		return nil
	}

	appointment, err := repoFactory.NewAppointmentRepository().FindByID(ctx, appointmentID)
	if err != nil {
		return translateNotFound(err, repository.ErrAppointmentNotFound, domainerrors.ErrAppointmentNotFound, "failed to find booked appointment")
	}
	if appointment.ShopID != order.ShopID {
		return domainerrors.ErrValidationFailed.WrapMessage("booking belongs to another shop")
	}
	// The bill of a closed appointment is frozen.
	if appointment.Status.IsTerminal() {
		return domainerrors.ErrInvalidTransition.WrapMessage(fmt.Sprintf("cannot add parts to a %s appointment", appointment.Status))
	}

	order.BookingID = appointment.BookingKey()

	return nil
}

// createWithInventory snapshots each part, decrements its stock and inserts the
// order atomically. It returns the total amount removed from inventory.
func (srv *orderService) createWithInventory(
	ctx context.Context,
	order *entity.Order,
	lines []usecase.OrderLineInput,
	prepare func(repository.RepositoryFactory) error,
) (int, error) {
	var removedTotal int

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := prepare(repoFactory); err != nil {
			return err
		}

		partRepo := repoFactory.NewSparePartRepository()
		order.Items = make([]entity.OrderItem, len(lines))
		removedTotal = 0

		partIDs := make([]uuid.UUID, len(lines))
		for i, line := range lines {
			partIDs[i] = line.PartID
		}

		for _, i := range lockOrder(partIDs) {
			line := lines[i]
			part, err := partRepo.FindByID(ctx, line.PartID)
			if err != nil {
				return translateNotFound(err, repository.ErrSparePartNotFound, domainerrors.ErrSparePartNotFound, "failed to find spare part")
			}
			if part.ShopID != order.ShopID {
				return domainerrors.ErrValidationFailed.WrapMessage("spare part belongs to another shop")
			}

			_, removed, err := partRepo.DecreaseQuantity(ctx, part.ID, line.Quantity)
			if err != nil {
				return errors.Wrap(err, "failed to decrease quantity")
			}

			removedTotal += removed
			order.Items[i] = entity.OrderItem{
				Part:             part.Snapshot(),
				Quantity:         line.Quantity,
				DeductedQuantity: removed,
			}
		}

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to execute create order transaction")
	}

	return removedTotal, nil
}

func (srv *orderService) afterCreate(ctx context.Context, order *entity.Order, removed int) {
	srv.metrics.OrderTransition("", order.Status.String())
	if removed > 0 {
		srv.metrics.InventoryAdjusted(inventoryDecrease, removed)
	}

	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("shopID", order.ShopID),
		slog.Bool("manual", order.ManualEntry),
		slog.Int64("total", order.Total()),
	)

	srv.events.orderChanged(ctx, order, changeCreated)
}

// orderActors lists the roles the session may act as on order, shop owner first.
func orderActors(session *entity.Session, order *entity.Order) []entity.Actor {
	actors := make([]entity.Actor, 0, 2)
	if session.OwnsShop(order.ShopID) {
		actors = append(actors, entity.ActorShopOwner)
	}
	if session != nil && order.IsCustomer(session.PrincipalID) {
		actors = append(actors, entity.ActorCustomer)
	}

	return actors
}

// TransitionOrder applies action under a row lock. Cancelling restocks every
// item's deducted amount in the same transaction.
func (srv *orderService) TransitionOrder(ctx context.Context, session *entity.Session, orderID uuid.UUID, action entity.OrderAction) (*entity.Order, error) {
	var (
		order    *entity.Order
		from     entity.OrderStatus
		actor    entity.Actor
		restored int
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return translateNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to find order")
		}

		actors := orderActors(session, order)
		if len(actors) == 0 {
			return domainerrors.ErrForbidden.WrapMessage("order belongs to another principal")
		}

		from = order.Status
		next, ok := from, false
		for _, candidate := range actors {
			if next, ok = entity.NextOrderStatus(from, action, candidate); ok {
				actor = candidate

				break
			}
		}
		if !ok {
			return domainerrors.ErrInvalidTransition.WrapMessage(fmt.Sprintf("cannot %s an order in status %q", action, from))
		}

		if next == entity.OrderCanceled {
			partRepo := repoFactory.NewSparePartRepository()
			restored = 0
			partIDs := make([]uuid.UUID, len(order.Items))
			for i, item := range order.Items {
				partIDs[i] = item.Part.PartID
			}
			for _, i := range lockOrder(partIDs) {
				item := order.Items[i]
				if item.DeductedQuantity <= 0 {
					continue
				}
				if err := partRepo.RestoreQuantity(ctx, item.Part.PartID, item.DeductedQuantity); err != nil {
					return errors.Wrap(err, "failed to restock canceled order")
				}
				restored += item.DeductedQuantity
			}
		}

		if err := orderRepo.UpdateStatus(ctx, order.ID, next); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		order.Status = next

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Order transition rejected", slog.Any("orderID", orderID), slog.String("action", string(action)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order transition")
	}

	srv.metrics.OrderTransition(from.String(), order.Status.String())
	if restored > 0 {
		srv.metrics.InventoryAdjusted(inventoryRestore, restored)
	}

	srv.log(ctx).Info("Order status changed",
		slog.Any("orderID", order.ID),
		slog.String("from", from.String()),
		slog.String("to", order.Status.String()),
		slog.String("actor", string(actor)),
	)

	srv.events.orderChanged(ctx, order, changeStatus)
	srv.notifyCounterpart(ctx, order, actor)

	return order, nil
}

func (srv *orderService) notifyCounterpart(ctx context.Context, order *entity.Order, actor entity.Actor) {
	data := map[string]string{"order_id": order.ID.String(), "status": order.Status.String()}
	body := fmt.Sprintf("Order %s is now %s", order.ID.String()[:8], order.Status)

	if actor == entity.ActorShopOwner {
		if order.Customer.ID != nil {
			srv.events.notify(ctx, *order.Customer.ID, service.EventOrderStatusChanged, "Order update", body, data)
		}

		return
	}

	shop, err := srv.shopRepo.FindByID(ctx, order.ShopID)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve shop owner for notification", slog.Any("shopID", order.ShopID), slog.Any("error", err))

		return
	}

	srv.events.notify(ctx, shop.OwnerID, service.EventOrderStatusChanged, "Order update", body, data)
}

var orderActionByTarget = map[entity.OrderStatus]entity.OrderAction{
	entity.OrderConfirmed: entity.OrderActionConfirm,
	entity.OrderDelivered: entity.OrderActionDeliver,
	entity.OrderReceived:  entity.OrderActionReceive,
	entity.OrderCanceled:  entity.OrderActionCancel,
}

// SetOrderStatus maps a target label onto the action that reaches it.
func (srv *orderService) SetOrderStatus(ctx context.Context, session *entity.Session, orderID uuid.UUID, label string) (*entity.Order, error) {
	target, ok := entity.ParseOrderStatus(label)
	if !ok {
		return nil, domainerrors.ErrUnknownStatus.WrapMessage(fmt.Sprintf("unknown order status %q", label))
	}

	action, ok := orderActionByTarget[target]
	if !ok {
		return nil, domainerrors.ErrInvalidTransition.WrapMessage(fmt.Sprintf("orders cannot move back to %q", target))
	}

	return srv.TransitionOrder(ctx, session, orderID, action)
}

func (srv *orderService) GetOrder(ctx context.Context, session *entity.Session, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound, "failed to find order")
	}

	if len(orderActors(session, order)) == 0 {
		return nil, domainerrors.ErrForbidden.WrapMessage("order belongs to another principal")
	}

	return order, nil
}

func (srv *orderService) ListShopOrders(ctx context.Context, session *entity.Session, limit int) ([]*entity.Order, error) {
	shopID, err := requireShop(session)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByShop(ctx, shopID, clampLimit(limit, srv.listLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop orders")
	}

	return orders, nil
}

func (srv *orderService) ListCustomerOrders(ctx context.Context, session *entity.Session, limit int) ([]*entity.Order, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.ListByCustomer(ctx, session.PrincipalID, clampLimit(limit, srv.listLimit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer orders")
	}

	return orders, nil
}

// ListBookingOrders returns the parts orders linked to an appointment.
func (srv *orderService) ListBookingOrders(ctx context.Context, session *entity.Session, appointmentID uuid.UUID) ([]*entity.Order, error) {
	appointment, err := srv.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, translateNotFound(err, repository.ErrAppointmentNotFound, domainerrors.ErrAppointmentNotFound, "failed to find appointment")
	}

	if !session.OwnsShop(appointment.ShopID) && (session == nil || !appointment.IsCustomer(session.PrincipalID)) {
		return nil, domainerrors.ErrForbidden.WrapMessage("appointment belongs to another principal")
	}

	orders, err := srv.orderRepo.ListByBooking(ctx, appointment.ShopID, appointment.BookingKey())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list booking orders")
	}

	return orders, nil
}
