// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"log/slog"
	"slices"

	deliverycontext "autohub/internal/delivery/context"
	"autohub/internal/domain/entity"
	domainerrors "autohub/internal/domain/errors"
	"autohub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// translateNotFound maps a repository sentinel to the user facing error and wraps
// everything else with msg.
func translateNotFound(err, sentinel error, notFound *domainerrors.BaseError, msg string) error {
	if errors.Is(err, sentinel) {
		return notFound.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}

// requireShop returns the shop owned by the session principal.
func requireShop(session *entity.Session) (uuid.UUID, error) {
	if session == nil || !session.IsShopOwner() {
		return uuid.Nil, domainerrors.ErrForbidden.WrapMessage("shop owner role required")
	}

	shopID := session.ShopID()
	if shopID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrShopNotFound.WrapMessage("shop owner has not created a shop yet")
	}

	return shopID, nil
}

func requireSession(session *entity.Session) error {
	if session == nil || session.PrincipalID == uuid.Nil {
		return domainerrors.ErrForbidden.WrapMessage("signed-in principal required")
	}

	return nil
}

// clampLimit applies the configured list limit to a caller supplied value.
func clampLimit(limit, maxLimit int) int {
	if limit <= 0 || limit > maxLimit {
		return maxLimit
	}

	return limit
}

func customerFromSession(session *entity.Session, contact string) entity.CustomerInfo {
	principalID := session.PrincipalID
	customer := entity.CustomerInfo{ID: &principalID, Contact: contact}

	if session.Profile != nil {
		customer.Name = session.Profile.DisplayName
		customer.Email = session.Profile.Email
		if customer.Contact == "" {
			customer.Contact = session.Profile.Phone
		}
	}

	return customer
}

// marketplaceEvents fans committed mutations out to live-query subscribers and
// to the push notification pipeline. Both are best-effort: failures are logged
// and never undo the mutation.
type marketplaceEvents struct {
	feed      service.ChangeFeed
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (ev *marketplaceEvents) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, ev.logger)
}

func (ev *marketplaceEvents) changed(ctx context.Context, kind string, entityID uuid.UUID, topics ...string) {
	if ev.feed == nil {
		return
	}

	for _, topic := range topics {
		change := service.Change{Topic: topic, EntityID: entityID.String(), Kind: kind}
		if err := ev.feed.Publish(ctx, change); err != nil {
			ev.log(ctx).Warn("Failed to publish change", slog.String("topic", topic), slog.Any("error", err))
		}
	}
}

func (ev *marketplaceEvents) notify(ctx context.Context, recipientID uuid.UUID, kind service.EventKind, title, body string, data map[string]string) {
	if ev.publisher == nil || recipientID == uuid.Nil {
		return
	}

	event := &service.NotificationEvent{
		EventID:     uuid.NewString(),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Kind:        kind,
		RecipientID: recipientID.String(),
		Title:       title,
		Body:        body,
		Data:        data,
	}

	if err := ev.publisher.PublishNotificationEvent(ctx, event); err != nil {
		ev.log(ctx).Warn("Failed to publish notification event",
			slog.String("kind", string(kind)),
			slog.String("recipientID", event.RecipientID),
			slog.Any("error", err),
		)
	}
}

func (ev *marketplaceEvents) orderChanged(ctx context.Context, order *entity.Order, kind string) {
	topics := []string{service.ShopOrdersTopic(order.ShopID)}
	if order.Customer.ID != nil {
		topics = append(topics, service.CustomerOrdersTopic(*order.Customer.ID))
	}

	ev.changed(ctx, kind, order.ID, topics...)
}

func (ev *marketplaceEvents) appointmentChanged(ctx context.Context, appointment *entity.Appointment, kind string) {
	topics := []string{service.ShopAppointmentsTopic(appointment.ShopID)}
	if appointment.Customer.ID != nil {
		topics = append(topics, service.CustomerAppointmentsTopic(*appointment.Customer.ID))
	}

	ev.changed(ctx, kind, appointment.ID, topics...)
}

// lockOrder returns the indexes of ids sorted by id. Rows touched in this order
// are locked in the same sequence by every transaction.
func lockOrder(ids []uuid.UUID) []int {
	order := make([]int, len(ids))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return bytes.Compare(ids[a][:], ids[b][:])
	})

	return order
}
