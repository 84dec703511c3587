package repository

import (
	"context"
	"errors"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists order aggregates together with their items.
type OrderRepository interface {
	// Create inserts the order and all of its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID loads an order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate loads an order and locks its row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	ListByShop(ctx context.Context, shopID uuid.UUID, limit int) ([]*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.Order, error)

	// ListByBooking returns the orders of a shop linked to an appointment's booking key.
	ListByBooking(ctx context.Context, shopID uuid.UUID, bookingKey string) ([]*entity.Order, error)

	// UpdateStatus overwrites the status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
