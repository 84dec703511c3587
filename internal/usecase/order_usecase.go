package usecase

import (
	"context"

	"autohub/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLineInput is one requested spare part and quantity.
type OrderLineInput struct {
	PartID   uuid.UUID
	Quantity int
}

// PlaceOrderInput is a customer's order for parts of one shop.
type PlaceOrderInput struct {
	ShopID              uuid.UUID
	Items               []OrderLineInput
	Address             string
	Contact             string
	SpecialRequirements string
}

// ManualOrderInput is a walk-in sale recorded by the shop owner.
type ManualOrderInput struct {
	Items               []OrderLineInput
	CustomerName        string
	CustomerEmail       string
	CustomerContact     string
	Address             string
	SpecialRequirements string
	// BookingID links the parts to an appointment of the same shop.
	BookingID string
}

// OrderUsecase drives the order lifecycle.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, session *entity.Session, input *PlaceOrderInput) (*entity.Order, error)
	CreateManualOrder(ctx context.Context, session *entity.Session, input *ManualOrderInput) (*entity.Order, error)
	TransitionOrder(ctx context.Context, session *entity.Session, orderID uuid.UUID, action entity.OrderAction) (*entity.Order, error)
	// SetOrderStatus accepts a target status label and applies the matching action.
	SetOrderStatus(ctx context.Context, session *entity.Session, orderID uuid.UUID, label string) (*entity.Order, error)
	GetOrder(ctx context.Context, session *entity.Session, orderID uuid.UUID) (*entity.Order, error)
	ListShopOrders(ctx context.Context, session *entity.Session, limit int) ([]*entity.Order, error)
	ListCustomerOrders(ctx context.Context, session *entity.Session, limit int) ([]*entity.Order, error)
	ListBookingOrders(ctx context.Context, session *entity.Session, appointmentID uuid.UUID) ([]*entity.Order, error)
}
