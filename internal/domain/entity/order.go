package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the canonical label of an order's lifecycle state.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "Order Placed"
	OrderConfirmed OrderStatus = "Order Confirmed"
	OrderDelivered OrderStatus = "Order Delivered"
	OrderReceived  OrderStatus = "Order Received"
	OrderCanceled  OrderStatus = "Canceled"
)

// orderStatusAliases maps lower-cased stored labels to their canonical state.
// Older records used short labels, both spellings of cancel and "completed".
var orderStatusAliases = map[string]OrderStatus{
	"order placed":    OrderPlaced,
	"placed":          OrderPlaced,
	"pending":         OrderPlaced,
	"order confirmed": OrderConfirmed,
	"confirmed":       OrderConfirmed,
	"order delivered": OrderDelivered,
	"delivered":       OrderDelivered,
	"order received":  OrderReceived,
	"received":        OrderReceived,
	"completed":       OrderReceived,
	"canceled":        OrderCanceled,
	"cancelled":       OrderCanceled,
	"order canceled":  OrderCanceled,
	"order cancelled": OrderCanceled,
}

// ParseOrderStatus canonicalises a stored or user supplied label. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseOrderStatus(label string) (OrderStatus, bool) {
	status, ok := orderStatusAliases[strings.ToLower(strings.TrimSpace(label))]

	return status, ok
}

// String returns the canonical label.
func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderReceived || s == OrderCanceled
}

// IsPendingBucket reports whether the order still waits for the shop.
func (s OrderStatus) IsPendingBucket() bool {
	return s == OrderPlaced
}

// OrderAction is a role-specific request to move an order forward.
type OrderAction string

const (
	OrderActionConfirm OrderAction = "confirm"
	OrderActionDeliver OrderAction = "deliver"
	OrderActionReceive OrderAction = "receive"
	OrderActionCancel  OrderAction = "cancel"
)

// Actor is the party requesting a transition.
type Actor string

const (
	ActorCustomer  Actor = "customer"
	ActorShopOwner Actor = "shop_owner"
)

type orderTransition struct {
	from   OrderStatus
	action OrderAction
}

type transitionRule[S any] struct {
	to     S
	actors []Actor
}

var orderTransitions = map[orderTransition]transitionRule[OrderStatus]{
	{OrderPlaced, OrderActionConfirm}:    {OrderConfirmed, []Actor{ActorShopOwner}},
	{OrderConfirmed, OrderActionDeliver}: {OrderDelivered, []Actor{ActorShopOwner}},
	{OrderDelivered, OrderActionReceive}: {OrderReceived, []Actor{ActorCustomer}},
	{OrderPlaced, OrderActionCancel}:     {OrderCanceled, []Actor{ActorCustomer, ActorShopOwner}},
	{OrderConfirmed, OrderActionCancel}:  {OrderCanceled, []Actor{ActorCustomer, ActorShopOwner}},
}

// NextOrderStatus returns the state reached when actor applies action in from.
func NextOrderStatus(from OrderStatus, action OrderAction, actor Actor) (OrderStatus, bool) {
	rule, ok := orderTransitions[orderTransition{from, action}]
	if !ok || !slices.Contains(rule.actors, actor) {
		return from, false
	}

	return rule.to, true
}

// AllowedOrderActions lists the actions actor may take in the given state.
func AllowedOrderActions(from OrderStatus, actor Actor) []OrderAction {
	actions := make([]OrderAction, 0, 2)
	for _, action := range []OrderAction{OrderActionConfirm, OrderActionDeliver, OrderActionReceive, OrderActionCancel} {
		if _, ok := NextOrderStatus(from, action, actor); ok {
			actions = append(actions, action)
		}
	}

	return actions
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID               uuid.UUID
	OrderID          uuid.UUID
	Part             PartSnapshot
	Quantity         int // Positive.
	DeductedQuantity int // Amount actually removed from inventory, restored on cancel.
}

// LineTotal is the snapshot price times the ordered quantity.
func (i OrderItem) LineTotal() int64 {
	return i.Part.Price * int64(i.Quantity)
}

// CustomerInfo identifies who an order or appointment is for. Manual entries
// may carry a walk-in customer with no account.
type CustomerInfo struct {
	ID      *uuid.UUID
	Name    string
	Email   string
	Contact string
}

// Order is the aggregate for a purchase of one or more spare parts from one shop.
type Order struct {
	ID                  uuid.UUID
	ShopID              uuid.UUID
	Customer            CustomerInfo
	Items               []OrderItem
	Status              OrderStatus
	Address             string
	SpecialRequirements string
	OrderDate           string // Calendar date in the configured layout, used by the dashboard.
	BookingID           string // Booking key of the appointment whose service consumed these parts.
	ManualEntry         bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Total sums the line totals of all items.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.LineTotal()
	}

	return total
}

// IsCustomer reports whether principalID placed the order.
func (o *Order) IsCustomer(principalID uuid.UUID) bool {
	return o.Customer.ID != nil && *o.Customer.ID == principalID
}
