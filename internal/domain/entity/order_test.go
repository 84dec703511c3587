package entity

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		label string
		want  OrderStatus
		ok    bool
	}{
		{"Order Placed", OrderPlaced, true},
		{"pending", OrderPlaced, true},
		{"  PENDING ", OrderPlaced, true},
		{"order confirmed", OrderConfirmed, true},
		{"Delivered", OrderDelivered, true},
		{"completed", OrderReceived, true},
		{"Cancelled", OrderCanceled, true},
		{"canceled", OrderCanceled, true},
		{"shipped", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseOrderStatus(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextOrderStatus_RoleRules(t *testing.T) {
	tests := []struct {
		name   string
		from   OrderStatus
		action OrderAction
		actor  Actor
		want   OrderStatus
		ok     bool
	}{
		{"owner confirms placed", OrderPlaced, OrderActionConfirm, ActorShopOwner, OrderConfirmed, true},
		{"customer cannot confirm", OrderPlaced, OrderActionConfirm, ActorCustomer, OrderPlaced, false},
		{"owner delivers confirmed", OrderConfirmed, OrderActionDeliver, ActorShopOwner, OrderDelivered, true},
		{"owner cannot skip to delivered", OrderPlaced, OrderActionDeliver, ActorShopOwner, OrderPlaced, false},
		{"customer receives delivered", OrderDelivered, OrderActionReceive, ActorCustomer, OrderReceived, true},
		{"owner cannot receive", OrderDelivered, OrderActionReceive, ActorShopOwner, OrderDelivered, false},
		{"customer cancels placed", OrderPlaced, OrderActionCancel, ActorCustomer, OrderCanceled, true},
		{"owner cancels confirmed", OrderConfirmed, OrderActionCancel, ActorShopOwner, OrderCanceled, true},
		{"no cancel after delivery", OrderDelivered, OrderActionCancel, ActorCustomer, OrderDelivered, false},
		{"received is terminal", OrderReceived, OrderActionCancel, ActorShopOwner, OrderReceived, false},
		{"canceled is terminal", OrderCanceled, OrderActionConfirm, ActorShopOwner, OrderCanceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextOrderStatus(tt.from, tt.action, tt.actor)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllowedOrderActions(t *testing.T) {
	assert.Equal(t, []OrderAction{OrderActionConfirm, OrderActionCancel}, AllowedOrderActions(OrderPlaced, ActorShopOwner))
	assert.Equal(t, []OrderAction{OrderActionCancel}, AllowedOrderActions(OrderPlaced, ActorCustomer))
	assert.Equal(t, []OrderAction{OrderActionReceive}, AllowedOrderActions(OrderDelivered, ActorCustomer))
	assert.Empty(t, AllowedOrderActions(OrderDelivered, ActorShopOwner))
	assert.Empty(t, AllowedOrderActions(OrderReceived, ActorCustomer))
}

var orderRank = map[OrderStatus]int{
	OrderPlaced:    0,
	OrderConfirmed: 1,
	OrderDelivered: 2,
	OrderReceived:  3,
}

func TestOrderLifecycle_NeverSkipsOrReverses(t *testing.T) {
	actions := []OrderAction{OrderActionConfirm, OrderActionDeliver, OrderActionReceive, OrderActionCancel}
	actors := []Actor{ActorCustomer, ActorShopOwner}

	properties := gopter.NewProperties(nil)

	properties.Property("observed order statuses only move one step forward or to Canceled", prop.ForAll(
		func(steps []int) bool {
			status := OrderPlaced
			for _, step := range steps {
				next, ok := NextOrderStatus(status, actions[step%4], actors[step/4])
				if !ok {
					if next != status {
						return false
					}

					continue
				}

				switch {
				case next == OrderCanceled:
					if status != OrderPlaced && status != OrderConfirmed {
						return false
					}
				case orderRank[next] != orderRank[status]+1:
					return false
				}

				if status.IsTerminal() {
					return false
				}

				status = next
			}

			return true
		},
		gen.SliceOf(gen.IntRange(0, 7)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestOrder_Total(t *testing.T) {
	order := &Order{Items: []OrderItem{
		{Part: PartSnapshot{Price: 100}, Quantity: 2},
		{Part: PartSnapshot{Price: 35}, Quantity: 1},
	}}

	assert.Equal(t, int64(235), order.Total())
	assert.Equal(t, int64(0), (&Order{}).Total())
}
