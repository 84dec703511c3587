package entity

import (
	"slices"
	"time"
)

// ActivityKind tags the variant held by an ActivityItem.
type ActivityKind string

const (
	ActivityOrder       ActivityKind = "order"
	ActivityAppointment ActivityKind = "appointment"
)

// ActivityItem is either an order or an appointment. Build it with
// NewOrderActivity or NewAppointmentActivity and read it through Match.
type ActivityItem struct {
	kind        ActivityKind
	order       *Order
	appointment *Appointment
}

// NewOrderActivity wraps an order.
func NewOrderActivity(order *Order) ActivityItem {
	return ActivityItem{kind: ActivityOrder, order: order}
}

// NewAppointmentActivity wraps an appointment.
func NewAppointmentActivity(appointment *Appointment) ActivityItem {
	return ActivityItem{kind: ActivityAppointment, appointment: appointment}
}

// Kind returns the variant tag.
func (a ActivityItem) Kind() ActivityKind {
	return a.kind
}

// Match dispatches to the handler for the held variant.
func Match[T any](a ActivityItem, onOrder func(*Order) T, onAppointment func(*Appointment) T) T {
	if a.kind == ActivityOrder {
		return onOrder(a.order)
	}

	return onAppointment(a.appointment)
}

// CreatedAt returns the creation time of the held variant.
func (a ActivityItem) CreatedAt() time.Time {
	return Match(a,
		func(o *Order) time.Time { return o.CreatedAt },
		func(ap *Appointment) time.Time { return ap.CreatedAt },
	)
}

// MergeActivity combines orders and appointments, newest first.
func MergeActivity(orders []*Order, appointments []*Appointment) []ActivityItem {
	items := make([]ActivityItem, 0, len(orders)+len(appointments))
	for _, order := range orders {
		items = append(items, NewOrderActivity(order))
	}

	for _, appointment := range appointments {
		items = append(items, NewAppointmentActivity(appointment))
	}

	slices.SortStableFunc(items, func(a, b ActivityItem) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})

	return items
}
