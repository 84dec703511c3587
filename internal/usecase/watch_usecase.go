package usecase

import (
	"context"

	"autohub/internal/domain/entity"
)

// WatchStream names a live list.
type WatchStream string

const (
	WatchShopOrders           WatchStream = "shop_orders"
	WatchCustomerOrders       WatchStream = "customer_orders"
	WatchShopAppointments     WatchStream = "shop_appointments"
	WatchCustomerAppointments WatchStream = "customer_appointments"
)

// Snapshot is the full current content of a watched list.
type Snapshot struct {
	Stream       WatchStream
	Orders       []*entity.Order
	Appointments []*entity.Appointment
}

// WatchUsecase delivers a fresh snapshot on subscribe and after every change.
// The channel closes when ctx is cancelled.
type WatchUsecase interface {
	Watch(ctx context.Context, session *entity.Session, stream WatchStream) (<-chan Snapshot, error)
}
