package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeDay_OrderAndAppointmentSales(t *testing.T) {
	shopID := uuid.New()
	today := "2025-03-01"

	orders := []*Order{
		{Status: OrderPlaced, OrderDate: today, Items: []OrderItem{{Part: PartSnapshot{Price: 100}, Quantity: 2}}},
	}
	appointments := []*Appointment{
		{Status: AppointmentConfirmed, Date: today, Bill: "50"},
	}

	summary, failures := SummarizeDay(shopID, today, orders, appointments, nil)
	assert.Empty(t, failures)
	assert.Equal(t, 200.0, summary.OrderSales)
	assert.Equal(t, 50.0, summary.AppointmentSales)
	assert.Equal(t, 250.0, summary.TotalSales)
	assert.Equal(t, 1, summary.PendingOrders)
	assert.Equal(t, 1, summary.TodayAppointments)
}

func TestSummarizeDay_FiltersDateAndCancellations(t *testing.T) {
	today := "2025-03-01"
	item := []OrderItem{{Part: PartSnapshot{Price: 10}, Quantity: 1}}

	orders := []*Order{
		{Status: OrderPlaced, OrderDate: "2025-02-28", Items: item},
		{Status: OrderCanceled, OrderDate: today, Items: item},
		{Status: OrderDelivered, OrderDate: today, Items: item},
	}
	appointments := []*Appointment{
		{ID: uuid.New(), Status: AppointmentCancelled, Date: today, Bill: "500"},
		{ID: uuid.New(), Status: AppointmentPending, Date: today, Bill: "n/a"},
		{ID: uuid.New(), Status: AppointmentCompleted, Date: "2025-02-28", Bill: "70"},
	}
	parts := []*SparePart{
		{ManageInventory: true, Quantity: 0, LowStockLimit: 10},
		{ManageInventory: true, Quantity: 3, LowStockLimit: 10},
		{ManageInventory: false, Quantity: 0, LowStockLimit: 10},
	}

	summary, failures := SummarizeDay(uuid.New(), today, orders, appointments, parts)

	assert.Equal(t, 10.0, summary.OrderSales)
	assert.Equal(t, 0.0, summary.AppointmentSales)
	assert.Equal(t, 1, summary.PendingOrders, "pending counts every date")
	assert.Equal(t, 2, summary.TodayAppointments)
	assert.Equal(t, 1, summary.OutOfStockParts)
	assert.Equal(t, 1, summary.LowStockParts)
	require.Len(t, failures, 1)
	assert.Equal(t, "n/a", failures[0].Bill)
}
