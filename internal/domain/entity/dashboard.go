package entity

import "github.com/google/uuid"

// DashboardSummary is the daily view of a shop.
type DashboardSummary struct {
	ShopID            uuid.UUID
	Date              string
	OrderSales        float64
	AppointmentSales  float64
	TotalSales        float64
	PendingOrders     int
	TodayAppointments int
	TodayOrders       int
	LowStockParts     int
	OutOfStockParts   int
	UnparsableBills   int // Bills that could not be parsed and were counted as zero.
}

// BillParseFailure is reported for each appointment bill that could not be read.
type BillParseFailure struct {
	AppointmentID uuid.UUID
	Bill          string
}

// SummarizeDay aggregates one shop's lists for the given date in a single pass
// over each list. Canceled orders and cancelled appointments do not count as sales.
func SummarizeDay(
	shopID uuid.UUID,
	date string,
	orders []*Order,
	appointments []*Appointment,
	parts []*SparePart,
) (*DashboardSummary, []BillParseFailure) {
	summary := &DashboardSummary{ShopID: shopID, Date: date}

	var failures []BillParseFailure

	for _, order := range orders {
		if order.Status.IsPendingBucket() {
			summary.PendingOrders++
		}

		if order.OrderDate != date || order.Status == OrderCanceled {
			continue
		}

		summary.TodayOrders++
		summary.OrderSales += float64(order.Total())
	}

	for _, appointment := range appointments {
		if appointment.Date != date {
			continue
		}

		summary.TodayAppointments++

		if appointment.Status == AppointmentCancelled {
			continue
		}

		amount, ok := appointment.BillAmount()
		if !ok {
			summary.UnparsableBills++
			failures = append(failures, BillParseFailure{AppointmentID: appointment.ID, Bill: appointment.Bill})

			continue
		}

		summary.AppointmentSales += amount
	}

	for _, part := range parts {
		if part.IsOutOfStock() {
			summary.OutOfStockParts++
		} else if part.IsLowStock() {
			summary.LowStockParts++
		}
	}

	summary.TotalSales = summary.OrderSales + summary.AppointmentSales

	return summary, failures
}
