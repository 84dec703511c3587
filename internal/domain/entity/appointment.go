package entity

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the canonical label of an appointment's lifecycle state.
// The labels keep their historical casing.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentConfirmed AppointmentStatus = "Confirmed"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

var appointmentStatusAliases = map[string]AppointmentStatus{
	"pending":   AppointmentPending,
	"confirmed": AppointmentConfirmed,
	"completed": AppointmentCompleted,
	"complete":  AppointmentCompleted,
	"cancelled": AppointmentCancelled,
	"canceled":  AppointmentCancelled,
}

// ParseAppointmentStatus canonicalises a stored or user supplied label.
func ParseAppointmentStatus(label string) (AppointmentStatus, bool) {
	status, ok := appointmentStatusAliases[strings.ToLower(strings.TrimSpace(label))]

	return status, ok
}

// String returns the canonical label.
func (s AppointmentStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is possible.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled
}

// AppointmentAction is a request to move an appointment forward.
type AppointmentAction string

const (
	AppointmentActionConfirm  AppointmentAction = "confirm"
	AppointmentActionComplete AppointmentAction = "complete"
	AppointmentActionCancel   AppointmentAction = "cancel"
)

type appointmentTransition struct {
	from   AppointmentStatus
	action AppointmentAction
}

var appointmentTransitions = map[appointmentTransition]transitionRule[AppointmentStatus]{
	{AppointmentPending, AppointmentActionConfirm}:    {AppointmentConfirmed, []Actor{ActorShopOwner}},
	{AppointmentConfirmed, AppointmentActionComplete}: {AppointmentCompleted, []Actor{ActorShopOwner}},
	{AppointmentPending, AppointmentActionCancel}:     {AppointmentCancelled, []Actor{ActorShopOwner, ActorCustomer}},
}

// NextAppointmentStatus returns the state reached when actor applies action in from.
func NextAppointmentStatus(from AppointmentStatus, action AppointmentAction, actor Actor) (AppointmentStatus, bool) {
	rule, ok := appointmentTransitions[appointmentTransition{from, action}]
	if !ok || !slices.Contains(rule.actors, actor) {
		return from, false
	}

	return rule.to, true
}

// Appointment is a booked service slot at a shop.
type Appointment struct {
	ID            uuid.UUID
	AppointmentID string // Legacy external identifier; preferred as booking key when set.
	ShopID        uuid.UUID
	Customer      CustomerInfo
	ServiceID     uuid.UUID
	ServiceName   string
	ServiceImage  string
	ServicePrice  float64
	Status        AppointmentStatus
	Date          string // Calendar date in the configured layout.
	Time          string
	Bill          string // Decimal amount, string encoded.
	ManualEntry   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BookingKey is the value linked orders carry as their booking reference.
func (a *Appointment) BookingKey() string {
	if a.AppointmentID != "" {
		return a.AppointmentID
	}

	return a.ID.String()
}

// IsCustomer reports whether principalID booked the appointment.
func (a *Appointment) IsCustomer(principalID uuid.UUID) bool {
	return a.Customer.ID != nil && *a.Customer.ID == principalID
}

// BillAmount parses the stored bill. ok is false for an empty or malformed value.
func (a *Appointment) BillAmount() (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(a.Bill), 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// ComputeBill returns the service price plus the line totals of linked orders.
func ComputeBill(servicePrice float64, linked []*Order) float64 {
	total := servicePrice
	for _, order := range linked {
		if order.Status == OrderCanceled {
			continue
		}

		total += float64(order.Total())
	}

	return total
}

// FormatBill encodes an amount the way bills are stored.
func FormatBill(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
