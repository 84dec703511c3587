package service

import (
	"context"
)

// EventKind names the marketplace event carried by a NotificationEvent.
type EventKind string

const (
	EventOrderPlaced              EventKind = "order_placed"
	EventOrderStatusChanged       EventKind = "order_status_changed"
	EventAppointmentBooked        EventKind = "appointment_booked"
	EventAppointmentStatusChanged EventKind = "appointment_status_changed"
	EventPasswordReset            EventKind = "password_reset"
)

// NotificationEvent represents an event to be processed by the notifier worker
type NotificationEvent struct {
	EventID     string            `json:"event_id"`
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	Kind        EventKind         `json:"kind"`
	RecipientID string            `json:"recipient_id"`
	Email       string            `json:"email,omitempty"` // Set for mail-only events such as password resets
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
}

// Attributes returns the message attributes used for filtering and tracing.
func (e *NotificationEvent) Attributes() map[string]string {
	attributes := map[string]string{
		"event_id":     e.EventID,
		"kind":         string(e.Kind),
		"recipient_id": e.RecipientID,
	}
	if e.RequestID != "" {
		attributes["request_id"] = e.RequestID
	}

	return attributes
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
