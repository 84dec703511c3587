package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Change tells live-query subscribers that a watched collection changed.
// It carries no payload; subscribers re-query to get a full snapshot.
type Change struct {
	Topic    string `json:"topic"`
	EntityID string `json:"entity_id"`
	Kind     string `json:"kind"`
}

// ChangeFeed fans out change notifications to live-query subscribers.
type ChangeFeed interface {
	// Publish announces a change on topic.
	Publish(ctx context.Context, change Change) error

	// Subscribe returns a channel of changes on topic that is closed when ctx ends.
	Subscribe(ctx context.Context, topic string) (<-chan Change, error)

	// Close releases the underlying connections.
	Close() error
}

// ShopOrdersTopic is watched by the owner's order list.
func ShopOrdersTopic(shopID uuid.UUID) string {
	return fmt.Sprintf("orders:shop:%s", shopID)
}

func CustomerOrdersTopic(customerID uuid.UUID) string {
	return fmt.Sprintf("orders:customer:%s", customerID)
}

func ShopAppointmentsTopic(shopID uuid.UUID) string {
	return fmt.Sprintf("appointments:shop:%s", shopID)
}

func CustomerAppointmentsTopic(customerID uuid.UUID) string {
	return fmt.Sprintf("appointments:customer:%s", customerID)
}
