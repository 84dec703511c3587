package usecase

import (
	"context"

	"autohub/internal/domain/service"
)

// NotificationUsecase delivers published notification events to devices.
type NotificationUsecase interface {
	// Deliver reports retryable failures as errors; permanent failures are logged and dropped.
	Deliver(ctx context.Context, event *service.NotificationEvent) error
}
