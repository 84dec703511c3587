package service

import (
	"context"
	"errors"
)

// ErrInvalidPushToken means the device token is no longer registered; the
// caller clears it from the profile.
var ErrInvalidPushToken = errors.New("push token is invalid or unregistered")

// NotificationService delivers device push messages.
type NotificationService interface {
	// SendBatchNotification reports per-token outcomes instead of failing the batch.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
