package service

import (
	"context"

	"leafcare/internal/errors"
)

// NotificationService sends push notifications.
type NotificationService interface {
	// SendTopicNotification broadcasts a notification to every device subscribed to topic.
	// It returns the provider's message ID.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) (string, error)
}

// ErrNotificationsDisabled is returned by the notification service when no provider is configured.
var ErrNotificationsDisabled = errors.New("push notifications are not configured")
