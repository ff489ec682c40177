package service

import "context"

// NotificationPresenter surfaces user-visible notifications.
type NotificationPresenter interface {
	// EnsureChannel registers a notification channel. Idempotent; ensuring an
	// already-known channel is a no-op.
	EnsureChannel(channelID, name, description string, importance ChannelImportance)

	// Show displays a notification to all of a user's devices. Notifications
	// sharing a notificationID replace one another rather than stack.
	Show(ctx context.Context, notificationID int32, channelID, title, body, deepLink, userID string) error
}

// ChannelImportance mirrors the platform notification importance levels.
type ChannelImportance int

const (
	ImportanceDefault ChannelImportance = iota
	ImportanceHigh
)

// DeviceTokenSource resolves the push tokens of a user's registered devices.
type DeviceTokenSource interface {
	Tokens(ctx context.Context, userID string) ([]string, error)
}
