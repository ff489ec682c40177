// Package notification implements the notification presenter on Firebase
// Cloud Messaging.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"nudge/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

type fcmPresenter struct {
	client *messaging.Client
	tokens service.DeviceTokenSource
	logger *slog.Logger

	mu       sync.Mutex
	channels map[string]struct{}
}

// NewFCMPresenter creates a presenter that delivers notifications through
// Firebase Cloud Messaging.
func NewFCMPresenter(ctx context.Context, app *firebase.App, tokens service.DeviceTokenSource, logger *slog.Logger) (service.NotificationPresenter, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmPresenter{
		client:   client,
		tokens:   tokens,
		logger:   logger,
		channels: make(map[string]struct{}),
	}, nil
}

// EnsureChannel registers a channel id. Channels are created by the mobile
// app on first use; the presenter only keeps the idempotent registry and
// stamps the id onto outgoing Android configs.
func (p *fcmPresenter) EnsureChannel(channelID, name, description string, importance service.ChannelImportance) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.channels[channelID]; ok {
		return
	}
	p.channels[channelID] = struct{}{}

	p.logger.Debug("notification channel registered",
		slog.String("channel_id", channelID),
		slog.String("name", name),
		slog.Int("importance", int(importance)),
	)
}

// Show sends the notification to every device of the user. The collapse key
// derived from notificationID makes repeated firings replace one another on
// the device rather than stack.
func (p *fcmPresenter) Show(ctx context.Context, notificationID int32, channelID, title, body, deepLink, userID string) error {
	tokens, err := p.tokens.Tokens(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to resolve device tokens: %w", err)
	}
	if len(tokens) == 0 {
		p.logger.Debug("no registered devices, dropping notification",
			slog.String("user_id", userID),
		)

		return nil
	}

	collapseKey := "reminder-" + strconv.Itoa(int(notificationID))

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Android: &messaging.AndroidConfig{
			CollapseKey: collapseKey,
			Notification: &messaging.AndroidNotification{
				ChannelID: channelID,
				Tag:       collapseKey,
			},
		},
		Data: map[string]string{
			"deep_link":       deepLink,
			"notification_id": strconv.Itoa(int(notificationID)),
		},
	}

	response, err := p.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send multicast notification: %w", err)
	}

	if response.FailureCount > 0 {
		p.logger.Warn("some notification sends failed",
			slog.String("user_id", userID),
			slog.Int("success", response.SuccessCount),
			slog.Int("failure", response.FailureCount),
		)
	}

	return nil
}
