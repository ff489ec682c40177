package firestore

import (
	"context"
	"fmt"

	"nudge/internal/domain/service"

	cf "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
)

const devicesCollection = "devices"

type deviceTokenSource struct {
	client *cf.Client
}

// NewDeviceTokenSource resolves push tokens from the device documents the
// mobile app registers under each user.
func NewDeviceTokenSource(ctx context.Context, app *firebase.App) (service.DeviceTokenSource, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return &deviceTokenSource{client: client}, nil
}

// Tokens returns the FCM tokens of a user's registered devices.
func (s *deviceTokenSource) Tokens(ctx context.Context, userID string) ([]string, error) {
	docs := s.client.Collection(usersCollection).Doc(userID).Collection(devicesCollection).Documents(ctx)
	defer docs.Stop()

	var tokens []string
	for {
		doc, err := docs.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate device documents: %w", err)
		}

		var device struct {
			FCMToken string `firestore:"fcmToken"`
		}
		if err := doc.DataTo(&device); err != nil {
			continue
		}
		if device.FCMToken != "" {
			tokens = append(tokens, device.FCMToken)
		}
	}

	return tokens, nil
}
