// Package firebase provides the shared Firebase app handle the Firestore
// store, the push presenter and the identity verifier are built from.
package firebase

import (
	"context"

	"nudge/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app from configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	var fbConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
