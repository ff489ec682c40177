// Package auth implements identity verification against Firebase Auth.
package auth

import (
	"context"
	"fmt"

	"nudge/internal/domain/service"

	firebase "firebase.google.com/go/v4"
)

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (uid string, err error)
}

type firebaseVerifier struct {
	verifier tokenVerifier
}

type firebaseAuthAdapter struct {
	app *firebase.App
}

func (a *firebaseAuthAdapter) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	client, err := a.app.Auth(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get auth client: %w", err)
	}

	token, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("failed to verify id token: %w", err)
	}

	return token.UID, nil
}

// NewFirebaseVerifier creates an identity verifier backed by Firebase Auth.
func NewFirebaseVerifier(app *firebase.App) service.IdentityVerifier {
	return &firebaseVerifier{verifier: &firebaseAuthAdapter{app: app}}
}

// VerifyToken validates an id token and returns the uid it asserts.
func (v *firebaseVerifier) VerifyToken(ctx context.Context, idToken string) (string, error) {
	return v.verifier.VerifyIDToken(ctx, idToken)
}
