package service

import "context"

// IdentityVerifier validates an end-user identity token and returns the
// stable user id it asserts.
type IdentityVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (userID string, err error)
}
