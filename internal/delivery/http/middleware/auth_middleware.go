package middleware

import (
	"net/http"
	"strings"

	"nudge/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo.Context key under which the authenticated
// Firebase UID is stored for handlers.
const ContextKeyUserID = "userID"

// AuthMiddleware validates Firebase ID tokens on protected routes.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate extracts the Bearer token, verifies it against Firebase Auth
// and stores the resolved UID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		userID, err := m.verifier.VerifyToken(c.Request().Context(), tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}

// UserID extracts the authenticated UID set by Authenticate.
// Returns false when the middleware did not run or the token carried no UID.
func UserID(c echo.Context) (string, bool) {
	uid, ok := c.Get(ContextKeyUserID).(string)
	if !ok || uid == "" {
		return "", false
	}

	return uid, true
}
