package handler

import (
	"log/slog"
	"net/http"

	"nudge/internal/delivery/http/response"
	"nudge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler exposes operational endpoints.
type AdminHandler struct {
	recovery usecase.BootRecovery
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(recovery usecase.BootRecovery, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		recovery: recovery,
		logger:   logger,
	}
}

// RestoreAll re-registers timers for every enabled reminder in the store.
// Used after an unclean restart or when the timer table is suspected stale.
func (h *AdminHandler) RestoreAll(c echo.Context) error {
	if err := h.recovery.RestoreAll(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Timers restored successfully")
}

// RestoreUser re-registers timers for a single user's enabled reminders.
func (h *AdminHandler) RestoreUser(c echo.Context) error {
	userID := c.Param("userID")
	if err := h.recovery.RestoreUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"user_id": userID}, "User timers restored successfully")
}
