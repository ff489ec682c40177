// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"nudge/internal/delivery/http/middleware"
	"nudge/internal/delivery/http/response"
	"nudge/internal/domain/entity"
	"nudge/internal/usecase"
	usecaseimpl "nudge/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReminderHandler holds dependencies for reminder-related handlers.
type ReminderHandler struct {
	uc     usecase.ReminderUsecase
	logger *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler, injected by Fx.
func NewReminderHandler(uc usecase.ReminderUsecase, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		uc:     uc,
		logger: logger,
	}
}

// ReminderRequest represents the request body for creating or replacing a reminder.
type ReminderRequest struct {
	Hour       int    `json:"hour" validate:"min=0,max=23"`
	Minute     int    `json:"minute" validate:"min=0,max=59"`
	Repeat     string `json:"repeat" validate:"required,oneof=once daily"`
	DaysOfWeek []int  `json:"days_of_week" validate:"dive,min=1,max=7"`
	Message    string `json:"message" validate:"required,max=500"`
	Type       string `json:"type" validate:"required,oneof=meal weight"`
	Enabled    bool   `json:"enabled"`
}

func (r *ReminderRequest) toInput() *usecase.ReminderInput {
	days := make([]entity.Weekday, 0, len(r.DaysOfWeek))
	for _, d := range r.DaysOfWeek {
		days = append(days, entity.Weekday(d))
	}

	return &usecase.ReminderInput{
		Hour:       r.Hour,
		Minute:     r.Minute,
		Repeat:     entity.Repeat(r.Repeat),
		DaysOfWeek: days,
		Message:    r.Message,
		Type:       entity.ReminderType(r.Type),
		Enabled:    r.Enabled,
	}
}

// SetEnabledRequest represents the request body for toggling a reminder.
type SetEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// List handles retrieving all reminders of the authenticated user.
func (h *ReminderHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
	}

	reminders, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminders, "Reminders retrieved successfully")
}

// Create handles creating a new reminder.
func (h *ReminderHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
	}

	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	reminder, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reminder, "Reminder created successfully")
}

// Update handles replacing an existing reminder.
func (h *ReminderHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
	}

	input, err := h.bindInput(c)
	if err != nil {
		return err
	}

	reminder, err := h.uc.Update(c.Request().Context(), userID, c.Param("id"), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminder, "Reminder updated successfully")
}

// Delete handles removing a reminder.
func (h *ReminderHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Reminder deleted successfully")
}

// SetEnabled handles toggling a reminder on or off.
func (h *ReminderHandler) SetEnabled(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
	}

	var req SetEnabledRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enabled toggle input")
	}

	if err := h.uc.SetEnabled(c.Request().Context(), userID, c.Param("id"), req.Enabled); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": c.Param("id"), "enabled": req.Enabled}, "Reminder toggled successfully")
}

// bindInput binds and validates the reminder payload, then maps it to the
// usecase input type.
func (h *ReminderHandler) bindInput(c echo.Context) (*usecase.ReminderInput, error) {
	var req ReminderRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid reminder input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return req.toInput(), nil
}

// handleAppError maps usecase sentinel errors to HTTP responses.
func (h *ReminderHandler) handleAppError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecaseimpl.ErrReminderNotFound):
		return response.NotFound(c, "REMINDER_NOT_FOUND", "Reminder not found")
	case errors.Is(err, usecaseimpl.ErrInvalidTime),
		errors.Is(err, usecaseimpl.ErrInvalidRepeat),
		errors.Is(err, usecaseimpl.ErrInvalidType),
		errors.Is(err, usecaseimpl.ErrInvalidWeekday):
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return errors.WithStack(err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
