// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nudge/internal/delivery/http/middleware"
	"nudge/internal/delivery/http/router/handler"
	deliverymw "nudge/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ReminderHandler     *handler.ReminderHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *deliverymw.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	reminderHandler     *handler.ReminderHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *deliverymw.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		reminderHandler:     params.ReminderHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Reminder routes that require a Firebase ID token
	reminderGroup := e.Group("/reminders")
	reminderGroup.Use(r.authMiddleware.Authenticate)
	{
		reminderGroup.GET("", r.reminderHandler.List)
		reminderGroup.POST("", r.reminderHandler.Create)
		reminderGroup.PUT("/:id", r.reminderHandler.Update)
		reminderGroup.DELETE("/:id", r.reminderHandler.Delete)
		reminderGroup.PATCH("/:id/enabled", r.reminderHandler.SetEnabled)
	}

	// Operational routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.POST("/restore", r.adminHandler.RestoreAll)
		adminGroup.POST("/restore/:userID", r.adminHandler.RestoreUser)
	}
}
