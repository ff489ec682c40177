package usecase

import (
	"context"

	"nudge/internal/domain/entity"
)

// ReminderInput represents reminder fields supplied by the client.
type ReminderInput struct {
	Hour       int                 `json:"hour"`
	Minute     int                 `json:"minute"`
	Repeat     entity.Repeat       `json:"repeat"`
	DaysOfWeek []entity.Weekday    `json:"days_of_week"`
	Message    string              `json:"message"`
	Type       entity.ReminderType `json:"type"`
	Enabled    bool                `json:"enabled"`
}

// ReminderUsecase defines the reminder management surface consumed by the
// mobile app. Every mutation keeps the timer table in step with the store.
type ReminderUsecase interface {
	// Create persists a new reminder and registers its timer when enabled.
	Create(ctx context.Context, userID string, input *ReminderInput) (*entity.Reminder, error)

	// Update replaces a stored reminder and re-registers or cancels its timer.
	Update(ctx context.Context, userID, id string, input *ReminderInput) (*entity.Reminder, error)

	// List retrieves all reminders of a user.
	List(ctx context.Context, userID string) ([]*entity.Reminder, error)

	// Delete removes a reminder and cancels any pending timer.
	Delete(ctx context.Context, userID, id string) error

	// SetEnabled toggles a reminder and performs the matching timer side effect.
	SetEnabled(ctx context.Context, userID, id string, enabled bool) error

	// Watch streams snapshots of a user's reminders.
	Watch(ctx context.Context, userID string) (<-chan []*entity.Reminder, func(), error)
}
