// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"nudge/internal/domain/entity"
	"nudge/internal/errors"
)

// ErrReminderNotFound is returned when a reminder is not found.
var ErrReminderNotFound = errors.New("reminder not found")

// ReminderRepository defines the interface for the reminder preference store.
type ReminderRepository interface {
	// List retrieves all reminders for a user.
	List(ctx context.Context, userID string) ([]*entity.Reminder, error)

	// ListAllEnabled retrieves every enabled reminder across all users.
	// Used by boot recovery at process start.
	ListAllEnabled(ctx context.Context) ([]*entity.Reminder, error)

	// Save persists a reminder. A reminder with an empty ID is created and
	// the assigned document id is echoed back on the returned copy.
	Save(ctx context.Context, reminder *entity.Reminder) (*entity.Reminder, error)

	// Delete removes a reminder.
	Delete(ctx context.Context, userID, id string) error

	// SetEnabled flips the enabled flag of a stored reminder.
	SetEnabled(ctx context.Context, userID, id string, enabled bool) error

	// Observe streams snapshots of a user's reminders. The returned stop
	// function releases the underlying listener.
	Observe(ctx context.Context, userID string) (<-chan []*entity.Reminder, func(), error)
}
