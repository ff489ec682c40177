package usecase

import (
	"context"
	"time"

	"nudge/internal/domain/entity"
)

// AlarmScheduler converts a reminder preference into a concrete future
// timer registration, or cancels one.
type AlarmScheduler interface {
	// Schedule registers the next occurrence of an enabled reminder.
	// Disabled reminders are a no-op. Registration failures are logged,
	// never propagated; scheduling is not user-fatal.
	Schedule(ctx context.Context, reminder *entity.Reminder)

	// Cancel unregisters any pending timer for the reminder. Idempotent.
	Cancel(reminder *entity.Reminder)

	// NextFireTime computes the next instant a reminder with the given
	// wall-clock time should fire, relative to now.
	NextFireTime(now time.Time, hour, minute int) time.Time
}

// Dispatcher is the logic executed when a registered timer fires.
type Dispatcher interface {
	// Decide computes the side effects of a single firing. Pure.
	Decide(payload entity.FirePayload, now time.Time) []entity.SideEffect

	// OnFire runs Decide and executes the resulting effects. Never panics;
	// executor failures are logged and dispatch runs to completion.
	OnFire(ctx context.Context, payload entity.FirePayload)
}

// BootRecovery restores timer registrations from the preference store.
// In-process timers do not survive a restart.
type BootRecovery interface {
	// RestoreAll re-registers every enabled reminder across all users.
	RestoreAll(ctx context.Context) error

	// RestoreUser re-registers the enabled reminders of one user. An empty
	// userID means no authenticated identity is available and is a no-op.
	RestoreUser(ctx context.Context, userID string) error
}
