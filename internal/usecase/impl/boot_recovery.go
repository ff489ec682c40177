package impl

import (
	"context"
	"fmt"
	"log/slog"

	"nudge/internal/domain/repository"
	"nudge/internal/usecase"
)

type bootRecovery struct {
	repo      repository.ReminderRepository
	scheduler usecase.AlarmScheduler
	logger    *slog.Logger
}

// NewBootRecovery creates the component that restores timer registrations
// from the preference store after a process restart.
func NewBootRecovery(repo repository.ReminderRepository, scheduler usecase.AlarmScheduler, logger *slog.Logger) usecase.BootRecovery {
	return &bootRecovery{
		repo:      repo,
		scheduler: scheduler,
		logger:    logger,
	}
}

// RestoreAll re-registers every enabled reminder across all users.
func (b *bootRecovery) RestoreAll(ctx context.Context) error {
	reminders, err := b.repo.ListAllEnabled(ctx)
	if err != nil {
		return fmt.Errorf("failed to list enabled reminders: %w", err)
	}

	for _, reminder := range reminders {
		// Schedule swallows per-item registration failures; one bad
		// reminder never aborts the rest.
		b.scheduler.Schedule(ctx, reminder)
	}

	b.logger.Info("restored reminder timers", slog.Int("count", len(reminders)))

	return nil
}

// RestoreUser re-registers the enabled reminders of a single user. Without
// an authenticated identity there is nothing to restore.
func (b *bootRecovery) RestoreUser(ctx context.Context, userID string) error {
	if userID == "" {
		b.logger.Debug("no authenticated user, skipping reminder restore")

		return nil
	}

	reminders, err := b.repo.List(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list reminders for user: %w", err)
	}

	restored := 0
	for _, reminder := range reminders {
		if !reminder.Enabled {
			continue
		}
		b.scheduler.Schedule(ctx, reminder)
		restored++
	}

	b.logger.Info("restored reminder timers for user",
		slog.String("user_id", userID),
		slog.Int("count", restored),
	)

	return nil
}
