// Package reconcile periodically repairs drift between the preference
// store and the in-process timer table.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"

	"nudge/config"
	"nudge/internal/domain/repository"
	"nudge/internal/domain/service"
	"nudge/internal/usecase"

	"github.com/robfig/cron/v3"
)

// Reconciler re-registers enabled reminders whose timers went missing,
// typically after transient store failures during boot recovery.
type Reconciler struct {
	repo      repository.ReminderRepository
	scheduler usecase.AlarmScheduler
	timers    service.TimerService
	logger    *slog.Logger

	cronSpec string
	cron     *cron.Cron
}

// NewReconciler creates the reconcile job. Call Start to begin the schedule.
func NewReconciler(
	cfg *config.Config,
	repo repository.ReminderRepository,
	scheduler usecase.AlarmScheduler,
	timers service.TimerService,
	logger *slog.Logger,
) *Reconciler {
	spec := "0 3 * * *"
	if cfg.Reconcile != nil && cfg.Reconcile.CronSpec != "" {
		spec = cfg.Reconcile.CronSpec
	}

	return &Reconciler{
		repo:      repo,
		scheduler: scheduler,
		timers:    timers,
		logger:    logger,
		cronSpec:  spec,
		cron:      cron.New(),
	}
}

// Start registers the cron entry and starts the scheduler loop.
func (r *Reconciler) Start() error {
	_, err := r.cron.AddFunc(r.cronSpec, func() {
		if err := r.Run(context.Background()); err != nil {
			r.logger.Error("reconcile run failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register reconcile job: %w", err)
	}

	r.cron.Start()

	return nil
}

// Stop halts the cron scheduler and waits for a running job to finish.
func (r *Reconciler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// Run performs one reconcile pass: every enabled reminder without a
// registered timer is re-scheduled.
func (r *Reconciler) Run(ctx context.Context) error {
	reminders, err := r.repo.ListAllEnabled(ctx)
	if err != nil {
		return fmt.Errorf("failed to list enabled reminders: %w", err)
	}

	registered := make(map[int32]struct{})
	for _, key := range r.timers.Keys() {
		registered[key] = struct{}{}
	}

	repaired := 0
	for _, reminder := range reminders {
		if _, ok := registered[reminder.UniqueID()]; ok {
			continue
		}
		r.scheduler.Schedule(ctx, reminder)
		repaired++
	}

	if repaired > 0 {
		r.logger.Info("reconciled missing reminder timers", slog.Int("count", repaired))
	}

	return nil
}
