package impl

import (
	"context"
	"log/slog"
	"time"

	"nudge/internal/domain/entity"
	"nudge/internal/domain/repository"
	"nudge/internal/domain/service"
	"nudge/internal/errors"
	"nudge/internal/usecase"
)

const disableTimeout = 15 * time.Second

type dispatcher struct {
	timers    service.TimerService
	presenter service.NotificationPresenter
	repo      repository.ReminderRepository
	loc       *time.Location
	logger    *slog.Logger
	now       func() time.Time
}

// NewDispatcher creates the handler invoked when a wake timer fires.
func NewDispatcher(
	timers service.TimerService,
	presenter service.NotificationPresenter,
	repo repository.ReminderRepository,
	loc *time.Location,
	logger *slog.Logger,
) usecase.Dispatcher {
	return &dispatcher{
		timers:    timers,
		presenter: presenter,
		repo:      repo,
		loc:       loc,
		logger:    logger,
		now:       time.Now,
	}
}

// Decide computes the side effects of one firing. Effects are ordered:
// the reschedule for a recurring reminder always comes first so the chain
// survives whatever happens to the rest of the dispatch.
func (d *dispatcher) Decide(payload entity.FirePayload, now time.Time) []entity.SideEffect {
	now = now.In(d.loc)

	var effects []entity.SideEffect

	if payload.Repeat == entity.RepeatDaily && payload.HasTime() {
		next := time.Date(now.Year(), now.Month(), now.Day(), payload.Hour, payload.Minute, 0, 0, d.loc).
			AddDate(0, 0, 1)
		effects = append(effects, entity.RescheduleTimer{Payload: payload, At: next})
	}

	// Day-of-week gate. The firing is suppressed, not the chain: the
	// reschedule above already covers tomorrow.
	if payload.Repeat == entity.RepeatDaily && !payload.FiresOn(entity.WeekdayOf(now)) {
		return effects
	}

	if payload.Repeat == entity.RepeatOnce && payload.ReminderID != "" {
		effects = append(effects, entity.DisableReminder{
			UserID:     payload.UserID,
			ReminderID: payload.ReminderID,
		})
	}

	channelID, channelName, title, deepLink := payload.Type.Presentation()
	effects = append(effects, entity.ShowNotification{
		NotificationID: payload.UniqueID,
		ChannelID:      channelID,
		ChannelName:    channelName,
		Title:          title,
		Body:           payload.Message,
		DeepLink:       deepLink,
		UserID:         payload.UserID,
	})

	return effects
}

// OnFire runs the decision logic and executes the resulting effects.
// Executor failures are logged; dispatch always runs to completion.
func (d *dispatcher) OnFire(ctx context.Context, payload entity.FirePayload) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("panic during reminder dispatch",
				slog.String("reminder_id", payload.ReminderID),
				slog.Any("panic", r),
			)
		}
	}()

	for _, effect := range d.Decide(payload, d.now()) {
		d.execute(ctx, effect)
	}
}

func (d *dispatcher) execute(ctx context.Context, effect entity.SideEffect) {
	switch e := effect.(type) {
	case entity.RescheduleTimer:
		err := d.timers.RegisterExactWake(e.Payload.UniqueID, e.At, e.Payload)
		if errors.Is(err, service.ErrExactWakeDenied) {
			err = d.timers.RegisterInexactWake(e.Payload.UniqueID, e.At, e.Payload)
		}
		if err != nil {
			d.logger.Error("failed to reschedule recurring reminder",
				slog.String("reminder_id", e.Payload.ReminderID),
				slog.Any("error", err),
			)
		}

	case entity.DisableReminder:
		// Fire-and-forget relative to notification display. Failure is
		// logged, not retried.
		go func() {
			disableCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), disableTimeout)
			defer cancel()

			if err := d.repo.SetEnabled(disableCtx, e.UserID, e.ReminderID, false); err != nil {
				d.logger.Error("failed to disable fired one-shot reminder",
					slog.String("reminder_id", e.ReminderID),
					slog.Any("error", err),
				)
			}
		}()

	case entity.ShowNotification:
		d.presenter.EnsureChannel(e.ChannelID, e.ChannelName, "", service.ImportanceHigh)
		if err := d.presenter.Show(ctx, e.NotificationID, e.ChannelID, e.Title, e.Body, e.DeepLink, e.UserID); err != nil {
			d.logger.Error("failed to show notification",
				slog.Int("notification_id", int(e.NotificationID)),
				slog.Any("error", err),
			)
		}

	case entity.CancelTimer:
		d.timers.Cancel(e.UniqueID)
	}
}
