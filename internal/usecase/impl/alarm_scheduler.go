package impl

import (
	"context"
	"log/slog"
	"time"

	"nudge/internal/domain/entity"
	"nudge/internal/domain/service"
	"nudge/internal/errors"
	"nudge/internal/usecase"
)

type alarmScheduler struct {
	timers service.TimerService
	loc    *time.Location
	grace  time.Duration
	logger *slog.Logger
	now    func() time.Time
}

// NewAlarmScheduler creates an alarm scheduler backed by the given timer
// service. grace is how far in the past a computed fire time may lie and
// still fire today instead of rolling over to tomorrow.
func NewAlarmScheduler(timers service.TimerService, loc *time.Location, grace time.Duration, logger *slog.Logger) usecase.AlarmScheduler {
	return &alarmScheduler{
		timers: timers,
		loc:    loc,
		grace:  grace,
		logger: logger,
		now:    time.Now,
	}
}

// NextFireTime computes today at hour:minute in the scheduler's zone,
// advanced by one calendar day when that instant already passed beyond the
// grace window.
func (s *alarmScheduler) NextFireTime(now time.Time, hour, minute int) time.Time {
	now = now.In(s.loc)
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, s.loc)

	if target.Before(now.Add(-s.grace)) {
		target = target.AddDate(0, 0, 1)
	}

	return target
}

// Schedule registers the next occurrence of an enabled reminder, keyed by
// its UniqueID so re-registration replaces any prior timer. Exact-wake
// denial falls back to an inexact registration; any other failure is
// logged and swallowed.
func (s *alarmScheduler) Schedule(ctx context.Context, reminder *entity.Reminder) {
	if !reminder.Enabled {
		s.logger.Debug("skipping disabled reminder",
			slog.String("reminder_id", reminder.ID),
		)

		return
	}

	at := s.NextFireTime(s.now(), reminder.Hour, reminder.Minute)
	payload := reminder.FirePayload()
	key := reminder.UniqueID()

	err := s.timers.RegisterExactWake(key, at, payload)
	if errors.Is(err, service.ErrExactWakeDenied) {
		s.logger.Warn("exact wake denied, falling back to inexact",
			slog.String("reminder_id", reminder.ID),
			slog.Int("unique_id", int(key)),
		)
		err = s.timers.RegisterInexactWake(key, at, payload)
	}
	if err != nil {
		s.logger.Error("failed to register wake timer",
			slog.String("reminder_id", reminder.ID),
			slog.Int("unique_id", int(key)),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Debug("reminder scheduled",
		slog.String("reminder_id", reminder.ID),
		slog.Int("unique_id", int(key)),
		slog.Time("at", at),
	)
}

// Cancel unregisters any pending timer for the reminder. Idempotent.
func (s *alarmScheduler) Cancel(reminder *entity.Reminder) {
	s.timers.Cancel(reminder.UniqueID())
}
