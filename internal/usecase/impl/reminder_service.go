package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "nudge/internal/delivery/context"
	"nudge/internal/domain/entity"
	"nudge/internal/domain/repository"
	"nudge/internal/errors"
	"nudge/internal/usecase"
)

var (
	// ErrReminderNotFound is returned when a reminder is not found.
	ErrReminderNotFound = errors.New("reminder not found")
	// ErrInvalidTime is returned when hour or minute lies outside the wall-clock range.
	ErrInvalidTime = errors.New("hour must be 0-23 and minute 0-59")
	// ErrInvalidRepeat is returned for an unknown repetition mode.
	ErrInvalidRepeat = errors.New("invalid repetition mode")
	// ErrInvalidType is returned for an unknown reminder type.
	ErrInvalidType = errors.New("invalid reminder type")
	// ErrInvalidWeekday is returned when a day-of-week filter entry is out of range.
	ErrInvalidWeekday = errors.New("days of week must be 1 (Sunday) through 7 (Saturday)")
)

type reminderService struct {
	repo      repository.ReminderRepository
	scheduler usecase.AlarmScheduler
	logger    *slog.Logger
}

// NewReminderService creates the reminder management service. Every store
// mutation carries its matching timer side effect so at most one active
// timer exists per reminder key.
func NewReminderService(repo repository.ReminderRepository, scheduler usecase.AlarmScheduler, logger *slog.Logger) usecase.ReminderUsecase {
	return &reminderService{
		repo:      repo,
		scheduler: scheduler,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, s.logger)
}

// Create persists a new reminder and registers its timer when enabled.
func (s *reminderService) Create(ctx context.Context, userID string, input *usecase.ReminderInput) (*entity.Reminder, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	reminder := &entity.Reminder{
		UserID:     userID,
		Hour:       input.Hour,
		Minute:     input.Minute,
		Repeat:     input.Repeat,
		DaysOfWeek: input.DaysOfWeek,
		Message:    input.Message,
		Type:       input.Type,
		Enabled:    input.Enabled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	saved, err := s.repo.Save(ctx, reminder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save reminder")
	}

	if saved.Enabled {
		s.scheduler.Schedule(ctx, saved)
	}

	s.log(ctx).Info("Reminder created",
		slog.String("id", saved.ID),
		slog.String("type", saved.Type.String()),
		slog.Bool("enabled", saved.Enabled))

	return saved, nil
}

// Update replaces a stored reminder and re-registers or cancels its timer.
func (s *reminderService) Update(ctx context.Context, userID, id string, input *usecase.ReminderInput) (*entity.Reminder, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	existing.Hour = input.Hour
	existing.Minute = input.Minute
	existing.Repeat = input.Repeat
	existing.DaysOfWeek = input.DaysOfWeek
	existing.Message = input.Message
	existing.Type = input.Type
	existing.Enabled = input.Enabled
	existing.UpdatedAt = time.Now()

	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save reminder")
	}

	if saved.Enabled {
		s.scheduler.Schedule(ctx, saved)
	} else {
		s.scheduler.Cancel(saved)
	}

	return saved, nil
}

// List retrieves all reminders of a user.
func (s *reminderService) List(ctx context.Context, userID string) ([]*entity.Reminder, error) {
	reminders, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reminders")
	}

	return reminders, nil
}

// Delete removes a reminder, cancelling any pending timer first.
func (s *reminderService) Delete(ctx context.Context, userID, id string) error {
	s.scheduler.Cancel(&entity.Reminder{ID: id})

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return ErrReminderNotFound
		}

		return errors.Wrap(err, "failed to delete reminder")
	}

	return nil
}

// SetEnabled toggles a reminder and performs the matching timer side effect.
func (s *reminderService) SetEnabled(ctx context.Context, userID, id string, enabled bool) error {
	reminder, err := s.find(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.repo.SetEnabled(ctx, userID, id, enabled); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return ErrReminderNotFound
		}

		return errors.Wrap(err, "failed to update reminder")
	}

	reminder.Enabled = enabled
	if enabled {
		s.scheduler.Schedule(ctx, reminder)
	} else {
		s.scheduler.Cancel(reminder)
	}

	s.log(ctx).Info("Reminder toggled", slog.String("id", id), slog.Bool("enabled", enabled))

	return nil
}

// Watch streams snapshots of a user's reminders.
func (s *reminderService) Watch(ctx context.Context, userID string) (<-chan []*entity.Reminder, func(), error) {
	return s.repo.Observe(ctx, userID)
}

func (s *reminderService) find(ctx context.Context, userID, id string) (*entity.Reminder, error) {
	reminders, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reminders")
	}

	for _, reminder := range reminders {
		if reminder.ID == id {
			return reminder, nil
		}
	}

	return nil, ErrReminderNotFound
}

func validateInput(input *usecase.ReminderInput) error {
	if input.Hour < 0 || input.Hour > 23 || input.Minute < 0 || input.Minute > 59 {
		return ErrInvalidTime
	}
	if !input.Repeat.IsValid() {
		return ErrInvalidRepeat
	}
	if !input.Type.IsValid() {
		return ErrInvalidType
	}
	for _, day := range input.DaysOfWeek {
		if !day.IsValid() {
			return ErrInvalidWeekday
		}
	}

	return nil
}
