package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"nudge/internal/domain/entity"
	"nudge/internal/domain/service"
	mockRepo "nudge/internal/mocks/repository"
	mockSvc "nudge/internal/mocks/service"
	"nudge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatcherFixtures holds all test dependencies for dispatcher tests.
type dispatcherFixtures struct {
	dispatcher usecase.Dispatcher
	timers     *mockSvc.MockTimerService
	presenter  *mockSvc.MockNotificationPresenter
	repo       *mockRepo.MockReminderRepository
}

func createTestDispatcher(t *testing.T, now time.Time) dispatcherFixtures {
	timers := mockSvc.NewMockTimerService(t)
	presenter := mockSvc.NewMockNotificationPresenter(t)
	repo := mockRepo.NewMockReminderRepository(t)

	d := NewDispatcher(timers, presenter, repo, time.UTC, slog.Default())
	d.(*dispatcher).now = func() time.Time { return now }

	return dispatcherFixtures{
		dispatcher: d,
		timers:     timers,
		presenter:  presenter,
		repo:       repo,
	}
}

func dailyPayload() entity.FirePayload {
	return entity.FirePayload{
		UniqueID:   entity.UniqueIDOf("rem-daily"),
		ReminderID: "rem-daily",
		UserID:     "user-1",
		Message:    "log breakfast",
		Repeat:     entity.RepeatDaily,
		Type:       entity.TypeMeal,
		Hour:       8,
		Minute:     0,
	}
}

func TestDispatcher_Decide_DailyReschedulesFirst(t *testing.T) {
	now := time.Date(2024, 1, 8, 8, 0, 3, 0, time.UTC) // a Monday
	fx := createTestDispatcher(t, now)

	effects := fx.dispatcher.Decide(dailyPayload(), now)

	require.Len(t, effects, 2)

	reschedule, ok := effects[0].(entity.RescheduleTimer)
	require.True(t, ok, "first effect must be the reschedule")
	assert.Equal(t, time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC), reschedule.At)

	show, ok := effects[1].(entity.ShowNotification)
	require.True(t, ok)
	assert.Equal(t, entity.MealChannelID, show.ChannelID)
	assert.Equal(t, entity.MealTitle, show.Title)
	assert.Equal(t, entity.MealDeepLink, show.DeepLink)
	assert.Equal(t, "log breakfast", show.Body)
}

func TestDispatcher_Decide_DayOfWeekGateSuppressesNotification(t *testing.T) {
	// Saturday firing with a Monday-Friday filter: no notification, but
	// tomorrow (Sunday) is still scheduled so the chain keeps going.
	now := time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC) // a Saturday
	fx := createTestDispatcher(t, now)

	payload := dailyPayload()
	payload.DaysOfWeek = []entity.Weekday{
		entity.Monday, entity.Tuesday, entity.Wednesday, entity.Thursday, entity.Friday,
	}

	effects := fx.dispatcher.Decide(payload, now)

	require.Len(t, effects, 1)
	reschedule, ok := effects[0].(entity.RescheduleTimer)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC), reschedule.At)
}

func TestDispatcher_Decide_OnceDisablesAndShows(t *testing.T) {
	now := time.Date(2024, 1, 8, 21, 30, 0, 0, time.UTC)
	fx := createTestDispatcher(t, now)

	payload := entity.FirePayload{
		UniqueID:   entity.UniqueIDOf("rem-once"),
		ReminderID: "rem-once",
		UserID:     "user-1",
		Message:    "weigh in",
		Repeat:     entity.RepeatOnce,
		Type:       entity.TypeWeight,
		Hour:       21,
		Minute:     30,
	}

	effects := fx.dispatcher.Decide(payload, now)

	require.Len(t, effects, 2)

	disable, ok := effects[0].(entity.DisableReminder)
	require.True(t, ok)
	assert.Equal(t, "rem-once", disable.ReminderID)
	assert.Equal(t, "user-1", disable.UserID)

	show, ok := effects[1].(entity.ShowNotification)
	require.True(t, ok)
	assert.Equal(t, entity.WeightChannelID, show.ChannelID)
	assert.Equal(t, entity.WeightTitle, show.Title)
	assert.Equal(t, entity.WeightDeepLink, show.DeepLink)
}

func TestDispatcher_Decide_OnceWithoutPersistedIDSkipsDisable(t *testing.T) {
	now := time.Date(2024, 1, 8, 21, 30, 0, 0, time.UTC)
	fx := createTestDispatcher(t, now)

	payload := entity.FirePayload{
		Repeat: entity.RepeatOnce,
		Type:   entity.TypeWeight,
		Hour:   21, Minute: 30,
	}

	effects := fx.dispatcher.Decide(payload, now)

	require.Len(t, effects, 1)
	_, ok := effects[0].(entity.ShowNotification)
	assert.True(t, ok)
}

func TestDispatcher_Decide_MissingTimeSkipsRescheduleOnly(t *testing.T) {
	now := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	fx := createTestDispatcher(t, now)

	payload := dailyPayload()
	payload.Hour = -1
	payload.Minute = -1

	effects := fx.dispatcher.Decide(payload, now)

	require.Len(t, effects, 1)
	_, ok := effects[0].(entity.ShowNotification)
	assert.True(t, ok, "notification still shown when reschedule is impossible")
}

func TestDispatcher_OnFire_DailyExecutesRescheduleAndShow(t *testing.T) {
	now := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	fx := createTestDispatcher(t, now)

	payload := dailyPayload()

	fx.timers.EXPECT().
		RegisterExactWake(payload.UniqueID, time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC), payload).
		Return(nil)

	fx.presenter.EXPECT().
		EnsureChannel(entity.MealChannelID, entity.MealChannelName, "", service.ImportanceHigh).
		Return()

	fx.presenter.EXPECT().
		Show(mock.Anything, payload.UniqueID, entity.MealChannelID, entity.MealTitle, "log breakfast", entity.MealDeepLink, "user-1").
		Return(nil)

	fx.dispatcher.OnFire(context.Background(), payload)
}

func TestDispatcher_OnFire_OnceDisablesStore(t *testing.T) {
	now := time.Date(2024, 1, 8, 21, 30, 0, 0, time.UTC)
	fx := createTestDispatcher(t, now)

	payload := entity.FirePayload{
		UniqueID:   entity.UniqueIDOf("rem-once"),
		ReminderID: "rem-once",
		UserID:     "user-1",
		Message:    "weigh in",
		Repeat:     entity.RepeatOnce,
		Type:       entity.TypeWeight,
		Hour:       21,
		Minute:     30,
	}

	disabled := make(chan struct{})
	fx.repo.EXPECT().
		SetEnabled(mock.Anything, "user-1", "rem-once", false).
		Run(func(context.Context, string, string, bool) { close(disabled) }).
		Return(nil)

	fx.presenter.EXPECT().
		EnsureChannel(entity.WeightChannelID, entity.WeightChannelName, "", service.ImportanceHigh).
		Return()

	fx.presenter.EXPECT().
		Show(mock.Anything, payload.UniqueID, entity.WeightChannelID, entity.WeightTitle, "weigh in", entity.WeightDeepLink, "user-1").
		Return(nil)

	fx.dispatcher.OnFire(context.Background(), payload)

	select {
	case <-disabled:
	case <-time.After(2 * time.Second):
		t.Fatal("one-shot reminder was never disabled in the store")
	}
}

func TestDispatcher_OnFire_ShowFailureDoesNotPanic(t *testing.T) {
	now := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	fx := createTestDispatcher(t, now)

	payload := dailyPayload()

	fx.timers.EXPECT().
		RegisterExactWake(payload.UniqueID, mock.Anything, payload).
		Return(nil)

	fx.presenter.EXPECT().
		EnsureChannel(entity.MealChannelID, entity.MealChannelName, "", service.ImportanceHigh).
		Return()

	fx.presenter.EXPECT().
		Show(mock.Anything, payload.UniqueID, entity.MealChannelID, entity.MealTitle, "log breakfast", entity.MealDeepLink, "user-1").
		Return(errors.New("push provider unavailable"))

	fx.dispatcher.OnFire(context.Background(), payload)
}

func TestDispatcher_OnFire_RescheduleFallsBackWhenExactDenied(t *testing.T) {
	now := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	fx := createTestDispatcher(t, now)

	payload := dailyPayload()
	next := time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC)

	fx.timers.EXPECT().
		RegisterExactWake(payload.UniqueID, next, payload).
		Return(service.ErrExactWakeDenied)

	fx.timers.EXPECT().
		RegisterInexactWake(payload.UniqueID, next, payload).
		Return(nil)

	fx.presenter.EXPECT().
		EnsureChannel(entity.MealChannelID, entity.MealChannelName, "", service.ImportanceHigh).
		Return()

	fx.presenter.EXPECT().
		Show(mock.Anything, payload.UniqueID, entity.MealChannelID, entity.MealTitle, "log breakfast", entity.MealDeepLink, "user-1").
		Return(nil)

	fx.dispatcher.OnFire(context.Background(), payload)
}
