package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"nudge/internal/domain/entity"
	"nudge/internal/domain/service"
	mockSvc "nudge/internal/mocks/service"
	"nudge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// alarmSchedulerFixtures holds all test dependencies for alarm scheduler tests.
type alarmSchedulerFixtures struct {
	scheduler usecase.AlarmScheduler
	timers    *mockSvc.MockTimerService
}

func createTestAlarmScheduler(t *testing.T, now time.Time) alarmSchedulerFixtures {
	timers := mockSvc.NewMockTimerService(t)
	scheduler := NewAlarmScheduler(timers, time.UTC, time.Minute, slog.Default())
	scheduler.(*alarmScheduler).now = func() time.Time { return now }

	return alarmSchedulerFixtures{
		scheduler: scheduler,
		timers:    timers,
	}
}

func testReminder() *entity.Reminder {
	return &entity.Reminder{
		ID:      "rem-1",
		UserID:  "user-1",
		Hour:    8,
		Minute:  0,
		Repeat:  entity.RepeatDaily,
		Message: "log breakfast",
		Type:    entity.TypeMeal,
		Enabled: true,
	}
}

func TestAlarmScheduler_Schedule_DisabledIsNoOp(t *testing.T) {
	now := time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC)
	fx := createTestAlarmScheduler(t, now)

	reminder := testReminder()
	reminder.Enabled = false

	// No timer expectations: registering anything would fail the mock.
	fx.scheduler.Schedule(context.Background(), reminder)
}

func TestAlarmScheduler_Schedule_RegistersExactWake(t *testing.T) {
	now := time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC)
	fx := createTestAlarmScheduler(t, now)

	reminder := testReminder()
	wantAt := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)

	fx.timers.EXPECT().
		RegisterExactWake(reminder.UniqueID(), wantAt, reminder.FirePayload()).
		Return(nil)

	fx.scheduler.Schedule(context.Background(), reminder)
}

func TestAlarmScheduler_Schedule_ExactDeniedFallsBackToInexact(t *testing.T) {
	now := time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC)
	fx := createTestAlarmScheduler(t, now)

	reminder := testReminder()
	wantAt := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)

	fx.timers.EXPECT().
		RegisterExactWake(reminder.UniqueID(), wantAt, reminder.FirePayload()).
		Return(service.ErrExactWakeDenied)

	fx.timers.EXPECT().
		RegisterInexactWake(reminder.UniqueID(), wantAt, reminder.FirePayload()).
		Return(nil)

	fx.scheduler.Schedule(context.Background(), reminder)
}

func TestAlarmScheduler_Schedule_RegistrationErrorIsSwallowed(t *testing.T) {
	now := time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC)
	fx := createTestAlarmScheduler(t, now)

	reminder := testReminder()

	fx.timers.EXPECT().
		RegisterExactWake(reminder.UniqueID(), time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC), reminder.FirePayload()).
		Return(errors.New("timer table full"))

	// Must not panic or propagate anything.
	fx.scheduler.Schedule(context.Background(), reminder)
}

func TestAlarmScheduler_Cancel(t *testing.T) {
	now := time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC)
	fx := createTestAlarmScheduler(t, now)

	reminder := testReminder()

	fx.timers.EXPECT().Cancel(reminder.UniqueID()).Return()

	fx.scheduler.Cancel(reminder)
}

func TestAlarmScheduler_NextFireTime(t *testing.T) {
	fx := createTestAlarmScheduler(t, time.Time{})

	tests := []struct {
		name   string
		now    time.Time
		hour   int
		minute int
		want   time.Time
	}{
		{
			name: "target in the future fires today",
			now:  time.Date(2024, 1, 8, 7, 0, 0, 0, time.UTC),
			hour: 8, minute: 30,
			want: time.Date(2024, 1, 8, 8, 30, 0, 0, time.UTC),
		},
		{
			name: "target within grace still fires today",
			now:  time.Date(2024, 1, 8, 8, 30, 45, 0, time.UTC),
			hour: 8, minute: 30,
			want: time.Date(2024, 1, 8, 8, 30, 0, 0, time.UTC),
		},
		{
			name: "target beyond grace rolls over to tomorrow",
			now:  time.Date(2024, 1, 8, 8, 32, 0, 0, time.UTC),
			hour: 8, minute: 30,
			want: time.Date(2024, 1, 9, 8, 30, 0, 0, time.UTC),
		},
		{
			name: "midnight reminder late in the day",
			now:  time.Date(2024, 1, 8, 23, 59, 0, 0, time.UTC),
			hour: 0, minute: 0,
			want: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fx.scheduler.NextFireTime(tt.now, tt.hour, tt.minute)
			assert.Equal(t, tt.want, got)
		})
	}
}
