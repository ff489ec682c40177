package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUniqueIDOf_Deterministic(t *testing.T) {
	id := "reminders/abc123"

	first := UniqueIDOf(id)
	second := UniqueIDOf(id)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, int32(0))
}

func TestUniqueIDOf_DistinctIDs(t *testing.T) {
	ids := []string{"a", "b", "abc123", "abc124", "reminder-1", "reminder-2"}

	seen := make(map[int32]string, len(ids))
	for _, id := range ids {
		key := UniqueIDOf(id)
		prev, dup := seen[key]
		assert.False(t, dup, "ids %q and %q collided on %d", prev, id, key)
		seen[key] = id
	}
}

func TestReminder_FiresOn(t *testing.T) {
	tests := []struct {
		name string
		days []Weekday
		day  Weekday
		want bool
	}{
		{name: "empty filter admits every day", days: nil, day: Saturday, want: true},
		{name: "member day", days: []Weekday{Monday, Tuesday}, day: Monday, want: true},
		{name: "non-member day", days: []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}, day: Saturday, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Reminder{DaysOfWeek: tt.days}
			assert.Equal(t, tt.want, r.FiresOn(tt.day))
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2024-01-06 is a Saturday, 2024-01-07 a Sunday.
	saturday := time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, Saturday, WeekdayOf(saturday))
	assert.Equal(t, Sunday, WeekdayOf(sunday))
}

func TestFirePayload_HasTime(t *testing.T) {
	assert.True(t, FirePayload{Hour: 8, Minute: 0}.HasTime())
	assert.True(t, FirePayload{Hour: 23, Minute: 59}.HasTime())
	assert.False(t, FirePayload{Hour: -1, Minute: -1}.HasTime())
	assert.False(t, FirePayload{Hour: 24, Minute: 0}.HasTime())
}

func TestReminderType_Presentation(t *testing.T) {
	channelID, _, title, deepLink := TypeMeal.Presentation()
	assert.Equal(t, MealChannelID, channelID)
	assert.Equal(t, MealTitle, title)
	assert.Equal(t, MealDeepLink, deepLink)

	channelID, _, title, deepLink = TypeWeight.Presentation()
	assert.Equal(t, WeightChannelID, channelID)
	assert.Equal(t, WeightTitle, title)
	assert.Equal(t, WeightDeepLink, deepLink)
}

func TestReminder_FirePayload(t *testing.T) {
	r := &Reminder{
		ID:         "rem-1",
		UserID:     "user-1",
		Hour:       8,
		Minute:     30,
		Repeat:     RepeatDaily,
		DaysOfWeek: []Weekday{Monday},
		Message:    "log breakfast",
		Type:       TypeMeal,
		Enabled:    true,
	}

	p := r.FirePayload()

	assert.Equal(t, r.UniqueID(), p.UniqueID)
	assert.Equal(t, "rem-1", p.ReminderID)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, RepeatDaily, p.Repeat)
	assert.Equal(t, []Weekday{Monday}, p.DaysOfWeek)
	assert.True(t, p.HasTime())
}
