package entity

import "time"

// FirePayload is what a registered wake timer carries back when it fires.
// Hour and Minute may be -1 when the originating registration predates the
// time fields; the dispatcher then skips rescheduling.
type FirePayload struct {
	UniqueID   int32        `json:"unique_id"`
	ReminderID string       `json:"reminder_id"`
	UserID     string       `json:"user_id"`
	Message    string       `json:"message"`
	Repeat     Repeat       `json:"repeat"`
	Type       ReminderType `json:"type"`
	DaysOfWeek []Weekday    `json:"days_of_week"`
	Hour       int          `json:"hour"`
	Minute     int          `json:"minute"`
}

// HasTime reports whether the payload carries a usable wall-clock time.
func (p FirePayload) HasTime() bool {
	return p.Hour >= 0 && p.Hour <= 23 && p.Minute >= 0 && p.Minute <= 59
}

// FiresOn reports whether the payload's day-of-week filter admits the given
// day. An empty filter admits every day.
func (p FirePayload) FiresOn(day Weekday) bool {
	if len(p.DaysOfWeek) == 0 {
		return true
	}
	for _, d := range p.DaysOfWeek {
		if d == day {
			return true
		}
	}

	return false
}

// SideEffect is one action the dispatcher decided on for a single firing.
// The decision logic is pure; an executor applies the effects against the
// timer table, the notification presenter and the preference store.
type SideEffect interface {
	sideEffect()
}

// RescheduleTimer registers the next occurrence of a recurring reminder.
type RescheduleTimer struct {
	Payload FirePayload
	At      time.Time
}

// ShowNotification surfaces a user-visible notification.
type ShowNotification struct {
	NotificationID int32
	ChannelID      string
	ChannelName    string
	Title          string
	Body           string
	DeepLink       string
	UserID         string
}

// DisableReminder flips a fired one-shot reminder to disabled in the store.
type DisableReminder struct {
	UserID     string
	ReminderID string
}

// CancelTimer unregisters the timer for a reminder key.
type CancelTimer struct {
	UniqueID int32
}

func (RescheduleTimer) sideEffect()  {}
func (ShowNotification) sideEffect() {}
func (DisableReminder) sideEffect()  {}
func (CancelTimer) sideEffect()      {}

// Notification channel identifiers and deep links understood by the mobile app.
const (
	MealChannelID   = "meal_reminders"
	MealChannelName = "Meal Reminders"
	MealTitle       = "Meal Logging Reminder"
	MealDeepLink    = "app://add_meal"

	WeightChannelID   = "weight_reminders"
	WeightChannelName = "Weight Reminders"
	WeightTitle       = "Weight Log Reminder"
	WeightDeepLink    = "app://weight_tracker?openWeightLog=true"
)

// Presentation resolves a reminder type to its channel, title and deep link.
func (t ReminderType) Presentation() (channelID, channelName, title, deepLink string) {
	switch t {
	case TypeWeight:
		return WeightChannelID, WeightChannelName, WeightTitle, WeightDeepLink
	default:
		return MealChannelID, MealChannelName, MealTitle, MealDeepLink
	}
}
