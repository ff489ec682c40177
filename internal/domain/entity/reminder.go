// Package entity contains the core business objects of the project.
package entity

import (
	"hash/fnv"
	"time"
)

// Repeat represents how often a reminder fires.
type Repeat string

const (
	// RepeatOnce fires exactly one time, then the reminder is disabled.
	RepeatOnce Repeat = "once"
	// RepeatDaily recurs every day, optionally filtered by day of week.
	RepeatDaily Repeat = "daily"
)

// String returns the string representation of the Repeat mode.
func (r Repeat) String() string {
	return string(r)
}

// IsValid checks if the Repeat mode is a valid value.
func (r Repeat) IsValid() bool {
	switch r {
	case RepeatOnce, RepeatDaily:
		return true
	default:
		return false
	}
}

// ReminderType selects the notification channel, title and deep link used
// when a reminder fires.
type ReminderType string

const (
	// TypeMeal reminds the user to log a meal.
	TypeMeal ReminderType = "meal"
	// TypeWeight reminds the user to log their weight.
	TypeWeight ReminderType = "weight"
)

// String returns the string representation of the ReminderType.
func (t ReminderType) String() string {
	return string(t)
}

// IsValid checks if the ReminderType is a valid value.
func (t ReminderType) IsValid() bool {
	switch t {
	case TypeMeal, TypeWeight:
		return true
	default:
		return false
	}
}

// Weekday identifies a day of week using the calendar convention
// Sunday=1 .. Saturday=7.
type Weekday int

const (
	Sunday    Weekday = 1
	Monday    Weekday = 2
	Tuesday   Weekday = 3
	Wednesday Weekday = 4
	Thursday  Weekday = 5
	Friday    Weekday = 6
	Saturday  Weekday = 7
)

// IsValid checks that the weekday lies in the Sunday=1..Saturday=7 range.
func (w Weekday) IsValid() bool {
	return w >= Sunday && w <= Saturday
}

// WeekdayOf converts a time.Weekday (Sunday=0) to the Sunday=1 convention.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(int(t.Weekday()) + 1)
}

// Reminder represents a user-configured reminder preference.
type Reminder struct {
	ID         string       `json:"id" firestore:"-"`                   // Document id assigned by the store; empty means not yet persisted.
	UserID     string       `json:"user_id" firestore:"userId"`         // The Firebase uid of the owning user.
	Hour       int          `json:"hour" firestore:"hour"`              // Local wall-clock hour the reminder fires (0-23).
	Minute     int          `json:"minute" firestore:"minute"`          // Local wall-clock minute the reminder fires (0-59).
	Repeat     Repeat       `json:"repeat" firestore:"repeat"`          // Once or daily.
	DaysOfWeek []Weekday    `json:"days_of_week" firestore:"daysOfWeek"` // Sunday=1..Saturday=7; empty means every day.
	Message    string       `json:"message" firestore:"message"`        // Free-text notification body.
	Type       ReminderType `json:"type" firestore:"type"`              // Meal or weight.
	Enabled    bool         `json:"enabled" firestore:"enabled"`        // False means no timer should be active.
	CreatedAt  time.Time    `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time    `json:"updated_at" firestore:"updatedAt"`
}

// UniqueID derives a stable non-negative int32 from the persisted id, used
// as the timer and notification key. The same id always yields the same
// value; distinct ids collide with negligible probability.
func (r *Reminder) UniqueID() int32 {
	return UniqueIDOf(r.ID)
}

// UniqueIDOf hashes a reminder id into the int31 timer key space.
func UniqueIDOf(id string) int32 {
	h := fnv.New32a()
	h.Write([]byte(id))

	return int32(h.Sum32() & 0x7fffffff)
}

// FiresOn reports whether the reminder's day-of-week filter admits the given
// day. An empty filter admits every day.
func (r *Reminder) FiresOn(day Weekday) bool {
	if len(r.DaysOfWeek) == 0 {
		return true
	}
	for _, d := range r.DaysOfWeek {
		if d == day {
			return true
		}
	}

	return false
}

// FirePayload builds the payload a registered timer carries back at fire time.
func (r *Reminder) FirePayload() FirePayload {
	return FirePayload{
		UniqueID:   r.UniqueID(),
		ReminderID: r.ID,
		UserID:     r.UserID,
		Message:    r.Message,
		Repeat:     r.Repeat,
		Type:       r.Type,
		DaysOfWeek: append([]Weekday(nil), r.DaysOfWeek...),
		Hour:       r.Hour,
		Minute:     r.Minute,
	}
}
