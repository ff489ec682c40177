package service

import (
	"time"

	"nudge/internal/domain/entity"
	"nudge/internal/errors"
)

// ErrExactWakeDenied is returned when exact-wake registration is refused by
// policy. Callers are expected to fall back to an inexact registration.
var ErrExactWakeDenied = errors.New("exact wake scheduling denied by policy")

// TimerService is the platform wake timer facility. Registrations are keyed:
// registering a key that already holds a timer replaces the prior one.
// Cancelling an unknown key is a no-op.
type TimerService interface {
	// RegisterExactWake schedules payload delivery at exactly the given instant.
	RegisterExactWake(key int32, at time.Time, payload entity.FirePayload) error

	// RegisterInexactWake schedules payload delivery at or shortly after the
	// given instant, within the service's jitter window.
	RegisterInexactWake(key int32, at time.Time, payload entity.FirePayload) error

	// Cancel unregisters any timer held under key.
	Cancel(key int32)

	// Keys returns the keys of all currently registered timers.
	Keys() []int32
}
