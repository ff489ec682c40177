// Package timer implements the wake timer facility as an in-process table
// of keyed one-shot timers. Registrations are last-write-wins per key.
package timer

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"nudge/config"
	"nudge/internal/domain/entity"
	"nudge/internal/domain/service"
)

// FireHandler is invoked when a registered timer fires.
type FireHandler func(ctx context.Context, payload entity.FirePayload)

type registration struct {
	timer *time.Timer
}

// Table is a keyed table of pending wake timers. It implements
// service.TimerService.
type Table struct {
	mu      sync.Mutex
	regs    map[int32]*registration
	handler FireHandler

	allowExact   bool
	jitterWindow time.Duration
	logger       *slog.Logger
}

// NewTable creates an empty timer table.
func NewTable(cfg *config.Config, logger *slog.Logger) *Table {
	timerCfg := cfg.Timer
	if timerCfg == nil {
		timerCfg = &config.TimerConfig{AllowExact: true, JitterWindow: 10 * time.Minute}
	}

	return &Table{
		regs:         make(map[int32]*registration),
		allowExact:   timerCfg.AllowExact,
		jitterWindow: timerCfg.JitterWindow,
		logger:       logger,
	}
}

// SetHandler installs the callback invoked at fire time. Must be called
// before any registration; timers firing without a handler are dropped
// with a log.
func (t *Table) SetHandler(h FireHandler) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = h
}

// RegisterExactWake schedules payload delivery at exactly the given instant.
// Returns service.ErrExactWakeDenied when exact scheduling is disabled by
// policy.
func (t *Table) RegisterExactWake(key int32, at time.Time, payload entity.FirePayload) error {
	if !t.allowExact {
		return service.ErrExactWakeDenied
	}

	t.register(key, at, payload)

	return nil
}

// RegisterInexactWake schedules payload delivery at or shortly after the
// given instant, delayed by a random amount inside the jitter window.
func (t *Table) RegisterInexactWake(key int32, at time.Time, payload entity.FirePayload) error {
	if t.jitterWindow > 0 {
		at = at.Add(rand.N(t.jitterWindow))
	}

	t.register(key, at, payload)

	return nil
}

// Cancel unregisters any timer held under key. A no-op for unknown keys.
func (t *Table) Cancel(key int32) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if reg, ok := t.regs[key]; ok {
		reg.timer.Stop()
		delete(t.regs, key)
	}
}

// Keys returns the keys of all currently registered timers.
func (t *Table) Keys() []int32 {
	t.mu.Lock()
	defer t.mu.Unlock()

	keys := make([]int32, 0, len(t.regs))
	for key := range t.regs {
		keys = append(keys, key)
	}

	return keys
}

// Stop cancels every pending timer. Used at shutdown.
func (t *Table) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, reg := range t.regs {
		reg.timer.Stop()
		delete(t.regs, key)
	}
}

func (t *Table) register(key int32, at time.Time, payload entity.FirePayload) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Re-registration replaces any prior timer under the same key.
	if prev, ok := t.regs[key]; ok {
		prev.timer.Stop()
	}

	reg := &registration{}
	t.regs[key] = reg
	reg.timer = time.AfterFunc(time.Until(at), func() {
		t.fire(key, reg, payload)
	})
}

func (t *Table) fire(key int32, reg *registration, payload entity.FirePayload) {
	t.mu.Lock()
	// Only the registration that fired may remove itself; a concurrent
	// re-registration under the same key stays untouched.
	if current, ok := t.regs[key]; ok && current == reg {
		delete(t.regs, key)
	}
	handler := t.handler
	t.mu.Unlock()

	if handler == nil {
		t.logger.Warn("timer fired without a handler installed",
			slog.Int("key", int(key)),
		)

		return
	}

	handler(context.Background(), payload)
}
