package timer

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"nudge/config"
	"nudge/internal/domain/entity"
	"nudge/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T, allowExact bool) *Table {
	t.Helper()

	cfg := &config.Config{
		Timer: &config.TimerConfig{
			AllowExact:   allowExact,
			Grace:        time.Minute,
			JitterWindow: 20 * time.Millisecond,
		},
	}

	table := NewTable(cfg, slog.Default())
	t.Cleanup(table.Stop)

	return table
}

// fireCollector records fired payloads for assertions.
type fireCollector struct {
	mu       sync.Mutex
	payloads []entity.FirePayload
	fired    chan struct{}
}

func newFireCollector() *fireCollector {
	return &fireCollector{fired: make(chan struct{}, 16)}
}

func (c *fireCollector) handle(_ context.Context, p entity.FirePayload) {
	c.mu.Lock()
	c.payloads = append(c.payloads, p)
	c.mu.Unlock()
	c.fired <- struct{}{}
}

func (c *fireCollector) wait(t *testing.T) {
	t.Helper()
	select {
	case <-c.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
}

func (c *fireCollector) collected() []entity.FirePayload {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]entity.FirePayload(nil), c.payloads...)
}

func TestTable_RegisterExactWake_Fires(t *testing.T) {
	table := newTestTable(t, true)
	collector := newFireCollector()
	table.SetHandler(collector.handle)

	payload := entity.FirePayload{UniqueID: 42, ReminderID: "rem-1", Message: "hi"}

	err := table.RegisterExactWake(42, time.Now().Add(20*time.Millisecond), payload)
	require.NoError(t, err)

	collector.wait(t)

	got := collector.collected()
	require.Len(t, got, 1)
	assert.Equal(t, payload, got[0])
	assert.Empty(t, table.Keys(), "fired timer must leave the table")
}

func TestTable_RegisterExactWake_DeniedByPolicy(t *testing.T) {
	table := newTestTable(t, false)

	err := table.RegisterExactWake(1, time.Now().Add(time.Hour), entity.FirePayload{UniqueID: 1})
	assert.ErrorIs(t, err, service.ErrExactWakeDenied)
	assert.Empty(t, table.Keys())
}

func TestTable_RegisterInexactWake_FiresWithinWindow(t *testing.T) {
	table := newTestTable(t, false)
	collector := newFireCollector()
	table.SetHandler(collector.handle)

	err := table.RegisterInexactWake(7, time.Now(), entity.FirePayload{UniqueID: 7})
	require.NoError(t, err)

	collector.wait(t)
	require.Len(t, collector.collected(), 1)
}

func TestTable_Register_ReplacesSameKey(t *testing.T) {
	table := newTestTable(t, true)
	collector := newFireCollector()
	table.SetHandler(collector.handle)

	stale := entity.FirePayload{UniqueID: 9, Message: "stale"}
	current := entity.FirePayload{UniqueID: 9, Message: "current"}

	require.NoError(t, table.RegisterExactWake(9, time.Now().Add(time.Hour), stale))
	require.NoError(t, table.RegisterExactWake(9, time.Now().Add(20*time.Millisecond), current))

	assert.Len(t, table.Keys(), 1, "same key must hold at most one timer")

	collector.wait(t)

	got := collector.collected()
	require.Len(t, got, 1)
	assert.Equal(t, "current", got[0].Message)
}

func TestTable_Cancel_UnknownKeyIsNoOp(t *testing.T) {
	table := newTestTable(t, true)

	table.Cancel(12345)
	table.Cancel(12345)
}

func TestTable_Cancel_StopsPendingTimer(t *testing.T) {
	table := newTestTable(t, true)
	collector := newFireCollector()
	table.SetHandler(collector.handle)

	require.NoError(t, table.RegisterExactWake(3, time.Now().Add(30*time.Millisecond), entity.FirePayload{UniqueID: 3}))
	table.Cancel(3)

	select {
	case <-collector.fired:
		t.Fatal("cancelled timer still fired")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Empty(t, table.Keys())
}

func TestTable_PastInstantFiresImmediately(t *testing.T) {
	table := newTestTable(t, true)
	collector := newFireCollector()
	table.SetHandler(collector.handle)

	require.NoError(t, table.RegisterExactWake(5, time.Now().Add(-time.Second), entity.FirePayload{UniqueID: 5}))

	collector.wait(t)
}
