// Package schedule implements the one-shot deferral used for hint
// announcements that must wait for the host UI to finish rendering before
// speaking.
package schedule

import (
	"sync"
	"time"
)

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	After(d time.Duration, fn func()) Cancel
}

// Cancel stops a pending callback. Calling it after the callback ran is
// harmless.
type Cancel func()

// Timer schedules on the real clock.
type Timer struct{}

// NewTimer returns a wall-clock scheduler.
func NewTimer() Timer {
	return Timer{}
}

// After fires fn once after d.
func (Timer) After(d time.Duration, fn func()) Cancel {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Manual is a test scheduler that fires only when told to.
type Manual struct {
	mu      sync.Mutex
	pending []*manualEntry
}

type manualEntry struct {
	fn func()
}

// NewManual returns a scheduler driven by Fire.
func NewManual() *Manual {
	return &Manual{}
}

// After records fn without running it. The returned Cancel drops only
// its own entry, even after a Fire reset the pending list.
func (m *Manual) After(d time.Duration, fn func()) Cancel {
	entry := &manualEntry{fn: fn}
	m.mu.Lock()
	m.pending = append(m.pending, entry)
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		entry.fn = nil
		m.mu.Unlock()
	}
}

// Fire runs every pending callback in order and drops them.
func (m *Manual) Fire() {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, entry := range pending {
		if entry.fn != nil {
			entry.fn()
		}
	}
}

// PendingCount reports how many callbacks are waiting.
func (m *Manual) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, entry := range m.pending {
		if entry.fn != nil {
			n++
		}
	}
	return n
}
