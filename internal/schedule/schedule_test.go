package schedule

import (
	"testing"
	"time"
)

func TestManualFire(t *testing.T) {
	m := NewManual()
	ran := 0
	m.After(time.Second, func() { ran++ })
	m.After(time.Second, func() { ran++ })
	if m.PendingCount() != 2 {
		t.Fatalf("expected 2 pending, got %d", m.PendingCount())
	}
	m.Fire()
	if ran != 2 {
		t.Fatalf("expected both callbacks run, got %d", ran)
	}
	if m.PendingCount() != 0 {
		t.Fatalf("expected queue drained")
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	ran := false
	cancel := m.After(time.Second, func() { ran = true })
	cancel()
	m.Fire()
	if ran {
		t.Fatalf("cancelled callback must not run")
	}
}

func TestTimerFires(t *testing.T) {
	done := make(chan struct{})
	NewTimer().After(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("timer callback never fired")
	}
}
