package history

import (
	"fmt"
	"testing"
)

func TestRecordMostRecentFirst(t *testing.T) {
	l := NewLog(3)
	l.Record("one")
	l.Record("two")
	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0] != "two" || entries[1] != "one" {
		t.Fatalf("expected newest first, got %v", entries)
	}
}

func TestRecordEvictsPastCapacity(t *testing.T) {
	l := NewLog(3)
	for i := 1; i <= 5; i++ {
		l.Record(fmt.Sprintf("entry %d", i))
	}
	if l.Len() != 3 {
		t.Fatalf("expected capacity 3 enforced, got %d", l.Len())
	}
	entries := l.Entries()
	if entries[0] != "entry 5" || entries[2] != "entry 3" {
		t.Fatalf("expected oldest evicted, got %v", entries)
	}
}

func TestAt(t *testing.T) {
	l := NewLog(2)
	l.Record("a")
	if got, ok := l.At(0); !ok || got != "a" {
		t.Fatalf("expected entry %q, got %q ok=%v", "a", got, ok)
	}
	if _, ok := l.At(1); ok {
		t.Fatalf("expected out-of-range miss")
	}
	if _, ok := l.At(-1); ok {
		t.Fatalf("expected negative index miss")
	}
}

func TestEmptyAndZeroCapacity(t *testing.T) {
	l := NewLog(0)
	if l.Capacity() != DefaultCapacity {
		t.Fatalf("expected default capacity, got %d", l.Capacity())
	}
	l.Record("")
	if l.Len() != 0 {
		t.Fatalf("empty strings must be ignored")
	}
}
