// Package history keeps the most recent spoken announcements so the user
// can re-read anything they missed.
package history

import "sync"

// DefaultCapacity bounds the log when the caller passes zero.
const DefaultCapacity = 10

// Log is a fixed-capacity, most-recent-first record of announcements.
// The mutex guards against reentrant host callbacks touching the log
// while input handling is mid-record; there is no real cross-thread
// contention in the host's frame model.
type Log struct {
	mu       sync.Mutex
	entries  []string
	capacity int
}

// NewLog builds a log holding at most capacity entries.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Record inserts text at the front, evicting the oldest entry past
// capacity. Empty strings are ignored.
func (l *Log) Record(text string) {
	if text == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]string{text}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	dup := make([]string, len(l.entries))
	copy(dup, l.entries)
	return dup
}

// At returns the entry at index (0 = newest).
func (l *Log) At(index int) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.entries) {
		return "", false
	}
	return l.entries[index], true
}

// Len reports the number of stored entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Capacity reports the maximum number of stored entries.
func (l *Log) Capacity() int {
	return l.capacity
}
