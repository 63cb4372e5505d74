// Package search implements the type-ahead buffer shared by every overlay
// and the fuzzy matching helpers used for jump-to searches.
package search

import "strings"

// TypeAhead accumulates typed characters and resolves them against an
// ordered list of search keys. Matching is first-prefix-wins in list
// order, case-insensitive. The buffer survives a failed match so a longer
// or shorter prefix can still resolve later.
type TypeAhead struct {
	buffer []rune
}

// Active reports whether a search is in progress.
func (t *TypeAhead) Active() bool {
	return len(t.buffer) > 0
}

// Buffer returns the current search text.
func (t *TypeAhead) Buffer() string {
	return string(t.buffer)
}

// Clear drops the buffer. Callers invoke this on navigation, cancel, and
// close so stale search state never leaks into plain movement.
func (t *TypeAhead) Clear() {
	t.buffer = t.buffer[:0]
}

// Push appends r to the buffer and returns the index of the first key the
// buffer prefixes, or -1 when nothing matches. The buffer is kept either
// way.
func (t *TypeAhead) Push(r rune, keys []string) int {
	t.buffer = append(t.buffer, r)
	return t.match(keys)
}

// Pop removes the last buffered rune and re-runs the match against the
// shorter prefix. When the buffer empties it returns -1 and ok=false so
// the caller announces "search cleared" instead of a match.
func (t *TypeAhead) Pop(keys []string) (int, bool) {
	if len(t.buffer) == 0 {
		return -1, false
	}
	t.buffer = t.buffer[:len(t.buffer)-1]
	if len(t.buffer) == 0 {
		return -1, false
	}
	return t.match(keys), true
}

func (t *TypeAhead) match(keys []string) int {
	return PrefixMatchIndex(keys, string(t.buffer))
}

// PrefixMatchIndex returns the first key in order that starts with query,
// folding case. Empty keys never match; an empty query matches nothing.
func PrefixMatchIndex(keys []string, query string) int {
	if query == "" {
		return -1
	}
	folded := strings.ToLower(query)
	for i, k := range keys {
		if k == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(k), folded) {
			return i
		}
	}
	return -1
}
