package overlay

import "github.com/sightcast/narrator/internal/nav"

// Level is one navigable list inside an overlay: its items, cursor, and
// announcement formatting. Multi-level overlays hold one Level per depth
// and drop deeper levels on ascent so stale references never linger.
type Level struct {
	Title        string
	EmptyMessage string
	Items        []Item
	Cursor       nav.Cursor
	// Describe formats the item-only announcement. Defaults to the label.
	Describe func(Item) string
}

// NewLevel builds a level with the cursor on the first item.
func NewLevel(title string, items []Item) *Level {
	l := &Level{Title: title}
	l.Reset(items)
	return l
}

// Reset swaps in a fresh snapshot and moves the cursor home.
func (l *Level) Reset(items []Item) {
	l.Items = items
	l.Cursor.Reset(len(items))
}

// Update swaps in a fresh snapshot keeping the cursor clamped in place.
func (l *Level) Update(items []Item) {
	l.Items = items
	l.Cursor.Resize(len(items))
}

// Current returns the item under the cursor.
func (l *Level) Current() (Item, bool) {
	if !l.Cursor.Valid() || l.Cursor.Index >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor.Index], true
}

// IndexOf finds an item by ID, or -1.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// MoveTo places the cursor on index when valid.
func (l *Level) MoveTo(index int) bool {
	if index < 0 || index >= len(l.Items) {
		return false
	}
	l.Cursor.Index = index
	return true
}

// SearchKeys returns the keys type-ahead matches against, in item order.
func (l *Level) SearchKeys() []string {
	keys := make([]string, len(l.Items))
	for i, item := range l.Items {
		keys[i] = item.Key()
	}
	return keys
}

func (l *Level) describe(item Item) string {
	if l.Describe != nil {
		return l.Describe(item)
	}
	return item.Label
}

func (l *Level) emptyMessage() string {
	if l.EmptyMessage != "" {
		return l.EmptyMessage
	}
	return "No items"
}
