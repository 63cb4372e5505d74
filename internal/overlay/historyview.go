package overlay

import (
	"fmt"

	"github.com/sightcast/narrator/internal/history"
	"github.com/sightcast/narrator/internal/key"
	"github.com/sightcast/narrator/internal/search"
)

// HistoryView is the read-only browser over the announcement history. It
// navigates its own snapshot and never touches any other overlay's state.
type HistoryView struct {
	Base
	log   *history.Log
	level *Level
}

// NewHistoryView builds the history browser over the shared log.
func NewHistoryView(env Env, log *history.Log) *HistoryView {
	h := &HistoryView{
		Base: newBase("history", env),
		log:  log,
	}
	h.level = NewLevel("History", nil)
	h.level.EmptyMessage = "Nothing has been announced yet"
	h.reannounce = func() { h.announceCurrent(h.level, 0) }
	return h
}

// Open snapshots the log, newest first, and announces the most recent
// entry.
func (h *HistoryView) Open() {
	if h.open {
		return
	}
	h.RefreshData()
	h.level.Cursor.Home()
	h.doOpen(len(h.level.Items))
	if len(h.level.Items) == 0 {
		h.say("History. " + h.level.emptyMessage())
		return
	}
	item, _ := h.level.Current()
	h.say(fmt.Sprintf("History, %d entries. %s", len(h.level.Items), item.Label))
}

// Close is idempotent.
func (h *HistoryView) Close() {
	h.doClose()
}

// RefreshData snapshots the log.
func (h *HistoryView) RefreshData() {
	entries := h.log.Entries()
	items := make([]Item, 0, len(entries))
	for i, text := range entries {
		items = append(items, Item{ID: fmt.Sprintf("entry-%d", i), Label: text})
	}
	h.level.Update(items)
}

// ProcessKey implements dispatch.Handler. Fully modal.
func (h *HistoryView) ProcessKey(ev key.Event) bool {
	if !h.open {
		return false
	}
	switch {
	case ev.Plain(key.CodeUp):
		h.move(h.level, -1, 0)
	case ev.Plain(key.CodeDown):
		h.move(h.level, 1, 0)
	case ev.Plain(key.CodeHome):
		h.jumpHome(h.level, 0)
	case ev.Plain(key.CodeEnd):
		h.jumpEnd(h.level, 0)
	case ev.Plain(key.CodeEnter):
		h.announceCurrent(h.level, 0)
	case ev.Plain(key.CodeTab):
		h.fuzzyJump()
	case ev.Plain(key.CodeBackspace):
		h.searchBackspace(h.level, 0)
	case ev.Plain(key.CodeEscape):
		if !h.escapeClearsSearch() {
			h.swallowCancel()
			h.Close()
		}
	case ev.IsChar():
		h.typeChar(h.level, ev.Rune, 0)
	}
	return true
}

// fuzzyJump lands on the closest match for the current search buffer even
// when no entry prefixes it.
func (h *HistoryView) fuzzyJump() {
	if !h.typeahead.Active() || len(h.level.Items) == 0 {
		return
	}
	idx := search.BestMatchIndex(h.level.SearchKeys(), h.typeahead.Buffer())
	if idx < 0 {
		return
	}
	h.level.MoveTo(idx)
	h.announceCurrent(h.level, 0)
}
