package overlay

import (
	"fmt"

	"github.com/sightcast/narrator/internal/audio"
	"github.com/sightcast/narrator/internal/game"
	"github.com/sightcast/narrator/internal/key"
	"github.com/sightcast/narrator/internal/logging/events"
)

// Journal is the two-level category-then-entry overlay. Right or Enter on
// a category descends into its entries; Left ascends, dropping the entry
// snapshot and re-announcing the category. Left at the category level is
// the one key allowed to fall through to the handler below.
type Journal struct {
	Base
	facade  game.Journal
	cats    *Level
	entries *Level
}

// NewJournal builds the journal overlay over the given facade.
func NewJournal(env Env, facade game.Journal) *Journal {
	j := &Journal{
		Base:   newBase("journal", env),
		facade: facade,
	}
	j.cats = NewLevel("Journal", nil)
	j.cats.EmptyMessage = "The journal is empty"
	j.reannounce = func() { j.announceCurrent(j.current(), j.depth()) }
	return j
}

// Open refreshes categories and announces the header plus the first one.
func (j *Journal) Open() {
	if j.open {
		return
	}
	j.RefreshData()
	j.cats.Cursor.Home()
	j.entries = nil
	j.doOpen(len(j.cats.Items))
	if len(j.cats.Items) == 0 {
		j.say("Journal. " + j.cats.emptyMessage())
		return
	}
	item, _ := j.cats.Current()
	j.say("Journal. " + j.cats.describe(item))
}

// Close is idempotent.
func (j *Journal) Close() {
	if j.doClose() {
		j.entries = nil
	}
}

// RefreshData rebuilds the category snapshot.
func (j *Journal) RefreshData() {
	cats := j.facade.Categories()
	items := make([]Item, 0, len(cats))
	for _, cat := range cats {
		items = append(items, Item{ID: cat.ID, Label: cat.Label, Payload: cat})
	}
	j.cats.Update(items)
}

// AtEntries reports whether navigation is inside a category.
func (j *Journal) AtEntries() bool {
	return j.entries != nil
}

func (j *Journal) current() *Level {
	if j.entries != nil {
		return j.entries
	}
	return j.cats
}

func (j *Journal) depth() int {
	if j.entries != nil {
		return 1
	}
	return 0
}

// ProcessKey implements dispatch.Handler. Modal except for Left at the
// category level, which falls through.
func (j *Journal) ProcessKey(ev key.Event) bool {
	if !j.open {
		return false
	}
	level := j.current()
	switch {
	case ev.Plain(key.CodeUp):
		j.move(level, -1, j.depth())
	case ev.Plain(key.CodeDown):
		j.move(level, 1, j.depth())
	case ev.Plain(key.CodeHome):
		j.jumpHome(level, j.depth())
	case ev.Plain(key.CodeEnd):
		j.jumpEnd(level, j.depth())
	case ev.Plain(key.CodeRight):
		if !j.AtEntries() {
			j.enterCategory()
		}
	case ev.Plain(key.CodeLeft):
		if !j.AtEntries() {
			// Top level: let the parent handler take Left.
			return false
		}
		j.exitCategory()
	case ev.Plain(key.CodeEnter):
		j.activate()
	case ev.Plain(key.CodeSpace):
		j.readEntryText()
	case ev.Plain(key.CodeBackspace):
		j.searchBackspace(level, j.depth())
	case ev.Plain(key.CodeEscape):
		if j.escapeClearsSearch() {
			break
		}
		if j.AtEntries() {
			j.exitCategory()
			break
		}
		j.swallowCancel()
		j.Close()
	case ev.IsChar():
		j.typeChar(level, ev.Rune, j.depth())
	}
	return true
}

// enterCategory descends into the entries of the selected category,
// resetting the deeper cursor and announcing its first item.
func (j *Journal) enterCategory() {
	cat, ok := j.cats.Current()
	if !ok {
		j.say(j.cats.emptyMessage())
		return
	}
	j.typeahead.Clear()
	entries := j.facade.Entries(cat.ID)
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		status := StatusNone
		if entry.Tracked {
			status = StatusAchieved
		}
		items = append(items, Item{ID: entry.ID, Label: entry.Label, Status: status, Payload: entry})
	}
	j.entries = NewLevel(cat.Label, items)
	j.entries.EmptyMessage = fmt.Sprintf("No entries in %s", cat.Label)
	j.entries.Describe = describeEntry
	j.cue(audio.CueSelect)
	j.announceCurrent(j.entries, 1)
}

// exitCategory drops the entry snapshot and re-announces the parent
// category, not the entry the cursor was on.
func (j *Journal) exitCategory() {
	j.typeahead.Clear()
	j.entries = nil
	j.cue(audio.CueMove)
	j.announceCurrent(j.cats, 0)
}

func (j *Journal) activate() {
	if !j.AtEntries() {
		j.enterCategory()
		return
	}
	item, ok := j.entries.Current()
	if !ok {
		j.say(j.entries.emptyMessage())
		return
	}
	entry, _ := item.Payload.(game.Entry)
	err := j.facade.ToggleTracked(item.ID)
	events.Overlay.Action(j.name, item.ID, err)
	if err != nil {
		j.cue(audio.CueFailure)
		j.say(err.Error())
		return
	}
	j.cue(audio.CueSuccess)
	text := fmt.Sprintf("Tracking %s", item.Label)
	if entry.Tracked {
		text = fmt.Sprintf("Stopped tracking %s", item.Label)
	}
	if cat, ok := j.cats.Current(); ok && j.env.Verbose {
		text = fmt.Sprintf("%s. %d tracked", text, j.trackedCount(cat.ID))
	}
	j.say(text)
	j.refreshEntries(item.ID)
}

func (j *Journal) trackedCount(categoryID string) int {
	count := 0
	for _, entry := range j.facade.Entries(categoryID) {
		if entry.Tracked {
			count++
		}
	}
	return count
}

// refreshEntries re-snapshots the open category, keeping the cursor on
// the acted-upon entry.
func (j *Journal) refreshEntries(keepID string) {
	if !j.AtEntries() {
		return
	}
	cat, ok := j.cats.Current()
	if !ok {
		return
	}
	entries := j.facade.Entries(cat.ID)
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		status := StatusNone
		if entry.Tracked {
			status = StatusAchieved
		}
		items = append(items, Item{ID: entry.ID, Label: entry.Label, Status: status, Payload: entry})
	}
	j.entries.Update(items)
	if idx := j.entries.IndexOf(keepID); idx >= 0 {
		j.entries.MoveTo(idx)
	}
}

// readEntryText speaks the full body of the selected entry.
func (j *Journal) readEntryText() {
	if !j.AtEntries() {
		return
	}
	item, ok := j.entries.Current()
	if !ok {
		j.say(j.entries.emptyMessage())
		return
	}
	entry, _ := item.Payload.(game.Entry)
	if entry.Text == "" {
		j.say("Nothing written yet")
		return
	}
	j.say(entry.Text)
}

func describeEntry(item Item) string {
	if item.Status == StatusAchieved {
		return item.Label + ", tracked"
	}
	return item.Label
}
