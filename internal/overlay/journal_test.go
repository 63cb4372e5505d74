package overlay

import (
	"strings"
	"testing"

	"github.com/sightcast/narrator/internal/game"
	"github.com/sightcast/narrator/internal/key"
)

type fakeJournal struct {
	cats    []game.Category
	entries map[string][]game.Entry
	toggled []string
}

func newFakeJournal() *fakeJournal {
	return &fakeJournal{
		cats: []game.Category{
			{ID: "quests", Label: "Quests"},
			{ID: "creatures", Label: "Creatures"},
		},
		entries: map[string][]game.Entry{
			"quests": {
				{ID: "q1", Label: "Fix the mill", Text: "The mill wheel has jammed."},
				{ID: "q2", Label: "Find the cat", Text: "Last seen near the barn.", Tracked: true},
			},
			"creatures": {},
		},
	}
}

func (f *fakeJournal) Categories() []game.Category { return f.cats }

func (f *fakeJournal) Entries(categoryID string) []game.Entry {
	return f.entries[categoryID]
}

func (f *fakeJournal) ToggleTracked(id string) error {
	f.toggled = append(f.toggled, id)
	for cat, entries := range f.entries {
		for i, e := range entries {
			if e.ID == id {
				f.entries[cat][i].Tracked = !e.Tracked
			}
		}
	}
	return nil
}

func newTestJournal(rec *recorder) (*Journal, *fakeJournal) {
	facade := newFakeJournal()
	return NewJournal(testEnv(rec), facade), facade
}

func TestJournalDescendAscend(t *testing.T) {
	rec := &recorder{}
	j, _ := newTestJournal(rec)
	j.Open()
	if !strings.Contains(rec.last(), "Quests") {
		t.Fatalf("expected header with first category, got %q", rec.last())
	}

	press(j, key.CodeRight)
	if !j.AtEntries() {
		t.Fatalf("Right must descend")
	}
	if !strings.Contains(rec.last(), "Fix the mill") {
		t.Fatalf("descent must announce first entry, got %q", rec.last())
	}

	press(j, key.CodeDown)
	if !strings.Contains(rec.last(), "Find the cat") {
		t.Fatalf("expected second entry, got %q", rec.last())
	}

	press(j, key.CodeLeft)
	if j.AtEntries() {
		t.Fatalf("Left must ascend")
	}
	if !strings.Contains(rec.last(), "Quests") || strings.Contains(rec.last(), "cat") {
		t.Fatalf("ascent must re-announce the category, got %q", rec.last())
	}
}

func TestJournalLeftAtTopFallsThrough(t *testing.T) {
	rec := &recorder{}
	j, _ := newTestJournal(rec)
	j.Open()
	if press(j, key.CodeLeft) {
		t.Fatalf("Left at the category level must fall through")
	}
	if !j.IsOpen() {
		t.Fatalf("falling through must not close the overlay")
	}
	// Everything else stays modal.
	if !press(j, key.CodeTab) {
		t.Fatalf("unmapped keys are still swallowed while open")
	}
}

func TestJournalEachDescentResetsCursor(t *testing.T) {
	rec := &recorder{}
	j, _ := newTestJournal(rec)
	j.Open()
	press(j, key.CodeRight)
	press(j, key.CodeDown)
	press(j, key.CodeLeft)
	press(j, key.CodeRight)
	if !strings.Contains(rec.last(), "Fix the mill") {
		t.Fatalf("re-descending must start at the first entry, got %q", rec.last())
	}
}

func TestJournalToggleTracked(t *testing.T) {
	rec := &recorder{}
	j, facade := newTestJournal(rec)
	j.Open()
	press(j, key.CodeRight)
	press(j, key.CodeEnter)
	if len(facade.toggled) != 1 || facade.toggled[0] != "q1" {
		t.Fatalf("expected toggle of q1, got %v", facade.toggled)
	}
	if !strings.Contains(rec.last(), "Tracking Fix the mill") {
		t.Fatalf("expected tracking announcement, got %q", rec.last())
	}
	press(j, key.CodeEnter)
	if !strings.Contains(rec.last(), "Stopped tracking") {
		t.Fatalf("expected untracking announcement, got %q", rec.last())
	}
}

func TestJournalVerboseToggleAnnouncesTrackedCount(t *testing.T) {
	rec := &recorder{}
	env := testEnv(rec)
	env.Verbose = true
	j := NewJournal(env, newFakeJournal())
	j.Open()
	press(j, key.CodeRight)
	// q2 is already tracked, so tracking q1 makes two.
	press(j, key.CodeEnter)
	if rec.last() != "Tracking Fix the mill. 2 tracked" {
		t.Fatalf("verbose toggle must announce the tracked count, got %q", rec.last())
	}
	press(j, key.CodeEnter)
	if rec.last() != "Stopped tracking Fix the mill. 1 tracked" {
		t.Fatalf("verbose untoggle must announce the tracked count, got %q", rec.last())
	}
}

func TestJournalSpaceReadsEntryText(t *testing.T) {
	rec := &recorder{}
	j, _ := newTestJournal(rec)
	j.Open()
	press(j, key.CodeRight)
	press(j, key.CodeSpace)
	if rec.last() != "The mill wheel has jammed." {
		t.Fatalf("expected entry body, got %q", rec.last())
	}
}

func TestJournalEmptyCategory(t *testing.T) {
	rec := &recorder{}
	j, _ := newTestJournal(rec)
	j.Open()
	press(j, key.CodeDown)
	press(j, key.CodeRight)
	if !strings.Contains(rec.last(), "No entries in Creatures") {
		t.Fatalf("expected empty-category announcement, got %q", rec.last())
	}
	count := len(rec.spoken)
	press(j, key.CodeDown)
	if len(rec.spoken) != count {
		t.Fatalf("navigation in an empty level must be a no-op")
	}
	press(j, key.CodeLeft)
	if !strings.Contains(rec.last(), "Creatures") {
		t.Fatalf("ascending out of an empty level announces the category, got %q", rec.last())
	}
}

func TestJournalEscapeAscendsBeforeClosing(t *testing.T) {
	rec := &recorder{}
	j, _ := newTestJournal(rec)
	j.Open()
	press(j, key.CodeRight)
	press(j, key.CodeEscape)
	if !j.IsOpen() || j.AtEntries() {
		t.Fatalf("first escape ascends, not closes")
	}
	press(j, key.CodeEscape)
	if j.IsOpen() {
		t.Fatalf("second escape closes")
	}
}

func TestJournalTypeAheadScopedToLevel(t *testing.T) {
	rec := &recorder{}
	j, _ := newTestJournal(rec)
	j.Open()
	press(j, key.CodeRight)
	typeRune(j, 'f')
	if !strings.Contains(rec.last(), "Fix the mill") {
		t.Fatalf("search must match within the entry level, got %q", rec.last())
	}
	typeRune(j, 'i')
	typeRune(j, 'n')
	if !strings.Contains(rec.last(), "Find the cat") {
		t.Fatalf("expected Find the cat, got %q", rec.last())
	}
	// Ascending discards the buffer.
	press(j, key.CodeLeft)
	typeRune(j, 'c')
	if !strings.Contains(rec.last(), "Creatures") {
		t.Fatalf("search after ascent runs over categories, got %q", rec.last())
	}
}
