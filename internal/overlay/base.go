package overlay

import (
	"github.com/sightcast/narrator/internal/audio"
	"github.com/sightcast/narrator/internal/gate"
	"github.com/sightcast/narrator/internal/logging/events"
	"github.com/sightcast/narrator/internal/search"
	"github.com/sightcast/narrator/internal/speech"
)

// Env bundles the shared collaborators every overlay receives from the
// composition root.
type Env struct {
	Announcer *speech.Announcer
	Sounds    audio.Player
	Gate      *gate.Gate

	// Verbose enriches successful-action announcements with extra
	// detail, like the balance left after a purchase.
	Verbose bool
}

// Base carries the state machinery common to all overlays: the open and
// suspended flags, the type-ahead buffer, the pending destructive-action
// confirmation, and the announce/cue plumbing.
type Base struct {
	name      string
	env       Env
	typeahead search.TypeAhead

	open      bool
	suspended bool
	confirmID string

	// reannounce restates the current position after Resume.
	reannounce func()
}

func newBase(name string, env Env) Base {
	if env.Sounds == nil {
		env.Sounds = audio.Null
	}
	return Base{name: name, env: env}
}

// Name identifies the overlay in the dispatcher and trace log.
func (b *Base) Name() string {
	return b.name
}

// IsOpen reports whether the overlay owns the keyboard.
func (b *Base) IsOpen() bool {
	return b.open
}

// IsActive implements dispatch.Handler.
func (b *Base) IsActive() bool {
	return b.open
}

// IsSuspended implements dispatch.Suspender.
func (b *Base) IsSuspended() bool {
	return b.suspended
}

// Suspend parks the overlay without losing its navigation state.
func (b *Base) Suspend() {
	if b.open {
		b.suspended = true
	}
}

// Resume reactivates a suspended overlay and re-announces the current
// position; silently resuming would leave the user disoriented.
func (b *Base) Resume() {
	if !b.suspended {
		return
	}
	b.suspended = false
	if b.reannounce != nil {
		b.reannounce()
	}
}

func (b *Base) say(text string) {
	if b.env.Announcer != nil {
		b.env.Announcer.Say(text)
	}
}

func (b *Base) cue(c audio.Cue) {
	b.env.Sounds.Play(c)
}

// doOpen flips the open flag and blocks host input. Callers announce the
// header themselves since it depends on the fresh snapshot.
func (b *Base) doOpen(itemCount int) {
	b.open = true
	b.suspended = false
	b.typeahead.Clear()
	b.confirmID = ""
	if b.env.Gate != nil {
		b.env.Gate.Block()
	}
	events.Overlay.Open(b.name, itemCount)
	b.cue(audio.CueOpen)
}

// doClose releases the keyboard. Idempotent: a second close neither
// announces nor mutates anything. Reports whether a close happened.
func (b *Base) doClose() bool {
	if !b.open {
		return false
	}
	b.open = false
	b.suspended = false
	b.typeahead.Clear()
	b.confirmID = ""
	if b.env.Gate != nil {
		b.env.Gate.Unblock()
	}
	events.Overlay.Close(b.name)
	b.cue(audio.CueClose)
	return true
}

// swallowCancel marks the cancel key as consumed so the host does not
// also react to it.
func (b *Base) swallowCancel() {
	if b.env.Gate != nil {
		b.env.Gate.SwallowNextCancel()
	}
}

// announceCurrent speaks the item under the cursor, or the level's empty
// message.
func (b *Base) announceCurrent(l *Level, depth int) {
	item, ok := l.Current()
	if !ok {
		b.say(l.emptyMessage())
		return
	}
	events.Overlay.Cursor(b.name, depth, l.Cursor.Index)
	b.say(l.describe(item))
}

// move clears any pending search, shifts the cursor with wrap-around, and
// announces the new item. No-op on an empty level.
func (b *Base) move(l *Level, delta, depth int) {
	b.typeahead.Clear()
	if l.Cursor.Count == 0 {
		return
	}
	l.Cursor.Move(delta)
	b.cue(audio.CueMove)
	b.announceCurrent(l, depth)
}

func (b *Base) jumpHome(l *Level, depth int) {
	b.typeahead.Clear()
	if l.Cursor.Count == 0 {
		return
	}
	l.Cursor.Home()
	b.cue(audio.CueMove)
	b.announceCurrent(l, depth)
}

func (b *Base) jumpEnd(l *Level, depth int) {
	b.typeahead.Clear()
	if l.Cursor.Count == 0 {
		return
	}
	l.Cursor.End()
	b.cue(audio.CueMove)
	b.announceCurrent(l, depth)
}

// typeChar feeds a character into the type-ahead search. A hit moves the
// cursor and announces the item; a miss announces "No match" but keeps
// the buffer so further typing or Backspace can still resolve.
func (b *Base) typeChar(l *Level, r rune, depth int) {
	if len(l.Items) == 0 {
		b.say(l.emptyMessage())
		return
	}
	idx := b.typeahead.Push(r, l.SearchKeys())
	if idx < 0 {
		b.cue(audio.CueFailure)
		b.say("No match")
		return
	}
	l.MoveTo(idx)
	b.announceCurrent(l, depth)
}

// searchBackspace undoes the last search character. Reports false when no
// search was active so the caller can give Backspace a domain meaning.
func (b *Base) searchBackspace(l *Level, depth int) bool {
	if !b.typeahead.Active() {
		return false
	}
	idx, ok := b.typeahead.Pop(l.SearchKeys())
	if !ok {
		b.say("Search cleared")
		return true
	}
	if idx < 0 {
		b.cue(audio.CueFailure)
		b.say("No match")
		return true
	}
	l.MoveTo(idx)
	b.announceCurrent(l, depth)
	return true
}

// escapeClearsSearch consumes Escape when a search is pending. Reports
// whether it did; otherwise the caller closes or falls through.
func (b *Base) escapeClearsSearch() bool {
	if !b.typeahead.Active() {
		return false
	}
	b.typeahead.Clear()
	b.say("Search cleared")
	return true
}

// armConfirm arms the two-step confirmation for a destructive action.
func (b *Base) armConfirm(id, prompt string) {
	b.confirmID = id
	b.say(prompt + " Press Enter to confirm.")
}

// confirmPending reports whether a confirmation is armed.
func (b *Base) confirmPending() bool {
	return b.confirmID != ""
}

// confirmTarget returns the armed action's identifier.
func (b *Base) confirmTarget() string {
	return b.confirmID
}

// cancelConfirm clears a pending confirmation. Any key other than the
// confirming Enter lands here.
func (b *Base) cancelConfirm() {
	if b.confirmID == "" {
		return
	}
	b.confirmID = ""
	b.say("Cancelled")
}

func (b *Base) clearConfirm() {
	b.confirmID = ""
}
