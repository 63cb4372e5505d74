package key

import "unicode"

// Event is a single discrete key press: a code plus the modifier set held
// at the time. Events are immutable and dispatched synchronously; they are
// never queued.
type Event struct {
	Code Code
	Rune rune
	Mods Modifier
}

// RuneEvent builds an event for a printable character.
func RuneEvent(r rune, mods Modifier) Event {
	return Event{Code: CodeRune, Rune: r, Mods: mods}
}

// Special builds an event for a non-character key.
func Special(code Code, mods Modifier) Event {
	return Event{Code: code, Mods: mods}
}

// IsChar reports whether the event carries a printable character with no
// modifier beyond Shift (Shift is part of the character itself).
func (e Event) IsChar() bool {
	if e.Code != CodeRune || e.Rune == 0 {
		return false
	}
	if e.Mods.Has(ModCtrl) || e.Mods.Has(ModAlt) {
		return false
	}
	return unicode.IsPrint(e.Rune)
}

// Plain reports whether the event is the given code with no modifiers.
func (e Event) Plain(code Code) bool {
	return e.Code == code && e.Mods == ModNone
}

func (e Event) String() string {
	name := e.Code.String()
	if e.Code == CodeRune {
		name = string(e.Rune)
	}
	if mods := e.Mods.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}
