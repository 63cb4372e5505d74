package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sightcast/narrator/internal/key"
)

var specialKeys = map[tea.KeyType]key.Code{
	tea.KeyUp:        key.CodeUp,
	tea.KeyDown:      key.CodeDown,
	tea.KeyLeft:      key.CodeLeft,
	tea.KeyRight:     key.CodeRight,
	tea.KeyHome:      key.CodeHome,
	tea.KeyEnd:       key.CodeEnd,
	tea.KeyPgUp:      key.CodePageUp,
	tea.KeyPgDown:    key.CodePageDown,
	tea.KeyEnter:     key.CodeEnter,
	tea.KeySpace:     key.CodeSpace,
	tea.KeyTab:       key.CodeTab,
	tea.KeyBackspace: key.CodeBackspace,
	tea.KeyEsc:       key.CodeEscape,
}

var shiftedKeys = map[tea.KeyType]key.Code{
	tea.KeyShiftUp:    key.CodeUp,
	tea.KeyShiftDown:  key.CodeDown,
	tea.KeyShiftLeft:  key.CodeLeft,
	tea.KeyShiftRight: key.CodeRight,
}

// translateKey maps a terminal key press onto the navigation layer's
// event type. Unmapped keys report false and never reach the handlers.
func translateKey(msg tea.KeyMsg) (key.Event, bool) {
	mods := key.ModNone
	if msg.Alt {
		mods = mods.With(key.ModAlt)
	}
	if code, ok := specialKeys[msg.Type]; ok {
		return key.Special(code, mods), true
	}
	if code, ok := shiftedKeys[msg.Type]; ok {
		return key.Special(code, mods.With(key.ModShift)), true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r == ' ' {
			return key.Special(key.CodeSpace, mods), true
		}
		return key.RuneEvent(r, mods), true
	}
	return key.Event{}, false
}
