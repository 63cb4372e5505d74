package key

// Code identifies a logical key on the keyboard surface the navigation
// layer cares about. Anything else arrives as CodeRune.
type Code int

const (
	CodeNone Code = iota
	CodeRune
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeEnter
	CodeSpace
	CodeTab
	CodeBackspace
	CodeEscape
)

var codeNames = map[Code]string{
	CodeNone:      "none",
	CodeRune:      "rune",
	CodeUp:        "up",
	CodeDown:      "down",
	CodeLeft:      "left",
	CodeRight:     "right",
	CodeHome:      "home",
	CodeEnd:       "end",
	CodePageUp:    "pgup",
	CodePageDown:  "pgdown",
	CodeEnter:     "enter",
	CodeSpace:     "space",
	CodeTab:       "tab",
	CodeBackspace: "backspace",
	CodeEscape:    "esc",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}
