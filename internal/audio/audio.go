// Package audio provides the non-speech feedback cues. Cues are advisory;
// nothing in the navigation layer depends on them for correctness.
package audio

// Cue identifies a non-speech feedback sound.
type Cue int

const (
	CueMove Cue = iota
	CueSelect
	CueSuccess
	CueFailure
	CueOpen
	CueClose
	CueNotify
)

var cueNames = map[Cue]string{
	CueMove:    "move",
	CueSelect:  "select",
	CueSuccess: "success",
	CueFailure: "failure",
	CueOpen:    "open",
	CueClose:   "close",
	CueNotify:  "notify",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return "unknown"
}

// Player plays feedback cues.
type Player interface {
	Play(Cue)
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(Cue)

func (f PlayerFunc) Play(c Cue) {
	f(c)
}

// Null discards all cues.
var Null Player = PlayerFunc(func(Cue) {})
