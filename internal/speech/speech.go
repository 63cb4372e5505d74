// Package speech defines the text-to-speech boundary. The core only ever
// calls Say; the sink decides interruption semantics, and the most recent
// utterance always wins since stale-state guards elsewhere prevent
// outdated announcements.
package speech

import (
	"github.com/sightcast/narrator/internal/history"
	"github.com/sightcast/narrator/internal/logging/events"
)

// Speaker is a fire-and-forget speech sink.
type Speaker interface {
	Say(text string)
}

// SpeakerFunc adapts a function to the Speaker interface.
type SpeakerFunc func(text string)

func (f SpeakerFunc) Say(text string) {
	f(text)
}

// Null discards all speech. Used in tests that only inspect history.
var Null Speaker = SpeakerFunc(func(string) {})

// Announcer fans every utterance out to the speech sink, the announcement
// history, and the trace log. It is the single Say entry point for the
// whole navigation layer.
type Announcer struct {
	speaker Speaker
	log     *history.Log
}

// NewAnnouncer wires a speaker to the shared history log.
func NewAnnouncer(speaker Speaker, log *history.Log) *Announcer {
	if speaker == nil {
		speaker = Null
	}
	return &Announcer{speaker: speaker, log: log}
}

// Say speaks text and records it. Empty strings are dropped.
func (a *Announcer) Say(text string) {
	if text == "" {
		return
	}
	events.Speech.Say(text)
	if a.log != nil {
		a.log.Record(text)
	}
	a.speaker.Say(text)
}

// History exposes the backing log for the history overlay.
func (a *Announcer) History() *history.Log {
	return a.log
}
