package overlay

import (
	"github.com/sightcast/narrator/internal/gate"
	"github.com/sightcast/narrator/internal/history"
	"github.com/sightcast/narrator/internal/key"
	"github.com/sightcast/narrator/internal/speech"
)

// recorder captures everything an overlay announces.
type recorder struct {
	spoken []string
}

func (r *recorder) speaker() speech.Speaker {
	return speech.SpeakerFunc(func(text string) {
		r.spoken = append(r.spoken, text)
	})
}

func (r *recorder) last() string {
	if len(r.spoken) == 0 {
		return ""
	}
	return r.spoken[len(r.spoken)-1]
}

func (r *recorder) reset() {
	r.spoken = nil
}

func testEnv(rec *recorder) Env {
	return Env{
		Announcer: speech.NewAnnouncer(rec.speaker(), history.NewLog(50)),
		Gate:      gate.New(),
	}
}

func press(h interface{ ProcessKey(key.Event) bool }, code key.Code) bool {
	return h.ProcessKey(key.Special(code, key.ModNone))
}

func typeRune(h interface{ ProcessKey(key.Event) bool }, r rune) bool {
	return h.ProcessKey(key.RuneEvent(r, key.ModNone))
}
