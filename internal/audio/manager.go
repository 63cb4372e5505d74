package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/sightcast/narrator/internal/logging/events"
)

const sampleRate = beep.SampleRate(48000)

// Manager synthesizes short procedural cues through the system speaker.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates an uninitialized cue player.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Safe to call more than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself stays open; beep does
// not expose a close.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

// Play schedules the cue on the mixer. A no-op before Initialize.
func (m *Manager) Play(c Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	events.Speech.Cue(c.String())

	var streamer beep.Streamer
	switch c {
	case CueMove:
		streamer = take(30, newToneGenerator(880, 0.08))
	case CueSelect:
		streamer = take(60, newToneGenerator(660, 0.12))
	case CueSuccess:
		streamer = take(180, newSweepGenerator(440, 880, 0.15))
	case CueFailure:
		streamer = take(150, newBuzzGenerator(120))
	case CueOpen:
		streamer = take(120, newSweepGenerator(330, 660, 0.12))
	case CueClose:
		streamer = take(120, newSweepGenerator(660, 330, 0.12))
	case CueNotify:
		streamer = take(200, newToneGenerator(990, 0.1))
	default:
		return
	}
	m.mixer.Add(streamer)
}

func take(ms int, s beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(time.Millisecond*time.Duration(ms)), s)
}

// toneGenerator emits a plain sine with a short attack envelope.
type toneGenerator struct {
	freq float64
	amp  float64
	pos  int
}

func newToneGenerator(freq, amp float64) *toneGenerator {
	return &toneGenerator{freq: freq, amp: amp}
}

func (g *toneGenerator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		envelope := math.Min(t/0.005, 1.0)
		sample := g.amp * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

// sweepGenerator slides between two frequencies over its lifetime.
type sweepGenerator struct {
	from, to float64
	amp      float64
	pos      int
	span     int
}

func newSweepGenerator(from, to, amp float64) *sweepGenerator {
	return &sweepGenerator{from: from, to: to, amp: amp, span: sampleRate.N(time.Millisecond * 180)}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		progress := math.Min(float64(g.pos)/float64(g.span), 1.0)
		freq := g.from + (g.to-g.from)*progress
		envelope := 1.0 - progress*0.5
		sample := g.amp * envelope * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}

// buzzGenerator stacks harmonics on a low square-ish wave for the failure
// cue.
type buzzGenerator struct {
	freq float64
	pos  int
}

func newBuzzGenerator(freq float64) *buzzGenerator {
	return &buzzGenerator{freq: freq}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error {
	return nil
}
