// Package app wires the handler stack together: the simulated host, the
// shared announcer and gate, every overlay, the fallback map handler, and
// the timers that pace speech and idle hints. The UI layer stays a thin
// renderer over this assembly.
package app

import (
	"time"

	"github.com/sightcast/narrator/internal/audio"
	"github.com/sightcast/narrator/internal/config"
	"github.com/sightcast/narrator/internal/dispatch"
	"github.com/sightcast/narrator/internal/game"
	"github.com/sightcast/narrator/internal/game/sim"
	"github.com/sightcast/narrator/internal/gate"
	"github.com/sightcast/narrator/internal/history"
	"github.com/sightcast/narrator/internal/key"
	"github.com/sightcast/narrator/internal/logging"
	"github.com/sightcast/narrator/internal/mapnav"
	"github.com/sightcast/narrator/internal/overlay"
	"github.com/sightcast/narrator/internal/schedule"
	"github.com/sightcast/narrator/internal/speech"
)

// Event is an asynchronous occurrence the UI loop must pick up and apply
// on its own goroutine. Timer callbacks never touch handler state
// directly; they post here instead.
type Event int

const (
	// EventAnnounce signals new text in the history log.
	EventAnnounce Event = iota
	// EventSpeechDone signals the simulated speech finished.
	EventSpeechDone
	// EventHint signals the idle hint is due.
	EventHint
)

// suspendable is the overlay surface the dialogue focus hooks drive.
type suspendable interface {
	IsOpen() bool
	IsSuspended() bool
	Suspend()
	Resume()
}

// App is the assembled narrator.
type App struct {
	Sim        *sim.Game
	Gate       *gate.Gate
	History    *history.Log
	Announcer  *speech.Announcer
	Dispatcher *dispatch.Dispatcher

	Shop        *overlay.Shop
	Journal     *overlay.Journal
	Workshop    *overlay.Workshop
	Dialogue    *overlay.Dialogue
	HistoryView *overlay.HistoryView
	Map         *mapnav.Handler

	// Events carries timer and announcement notifications to the UI
	// loop. Sends never block; a full channel drops the notification.
	Events chan Event

	cfg          config.Config
	sounds       audio.Player
	manager      *audio.Manager
	sched        schedule.Scheduler
	cancelSpeech schedule.Cancel
	cancelHint   schedule.Cancel
	suspendables []suspendable
}

// New assembles the narrator with real timers.
func New(cfg config.Config) *App {
	return NewWithScheduler(cfg, schedule.NewTimer())
}

// NewWithScheduler lets tests drive the timers by hand.
func NewWithScheduler(cfg config.Config, sched schedule.Scheduler) *App {
	a := &App{
		Sim:    sim.NewGame(),
		Gate:   gate.New(),
		Events: make(chan Event, 16),
		cfg:    cfg,
		sched:  sched,
	}

	a.History = history.NewLog(cfg.Speech.HistorySize)
	a.Announcer = speech.NewAnnouncer(speech.SpeakerFunc(a.spoke), a.History)

	a.sounds = audio.Null
	if cfg.Speech.Sound {
		manager := audio.NewManager()
		if err := manager.Initialize(); err != nil {
			logging.Error(err)
		} else {
			a.manager = manager
			a.sounds = manager
		}
	}

	env := overlay.Env{
		Announcer: a.Announcer,
		Sounds:    a.sounds,
		Gate:      a.Gate,
		Verbose:   cfg.Logging.Verbose,
	}
	a.Shop = overlay.NewShop(env, a.Sim)
	a.Journal = overlay.NewJournal(env, a.Sim)
	a.Workshop = overlay.NewWorkshop(env, a.Sim)
	a.HistoryView = overlay.NewHistoryView(env, a.History)
	a.Dialogue = overlay.NewDialogue(env, a.Sim)
	a.suspendables = []suspendable{a.Shop, a.Journal, a.Workshop, a.HistoryView}
	a.Dialogue.SetFocusHooks(a.suspendOthers, a.resumeOthers)
	a.Sim.SetDialogueListener(func(kind string, node game.Node) {
		a.Dialogue.Notify(kind, node)
	})

	a.Map = mapnav.New(a.Sim, a.Sim, a.Announcer, a.sounds, a.Gate)
	a.Map.RegisterShortcut('s', a.Shop.Open)
	a.Map.RegisterShortcut('j', a.Journal.Open)
	a.Map.RegisterShortcut('w', a.Workshop.Open)
	a.Map.RegisterShortcut('h', a.HistoryView.Open)

	// Conversation callbacks outrank everything; the map handler catches
	// whatever no overlay claimed.
	a.Dispatcher = dispatch.New(
		a.Dialogue,
		a.HistoryView,
		a.Workshop,
		a.Journal,
		a.Shop,
		a.Map,
	)

	a.scheduleHint()
	return a
}

// HandleKey feeds one key press through the handler chain. Every press
// also restarts the idle hint timer.
func (a *App) HandleKey(ev key.Event) bool {
	handled := a.Dispatcher.ProcessKey(ev)
	a.scheduleHint()
	return handled
}

// Apply executes one posted event. Must run on the same goroutine as
// HandleKey.
func (a *App) Apply(ev Event) {
	switch ev {
	case EventSpeechDone:
		a.Dialogue.MarkIdle()
	case EventHint:
		a.announceHint()
	}
}

// Close stops timers and releases the audio device. Idempotent.
func (a *App) Close() {
	if a.cancelSpeech != nil {
		a.cancelSpeech()
		a.cancelSpeech = nil
	}
	if a.cancelHint != nil {
		a.cancelHint()
		a.cancelHint = nil
	}
	if a.manager != nil {
		a.manager.Cleanup()
		a.manager = nil
	}
}

// spoke runs for every announcement: it notifies the UI and restarts the
// speech pacing timer that eventually lets the dialogue queue advance.
func (a *App) spoke(text string) {
	a.post(EventAnnounce)
	if a.cancelSpeech != nil {
		a.cancelSpeech()
	}
	a.cancelSpeech = a.sched.After(speechDuration(text), func() {
		a.post(EventSpeechDone)
	})
}

func (a *App) scheduleHint() {
	if a.cancelHint != nil {
		a.cancelHint()
		a.cancelHint = nil
	}
	if a.cfg.Speech.HintDelay <= 0 {
		return
	}
	a.cancelHint = a.sched.After(a.cfg.Speech.HintDelay, func() {
		a.post(EventHint)
	})
}

// announceHint speaks the shortcut reminder, but only while the map
// handler has the keyboard; hints over an open overlay would talk over
// whatever the user is doing.
func (a *App) announceHint() {
	if !a.Map.IsActive() {
		return
	}
	a.Announcer.Say("Press S for shop, J for journal, W for workshop, H for history")
}

func (a *App) suspendOthers() {
	for _, o := range a.suspendables {
		if o.IsOpen() {
			o.Suspend()
		}
	}
}

func (a *App) resumeOthers() {
	for _, o := range a.suspendables {
		if o.IsSuspended() {
			o.Resume()
		}
	}
}

func (a *App) post(ev Event) {
	select {
	case a.Events <- ev:
	default:
	}
}

// speechDuration estimates how long a speech synthesizer would take, so
// queued dialogue advances at a listening pace rather than instantly.
func speechDuration(text string) time.Duration {
	d := 400*time.Millisecond + time.Duration(len(text))*25*time.Millisecond
	if d > 6*time.Second {
		d = 6 * time.Second
	}
	return d
}
