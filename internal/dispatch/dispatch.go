// Package dispatch routes each key press to exactly one handler. Handlers
// are registered once in priority order and stay registered for the
// process lifetime; activation and suspension predicates decide who owns
// the keyboard on any given frame.
package dispatch

import (
	"fmt"

	"github.com/sightcast/narrator/internal/key"
	"github.com/sightcast/narrator/internal/logging"
	"github.com/sightcast/narrator/internal/logging/events"
)

// Handler can claim key presses while active.
type Handler interface {
	Name() string
	IsActive() bool
	// ProcessKey handles the event, returning false only for keys the
	// handler deliberately lets fall through to lower-priority handlers.
	ProcessKey(ev key.Event) bool
}

// Suspender is implemented by handlers that can be parked without losing
// state while something transient sits on top of them. Resume re-announces
// the current position; time has passed and the user needs reorientation.
type Suspender interface {
	IsSuspended() bool
	Resume()
}

// Dispatcher owns the ordered handler chain.
type Dispatcher struct {
	handlers []Handler
}

// New builds a dispatcher over handlers in priority order (first wins).
func New(handlers ...Handler) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

// Register appends a handler at the lowest priority.
func (d *Dispatcher) Register(h Handler) {
	d.handlers = append(d.handlers, h)
}

// ProcessKey delivers ev to the first active, unsuspended handler and
// reports whether anyone claimed it. A panic inside a handler is caught
// and logged so a single host anomaly degrades to a dropped key rather
// than a frozen input pipeline.
func (d *Dispatcher) ProcessKey(ev key.Event) (handled bool) {
	for _, h := range d.handlers {
		if !h.IsActive() {
			continue
		}
		if s, ok := h.(Suspender); ok && s.IsSuspended() {
			continue
		}
		handled = d.deliver(h, ev)
		events.Dispatch.Key(h.Name(), ev.String(), handled)
		if handled {
			return true
		}
		// Fall-through is deliberate: the handler returned false for a
		// key it wants the next handler (or the host) to see.
	}
	events.Dispatch.NoHandler(ev.String())
	return false
}

func (d *Dispatcher) deliver(h Handler, ev key.Event) (handled bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error(fmt.Errorf("handler %s panicked on %s: %v", h.Name(), ev, r))
			handled = true
		}
	}()
	return h.ProcessKey(ev)
}
