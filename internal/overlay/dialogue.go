package overlay

import (
	"fmt"
	"strings"

	"github.com/sightcast/narrator/internal/audio"
	"github.com/sightcast/narrator/internal/game"
	"github.com/sightcast/narrator/internal/key"
	"github.com/sightcast/narrator/internal/logging/events"
	"github.com/sightcast/narrator/internal/queue"
)

// Dialogue reads conversations. The host raises node-ready callbacks at
// arbitrary points in the frame, sometimes two before the first was
// heard; the event queue serializes them into one announcement at a time,
// and any committing action (continue, choose) discards whatever is still
// queued since it describes a superseded dialogue state.
type Dialogue struct {
	Base
	facade  game.Dialogue
	q       *queue.Queue
	node    game.Node
	hasNode bool
	choices *Level

	// onOpen and onClose let the composition root suspend and resume
	// whatever overlay the conversation interrupted.
	onOpen  func()
	onClose func()
}

// NewDialogue builds the dialogue overlay over the given facade.
func NewDialogue(env Env, facade game.Dialogue) *Dialogue {
	d := &Dialogue{
		Base:   newBase("dialogue", env),
		facade: facade,
	}
	d.q = queue.New(d.consume)
	d.choices = NewLevel("Choices", nil)
	d.choices.EmptyMessage = "No choices"
	d.reannounce = func() { d.repeat() }
	return d
}

// SetFocusHooks installs the open/close callbacks.
func (d *Dialogue) SetFocusHooks(onOpen, onClose func()) {
	d.onOpen = onOpen
	d.onClose = onClose
}

// Notify receives a host dialogue callback. The first notification of a
// conversation opens the overlay; everything funnels through the queue.
func (d *Dialogue) Notify(kind string, node game.Node) {
	if !d.open {
		d.doOpen(0)
		if d.onOpen != nil {
			d.onOpen()
		}
	}
	d.q.Enqueue(queue.Event{Kind: kind, Payload: node})
}

// MarkIdle signals that the host finished reacting to the last announced
// node; the next queued node, if any, is announced now.
func (d *Dialogue) MarkIdle() {
	d.q.MarkIdle()
}

// Pending reports the queued-but-unannounced notification count.
func (d *Dialogue) Pending() int {
	return d.q.Pending()
}

// Close clears the backlog and cancels any in-flight drain. Idempotent.
func (d *Dialogue) Close() {
	if !d.doClose() {
		return
	}
	d.q.Clear()
	d.hasNode = false
	d.choices.Reset(nil)
	if d.onClose != nil {
		d.onClose()
	}
}

// consume handles one dequeued notification. A callback can race the
// overlay closing; dropping the event then is expected, not an error.
func (d *Dialogue) consume(ev queue.Event) {
	if !d.open {
		return
	}
	node, ok := ev.Payload.(game.Node)
	if !ok {
		return
	}
	d.node = node
	d.hasNode = true
	d.typeahead.Clear()
	items := make([]Item, 0, len(node.Choices))
	for i, choice := range node.Choices {
		items = append(items, Item{ID: fmt.Sprintf("choice-%d", i), Label: choice, Payload: i})
	}
	d.choices.Reset(items)
	d.cue(audio.CueNotify)
	d.say(d.describeNode())
}

func (d *Dialogue) describeNode() string {
	if !d.hasNode {
		return "No conversation"
	}
	var sb strings.Builder
	if d.node.Speaker != "" {
		sb.WriteString(d.node.Speaker)
		sb.WriteString(": ")
	}
	sb.WriteString(d.node.Text)
	if n := len(d.node.Choices); n > 0 {
		sb.WriteString(fmt.Sprintf(" %d choices. %s, 1 of %d", n, d.node.Choices[0], n))
	}
	return sb.String()
}

// repeat re-reads the current node.
func (d *Dialogue) repeat() {
	d.say(d.describeNode())
}

// ProcessKey implements dispatch.Handler. Fully modal.
func (d *Dialogue) ProcessKey(ev key.Event) bool {
	if !d.open {
		return false
	}
	switch {
	case ev.Plain(key.CodeUp):
		d.moveChoice(-1)
	case ev.Plain(key.CodeDown):
		d.moveChoice(1)
	case ev.Plain(key.CodeHome):
		d.jumpHome(d.choices, 0)
	case ev.Plain(key.CodeEnd):
		d.jumpEnd(d.choices, 0)
	case ev.Plain(key.CodeEnter):
		d.activate()
	case ev.Plain(key.CodeSpace):
		d.continueDialogue()
	case ev.Plain(key.CodeRight):
		// Read the next queued notification on demand; repeat when the
		// backlog is empty.
		if !d.q.ReadNext() {
			d.repeat()
		}
	case ev.Plain(key.CodeLeft):
		d.repeat()
	case ev.Plain(key.CodeBackspace):
		d.searchBackspace(d.choices, 0)
	case ev.Plain(key.CodeEscape):
		if !d.escapeClearsSearch() {
			d.swallowCancel()
			d.Close()
		}
	case ev.IsChar():
		if len(d.choices.Items) > 0 {
			d.typeChar(d.choices, ev.Rune, 0)
		}
	}
	return true
}

func (d *Dialogue) moveChoice(delta int) {
	if len(d.choices.Items) == 0 {
		d.repeat()
		return
	}
	d.move(d.choices, delta, 0)
}

func (d *Dialogue) activate() {
	if len(d.choices.Items) == 0 {
		d.continueDialogue()
		return
	}
	item, ok := d.choices.Current()
	if !ok {
		return
	}
	idx, _ := item.Payload.(int)
	// Committing invalidates every queued notification: they describe a
	// dialogue state this choice just superseded.
	d.q.Clear()
	err := d.facade.Choose(idx)
	events.Overlay.Action(d.name, item.ID, err)
	if err != nil {
		d.cue(audio.CueFailure)
		d.say(err.Error())
		return
	}
	d.afterCommit()
}

func (d *Dialogue) continueDialogue() {
	d.q.Clear()
	err := d.facade.Continue()
	events.Overlay.Action(d.name, "continue", err)
	if err != nil {
		d.cue(audio.CueFailure)
		d.say(err.Error())
		return
	}
	d.afterCommit()
}

// afterCommit closes the overlay when the conversation ended; otherwise
// the host's next callback re-announces through the queue.
func (d *Dialogue) afterCommit() {
	if _, ok := d.facade.Current(); !ok {
		d.say("Conversation ended")
		d.Close()
	}
}
