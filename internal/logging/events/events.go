package events

import "github.com/sightcast/narrator/internal/logging"

type AppTracer struct{}

type DispatchTracer struct{}

type OverlayTracer struct{}

type QueueTracer struct{}

type SpeechTracer struct{}

var (
	App      = AppTracer{}
	Dispatch = DispatchTracer{}
	Overlay  = OverlayTracer{}
	Queue    = QueueTracer{}
	Speech   = SpeechTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (DispatchTracer) Key(handler, event string, handled bool) {
	logging.Trace("dispatch.key", map[string]interface{}{
		"handler": handler,
		"key":     event,
		"handled": handled,
	})
}

func (DispatchTracer) NoHandler(event string) {
	logging.Trace("dispatch.unclaimed", map[string]interface{}{"key": event})
}

func (OverlayTracer) Open(name string, count int) {
	logging.Trace("overlay.open", map[string]interface{}{"overlay": name, "items": count})
}

func (OverlayTracer) Close(name string) {
	logging.Trace("overlay.close", map[string]interface{}{"overlay": name})
}

func (OverlayTracer) Cursor(name string, level, index int) {
	logging.Trace("overlay.cursor", map[string]interface{}{
		"overlay": name,
		"level":   level,
		"cursor":  index,
	})
}

func (OverlayTracer) Action(name, item string, err error) {
	payload := map[string]interface{}{"overlay": name, "item": item}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("overlay.action", payload)
}

func (QueueTracer) Enqueue(kind string, pending int) {
	logging.Trace("queue.enqueue", map[string]interface{}{"kind": kind, "pending": pending})
}

func (QueueTracer) Deliver(kind string) {
	logging.Trace("queue.deliver", map[string]interface{}{"kind": kind})
}

func (QueueTracer) Clear(dropped int) {
	logging.Trace("queue.clear", map[string]interface{}{"dropped": dropped})
}

func (SpeechTracer) Say(text string) {
	logging.Trace("speech.say", map[string]interface{}{"text": text})
}

func (SpeechTracer) Cue(kind string) {
	logging.Trace("speech.cue", map[string]interface{}{"kind": kind})
}
