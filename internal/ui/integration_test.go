package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sightcast/narrator/internal/app"
	"github.com/sightcast/narrator/internal/config"
	"github.com/sightcast/narrator/internal/key"
	"github.com/sightcast/narrator/internal/schedule"
)

func newTestHarness(t *testing.T) (*Harness, *app.App, *schedule.Manual) {
	t.Helper()
	cfg, err := config.LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Speech.Sound = false
	manual := schedule.NewManual()
	a := app.NewWithScheduler(cfg, manual)
	t.Cleanup(a.Close)
	h := NewHarness(NewModel(a, 80, 24))
	return h, a, manual
}

func TestShopShortcutEndToEnd(t *testing.T) {
	h, a, _ := newTestHarness(t)

	h.Type("s")
	h.Pump()
	if !a.Shop.IsOpen() {
		t.Fatalf("s must open the shop")
	}
	view := h.View()
	if !strings.Contains(view, "Shop open") {
		t.Fatalf("view must show the shop context:\n%s", view)
	}
	if !strings.Contains(view, "Iron Axe") {
		t.Fatalf("caption must carry the shop header:\n%s", view)
	}

	h.Press(tea.KeyEnter)
	h.Pump()
	if !strings.Contains(h.View(), "Bought Iron Axe") {
		t.Fatalf("purchase must surface in the caption:\n%s", h.View())
	}

	h.Press(tea.KeyEsc)
	h.Pump()
	if a.Shop.IsOpen() {
		t.Fatalf("escape must close the shop")
	}
	if !strings.Contains(h.View(), "On the map") {
		t.Fatalf("view must fall back to the map context:\n%s", h.View())
	}
}

func TestDialogueBurstPacedBySpeech(t *testing.T) {
	h, a, manual := newTestHarness(t)

	a.Sim.FireBurst()
	h.Pump()
	if !a.Dialogue.IsOpen() {
		t.Fatalf("burst must open the dialogue overlay")
	}
	if a.Dialogue.Pending() != 1 {
		t.Fatalf("second callback waits, got %d pending", a.Dialogue.Pending())
	}
	if !strings.Contains(h.View(), "Back again?") {
		t.Fatalf("first page must be the caption:\n%s", h.View())
	}

	// The speech pacing timer firing marks the consumer idle and the
	// queued page comes through.
	manual.Fire()
	h.Pump()
	if a.Dialogue.Pending() != 0 {
		t.Fatalf("speech end must drain the backlog, got %d", a.Dialogue.Pending())
	}
	if !strings.Contains(h.View(), "Care to trade") {
		t.Fatalf("second page must be announced:\n%s", h.View())
	}
}

func TestDialogueInterruptsAndResumesShop(t *testing.T) {
	h, a, _ := newTestHarness(t)

	h.Type("s")
	h.Pump()
	a.Sim.StartTalk()
	h.Pump()
	if !a.Shop.IsSuspended() {
		t.Fatalf("conversation must suspend the open shop")
	}

	// Walk the conversation to its end: continue past each page.
	h.Press(tea.KeySpace)
	h.Press(tea.KeyEnter)
	h.Press(tea.KeySpace)
	h.Pump()
	if a.Dialogue.IsOpen() {
		t.Fatalf("conversation must close at the end of the script")
	}
	if !a.Shop.IsOpen() || a.Shop.IsSuspended() {
		t.Fatalf("shop must resume once the conversation ends")
	}
}

func TestHintAnnouncedOnlyOnTheMap(t *testing.T) {
	h, a, manual := newTestHarness(t)

	manual.Fire()
	h.Pump()
	if !strings.Contains(h.View(), "Press S for shop") {
		t.Fatalf("idle hint must be announced on the map:\n%s", h.View())
	}

	h.Type("j")
	h.Pump()
	before := len(a.History.Entries())
	manual.Fire()
	h.Pump()
	if len(a.History.Entries()) != before {
		t.Fatalf("hints must stay quiet while an overlay is open")
	}
}

func TestMapWalkAndInteract(t *testing.T) {
	h, a, _ := newTestHarness(t)

	for i := 0; i < 3; i++ {
		h.Press(tea.KeyRight)
	}
	h.Press(tea.KeyDown)
	h.Press(tea.KeyDown)
	h.Pump()
	if !strings.Contains(h.View(), "Merchant") {
		t.Fatalf("expected the merchant tile:\n%s", h.View())
	}

	h.Press(tea.KeyEnter)
	h.Pump()
	if !a.Dialogue.IsOpen() {
		t.Fatalf("interacting with the merchant must start the conversation")
	}
}

func TestEscapeAfterOverlayCloseStaysLocal(t *testing.T) {
	h, a, _ := newTestHarness(t)

	h.Type("s")
	h.Press(tea.KeyEsc)
	h.Pump()
	if a.Shop.IsOpen() {
		t.Fatalf("escape must close the shop")
	}
	// The close armed a one-shot swallow: the next escape is consumed by
	// the map handler instead of reaching the host, and only the one
	// after that falls through.
	esc := mustTranslate(t, tea.KeyMsg{Type: tea.KeyEsc})
	if !a.Dispatcher.ProcessKey(esc) {
		t.Fatalf("the escape after a close is swallowed")
	}
	if a.Dispatcher.ProcessKey(esc) {
		t.Fatalf("later escapes must fall through to the host")
	}
}

func TestWindowResizeReflowsView(t *testing.T) {
	cfg, err := config.LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Speech.Sound = false
	a := app.NewWithScheduler(cfg, schedule.NewManual())
	t.Cleanup(a.Close)
	h := NewHarness(NewModel(a, 0, 0))
	h.Send(tea.WindowSizeMsg{Width: 20, Height: 10})
	for _, line := range strings.Split(h.View(), "\n") {
		if len([]rune(stripANSI(line))) > 21 {
			t.Fatalf("line overflows narrow viewport: %q", line)
		}
	}
}

func mustTranslate(t *testing.T, msg tea.KeyMsg) key.Event {
	t.Helper()
	ev, ok := translateKey(msg)
	if !ok {
		t.Fatalf("key %v did not translate", msg)
	}
	return ev
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
