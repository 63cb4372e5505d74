package app

import (
	"strings"
	"testing"
	"time"

	"github.com/sightcast/narrator/internal/config"
	"github.com/sightcast/narrator/internal/key"
	"github.com/sightcast/narrator/internal/schedule"
)

func newTestApp(t *testing.T) (*App, *schedule.Manual) {
	t.Helper()
	cfg, err := config.LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Speech.Sound = false
	manual := schedule.NewManual()
	a := NewWithScheduler(cfg, manual)
	t.Cleanup(a.Close)
	return a, manual
}

func TestVerboseFlagEnrichesPurchases(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"-verbose"}, nil)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Speech.Sound = false
	a := NewWithScheduler(cfg, schedule.NewManual())
	t.Cleanup(a.Close)

	a.Shop.Open()
	a.HandleKey(key.Special(key.CodeEnter, key.ModNone))
	last := a.History.Entries()[0]
	if !strings.Contains(last, "Bought") || !strings.Contains(last, "coins left") {
		t.Fatalf("verbose purchases must announce the remaining balance, got %q", last)
	}
}

// drain applies everything the timers posted, the way the UI loop would.
func drain(a *App) {
	for {
		select {
		case ev := <-a.Events:
			a.Apply(ev)
		default:
			return
		}
	}
}

func TestDialogueOutranksOpenShop(t *testing.T) {
	a, _ := newTestApp(t)
	a.Shop.Open()
	a.Sim.StartTalk()
	if !a.Dialogue.IsOpen() {
		t.Fatalf("host callback must open the dialogue overlay")
	}
	if !a.Shop.IsSuspended() {
		t.Fatalf("the shop must be suspended behind the conversation")
	}

	// Arrow keys now belong to the dialogue, not the suspended shop.
	a.HandleKey(key.Special(key.CodeDown, key.ModNone))
	last := a.History.Entries()[0]
	if strings.Contains(last, "coins") {
		t.Fatalf("the suspended shop must not see keys, got %q", last)
	}
}

func TestShopResumeReannouncesPosition(t *testing.T) {
	a, _ := newTestApp(t)
	a.Shop.Open()
	a.HandleKey(key.Special(key.CodeDown, key.ModNone))
	a.Sim.StartTalk()

	// End the conversation: page 1 has no choices, page 2 branches,
	// page 3 is the farewell.
	a.HandleKey(key.Special(key.CodeSpace, key.ModNone))
	a.HandleKey(key.Special(key.CodeEnter, key.ModNone))
	a.HandleKey(key.Special(key.CodeSpace, key.ModNone))

	if a.Dialogue.IsOpen() {
		t.Fatalf("conversation must be over")
	}
	if !strings.Contains(a.History.Entries()[0], "Lantern") {
		t.Fatalf("resume must re-announce the shop position, got %q", a.History.Entries()[0])
	}
}

func TestSpeechTimerAdvancesDialogueQueue(t *testing.T) {
	a, manual := newTestApp(t)
	a.Sim.FireBurst()
	if a.Dialogue.Pending() != 1 {
		t.Fatalf("burst must leave one node queued, got %d", a.Dialogue.Pending())
	}
	manual.Fire()
	drain(a)
	if a.Dialogue.Pending() != 0 {
		t.Fatalf("speech end must release the queued node")
	}
}

func TestHintSkippedWhileOverlayOpen(t *testing.T) {
	a, manual := newTestApp(t)
	a.HandleKey(key.RuneEvent('s', key.ModNone))
	before := a.History.Len()
	manual.Fire()
	drain(a)
	if a.History.Len() != before {
		t.Fatalf("hints must not speak over an open overlay")
	}
}

func TestHintSpokenWhenIdleOnMap(t *testing.T) {
	a, manual := newTestApp(t)
	manual.Fire()
	drain(a)
	if !strings.Contains(a.History.Entries()[0], "Press S for shop") {
		t.Fatalf("expected the idle hint, got %q", a.History.Entries()[0])
	}
}

func TestHintDisabledByConfig(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"-hint-delay", "0s"}, nil)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Speech.Sound = false
	manual := schedule.NewManual()
	a := NewWithScheduler(cfg, manual)
	t.Cleanup(a.Close)
	if manual.PendingCount() != 0 {
		t.Fatalf("no hint timer must be armed when the delay is zero")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	a, _ := newTestApp(t)
	a.Close()
	a.Close()
}

func TestSpeechDurationScalesAndCaps(t *testing.T) {
	short := speechDuration("Hi")
	long := speechDuration(strings.Repeat("a very long announcement ", 40))
	if short >= long {
		t.Fatalf("longer text must speak longer: %s vs %s", short, long)
	}
	if long > 6*time.Second {
		t.Fatalf("duration must cap, got %s", long)
	}
}
