package overlay

import (
	"fmt"

	"github.com/sightcast/narrator/internal/audio"
	"github.com/sightcast/narrator/internal/game"
	"github.com/sightcast/narrator/internal/key"
	"github.com/sightcast/narrator/internal/logging/events"
)

// Workshop is the three-level structure, upgrade, reward overlay.
// Demolishing a structure is destructive and therefore two-step: the
// first Backspace arms a confirmation, only an immediate Enter executes,
// and any other key cancels.
type Workshop struct {
	Base
	facade   game.Workshop
	structs  *Level
	upgrades *Level
	rewards  *Level
}

// NewWorkshop builds the workshop overlay over the given facade.
func NewWorkshop(env Env, facade game.Workshop) *Workshop {
	w := &Workshop{
		Base:   newBase("workshop", env),
		facade: facade,
	}
	w.structs = NewLevel("Workshop", nil)
	w.structs.EmptyMessage = "Nothing is built yet"
	w.structs.Describe = describeStructure
	w.reannounce = func() { w.announceCurrent(w.current(), w.depth()) }
	return w
}

// Open refreshes structures and announces the header plus the first one.
func (w *Workshop) Open() {
	if w.open {
		return
	}
	w.RefreshData()
	w.structs.Cursor.Home()
	w.upgrades = nil
	w.rewards = nil
	w.doOpen(len(w.structs.Items))
	if len(w.structs.Items) == 0 {
		w.say("Workshop. " + w.structs.emptyMessage())
		return
	}
	item, _ := w.structs.Current()
	w.say("Workshop. " + w.structs.describe(item))
}

// Close is idempotent.
func (w *Workshop) Close() {
	if w.doClose() {
		w.upgrades = nil
		w.rewards = nil
	}
}

// RefreshData rebuilds the structure snapshot, clamping the cursor when
// the list shrank underneath it.
func (w *Workshop) RefreshData() {
	var keepID string
	if current, ok := w.structs.Current(); ok {
		keepID = current.ID
	}
	structs := w.facade.Structures()
	items := make([]Item, 0, len(structs))
	for _, s := range structs {
		items = append(items, Item{ID: s.ID, Label: s.Label, Payload: s})
	}
	w.structs.Update(items)
	if idx := w.structs.IndexOf(keepID); idx >= 0 {
		w.structs.MoveTo(idx)
	}
}

func (w *Workshop) current() *Level {
	switch {
	case w.rewards != nil:
		return w.rewards
	case w.upgrades != nil:
		return w.upgrades
	default:
		return w.structs
	}
}

func (w *Workshop) depth() int {
	switch {
	case w.rewards != nil:
		return 2
	case w.upgrades != nil:
		return 1
	default:
		return 0
	}
}

// ProcessKey implements dispatch.Handler. Modal except for Left at the
// structure level.
func (w *Workshop) ProcessKey(ev key.Event) bool {
	if !w.open {
		return false
	}
	if w.confirmPending() {
		if ev.Plain(key.CodeEnter) {
			w.executeDemolish()
		} else {
			w.cancelConfirm()
		}
		return true
	}
	level := w.current()
	switch {
	case ev.Plain(key.CodeUp):
		w.move(level, -1, w.depth())
	case ev.Plain(key.CodeDown):
		w.move(level, 1, w.depth())
	case ev.Plain(key.CodeHome):
		w.jumpHome(level, w.depth())
	case ev.Plain(key.CodeEnd):
		w.jumpEnd(level, w.depth())
	case ev.Plain(key.CodeRight):
		w.descend()
	case ev.Plain(key.CodeLeft):
		if w.depth() == 0 {
			return false
		}
		w.ascend()
	case ev.Plain(key.CodeEnter):
		w.activate()
	case ev.Plain(key.CodeBackspace):
		if w.searchBackspace(level, w.depth()) {
			break
		}
		if w.depth() == 0 {
			w.requestDemolish()
		}
	case ev.Plain(key.CodeEscape):
		if w.escapeClearsSearch() {
			break
		}
		if w.depth() > 0 {
			w.ascend()
			break
		}
		w.swallowCancel()
		w.Close()
	case ev.IsChar():
		w.typeChar(level, ev.Rune, w.depth())
	}
	return true
}

// descend drops one level deeper, resetting the new level's cursor and
// announcing its first item.
func (w *Workshop) descend() {
	w.typeahead.Clear()
	switch w.depth() {
	case 0:
		s, ok := w.structs.Current()
		if !ok {
			w.say(w.structs.emptyMessage())
			return
		}
		w.upgrades = w.buildUpgrades(s)
		w.cue(audio.CueSelect)
		w.announceCurrent(w.upgrades, 1)
	case 1:
		up, ok := w.upgrades.Current()
		if !ok {
			w.say(w.upgrades.emptyMessage())
			return
		}
		w.rewards = w.buildRewards(up)
		w.cue(audio.CueSelect)
		w.announceCurrent(w.rewards, 2)
	}
}

// ascend clears the deeper snapshot and re-announces the parent item.
func (w *Workshop) ascend() {
	w.typeahead.Clear()
	w.cue(audio.CueMove)
	if w.rewards != nil {
		w.rewards = nil
		w.announceCurrent(w.upgrades, 1)
		return
	}
	w.upgrades = nil
	w.announceCurrent(w.structs, 0)
}

func (w *Workshop) buildUpgrades(s Item) *Level {
	ups := w.facade.Upgrades(s.ID)
	items := make([]Item, 0, len(ups))
	for _, up := range ups {
		status := StatusBuyable
		if up.Complete {
			status = StatusOwned
		}
		items = append(items, Item{ID: up.ID, Label: up.Label, Status: status, Payload: up})
	}
	level := NewLevel(s.Label, items)
	level.EmptyMessage = fmt.Sprintf("%s has no upgrades", s.Label)
	level.Describe = describeUpgrade
	return level
}

func (w *Workshop) buildRewards(up Item) *Level {
	rs := w.facade.Rewards(up.ID)
	items := make([]Item, 0, len(rs))
	for _, r := range rs {
		status := StatusLocked
		if r.Claimed {
			status = StatusAchieved
		}
		items = append(items, Item{ID: r.ID, Label: r.Label, Status: status, Payload: r})
	}
	level := NewLevel(up.Label, items)
	level.EmptyMessage = fmt.Sprintf("%s has no rewards", up.Label)
	level.Describe = describeReward
	return level
}

func (w *Workshop) activate() {
	switch w.depth() {
	case 0:
		w.descend()
	case 1:
		w.startUpgrade()
	case 2:
		w.claimReward()
	}
}

func (w *Workshop) startUpgrade() {
	item, ok := w.upgrades.Current()
	if !ok {
		w.say(w.upgrades.emptyMessage())
		return
	}
	up, _ := item.Payload.(game.Upgrade)
	if up.Complete || item.Status == StatusOwned {
		w.cue(audio.CueFailure)
		w.say(fmt.Sprintf("%s is already finished", item.Label))
		return
	}
	err := w.facade.StartUpgrade(item.ID)
	events.Overlay.Action(w.name, item.ID, err)
	if err != nil {
		w.cue(audio.CueFailure)
		w.say(err.Error())
		return
	}
	w.cue(audio.CueSuccess)
	if w.env.Verbose {
		w.say(fmt.Sprintf("Started %s for %d coins", item.Label, up.Cost))
	} else {
		w.say(fmt.Sprintf("Started %s", item.Label))
	}
	if s, ok := w.structs.Current(); ok {
		fresh := w.buildUpgrades(s)
		fresh.Cursor = w.upgrades.Cursor
		fresh.Cursor.Resize(len(fresh.Items))
		if idx := fresh.IndexOf(item.ID); idx >= 0 {
			fresh.MoveTo(idx)
		}
		w.upgrades = fresh
	}
}

func (w *Workshop) claimReward() {
	item, ok := w.rewards.Current()
	if !ok {
		w.say(w.rewards.emptyMessage())
		return
	}
	if item.Status == StatusAchieved {
		w.cue(audio.CueFailure)
		w.say(fmt.Sprintf("%s was already claimed", item.Label))
		return
	}
	err := w.facade.Claim(item.ID)
	events.Overlay.Action(w.name, item.ID, err)
	if err != nil {
		w.cue(audio.CueFailure)
		w.say(err.Error())
		return
	}
	w.cue(audio.CueSuccess)
	w.say(fmt.Sprintf("Claimed %s", item.Label))
	if up, ok := w.upgrades.Current(); ok {
		fresh := w.buildRewards(up)
		if idx := fresh.IndexOf(item.ID); idx >= 0 {
			fresh.MoveTo(idx)
		}
		w.rewards = fresh
	}
}

// requestDemolish arms the two-step confirmation on the selected
// structure.
func (w *Workshop) requestDemolish() {
	item, ok := w.structs.Current()
	if !ok {
		w.say(w.structs.emptyMessage())
		return
	}
	w.armConfirm(item.ID, fmt.Sprintf("Demolish %s?", item.Label))
}

func (w *Workshop) executeDemolish() {
	id := w.confirmTarget()
	w.clearConfirm()
	idx := w.structs.IndexOf(id)
	if idx < 0 {
		w.say("That structure is gone")
		return
	}
	label := w.structs.Items[idx].Label
	err := w.facade.Demolish(id)
	events.Overlay.Action(w.name, id, err)
	if err != nil {
		w.cue(audio.CueFailure)
		w.say(err.Error())
		return
	}
	w.RefreshData()
	w.cue(audio.CueSuccess)
	if next, ok := w.structs.Current(); ok {
		w.say(fmt.Sprintf("Demolished %s. %s", label, w.structs.describe(next)))
	} else {
		w.say(fmt.Sprintf("Demolished %s. %s", label, w.structs.emptyMessage()))
	}
}

func describeStructure(item Item) string {
	s, ok := item.Payload.(game.Structure)
	if !ok {
		return item.Label
	}
	return fmt.Sprintf("%s, level %d", item.Label, s.Level)
}

func describeUpgrade(item Item) string {
	up, ok := item.Payload.(game.Upgrade)
	if !ok {
		return item.Label
	}
	if up.Complete {
		return item.Label + ", finished"
	}
	return fmt.Sprintf("%s, %d coins", item.Label, up.Cost)
}

func describeReward(item Item) string {
	if item.Status == StatusAchieved {
		return item.Label + ", claimed"
	}
	return item.Label
}
