package overlay

import (
	"fmt"

	"github.com/sightcast/narrator/internal/audio"
	"github.com/sightcast/narrator/internal/game"
	"github.com/sightcast/narrator/internal/key"
	"github.com/sightcast/narrator/internal/logging/events"
)

// Shop is the flat-list purchase overlay. Besides plain list navigation
// it guards against the host's state latency: a purchase is tracked in a
// local session set the moment it succeeds, so mashing Enter before the
// host snapshot catches up never buys twice.
type Shop struct {
	Base
	facade game.Shop
	level  *Level
	// confirmed holds item IDs purchased this session; an item counts as
	// owned if either the host snapshot or this set says so.
	confirmed map[string]struct{}
}

// NewShop builds the shop overlay over the given facade.
func NewShop(env Env, facade game.Shop) *Shop {
	s := &Shop{
		Base:      newBase("shop", env),
		facade:    facade,
		confirmed: make(map[string]struct{}),
	}
	s.level = NewLevel("Shop", nil)
	s.level.EmptyMessage = "The shop has nothing for sale"
	s.level.Describe = s.describeItem
	s.reannounce = func() { s.announceCurrent(s.level, 0) }
	return s
}

// Open refreshes the stock and announces the panel header plus the first
// item. The header is spoken on entry only; moves announce item-only.
func (s *Shop) Open() {
	if s.open {
		return
	}
	s.RefreshData()
	s.level.Cursor.Home()
	s.doOpen(len(s.level.Items))
	if len(s.level.Items) == 0 {
		s.say("Shop. " + s.level.emptyMessage())
		return
	}
	item, _ := s.level.Current()
	s.say(fmt.Sprintf("Shop. %d coins. %s", s.facade.Balance(), s.describeItem(item)))
}

// Close is idempotent.
func (s *Shop) Close() {
	s.doClose()
}

// RefreshData pulls a fresh stock snapshot, keeping the cursor on the
// same item when it survives and clamping otherwise.
func (s *Shop) RefreshData() {
	var keepID string
	if current, ok := s.level.Current(); ok {
		keepID = current.ID
	}
	stock := s.facade.Stock()
	items := make([]Item, 0, len(stock))
	for _, entry := range stock {
		status := StatusBuyable
		if s.resolved(entry) {
			status = StatusOwned
		}
		items = append(items, Item{
			ID:      entry.ID,
			Label:   entry.Label,
			Status:  status,
			Payload: entry,
		})
	}
	s.level.Update(items)
	if idx := s.level.IndexOf(keepID); idx >= 0 {
		s.level.MoveTo(idx)
	}
}

func (s *Shop) resolved(entry game.StockEntry) bool {
	if entry.Owned {
		return true
	}
	_, ok := s.confirmed[entry.ID]
	return ok
}

func (s *Shop) describeItem(item Item) string {
	entry, _ := item.Payload.(game.StockEntry)
	if item.Status == StatusOwned {
		return fmt.Sprintf("%s, owned", item.Label)
	}
	return fmt.Sprintf("%s, %d coins", item.Label, entry.Cost)
}

// ProcessKey implements dispatch.Handler. The shop is modal: every key is
// swallowed while it is open.
func (s *Shop) ProcessKey(ev key.Event) bool {
	if !s.open {
		return false
	}
	switch {
	case ev.Plain(key.CodeUp):
		s.move(s.level, -1, 0)
	case ev.Plain(key.CodeDown):
		s.move(s.level, 1, 0)
	case ev.Plain(key.CodeHome):
		s.jumpHome(s.level, 0)
	case ev.Plain(key.CodeEnd):
		s.jumpEnd(s.level, 0)
	case ev.Plain(key.CodeEnter):
		s.activate()
	case ev.Plain(key.CodeBackspace):
		if !s.searchBackspace(s.level, 0) {
			s.say(fmt.Sprintf("%d coins", s.facade.Balance()))
		}
	case ev.Plain(key.CodeEscape):
		if !s.escapeClearsSearch() {
			s.swallowCancel()
			s.Close()
		}
	case ev.IsChar():
		s.typeChar(s.level, ev.Rune, 0)
	}
	return true
}

func (s *Shop) activate() {
	item, ok := s.level.Current()
	if !ok {
		s.say(s.level.emptyMessage())
		return
	}
	entry, _ := item.Payload.(game.StockEntry)
	if s.resolved(entry) {
		// Either the host already marked it owned or we bought it this
		// session and the host has not caught up yet.
		s.cue(audio.CueFailure)
		s.say(fmt.Sprintf("%s is already owned", item.Label))
		return
	}
	if !s.facade.CanAfford(item.ID) {
		s.cue(audio.CueFailure)
		s.say(fmt.Sprintf("Not enough coins for %s", item.Label))
		return
	}
	err := s.facade.Purchase(item.ID)
	events.Overlay.Action(s.name, item.ID, err)
	if err != nil {
		s.cue(audio.CueFailure)
		s.say(err.Error())
		return
	}
	s.confirmed[item.ID] = struct{}{}
	s.RefreshData()
	s.cue(audio.CueSuccess)
	if s.env.Verbose {
		s.say(fmt.Sprintf("Bought %s. %d coins left", item.Label, s.facade.Balance()))
	} else {
		s.say(fmt.Sprintf("Bought %s", item.Label))
	}
}
