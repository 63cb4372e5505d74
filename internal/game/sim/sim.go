// Package sim is an in-memory host game used by the demo binary and the
// integration tests. It implements every facade in internal/game and can
// fire dialogue callbacks back-to-back the way a real host does.
package sim

import (
	"fmt"

	"github.com/sightcast/narrator/internal/game"
)

// Game holds the whole simulated world.
type Game struct {
	inGame  bool
	balance int

	stock   []game.StockEntry
	journal map[string][]game.Entry
	cats    []game.Category

	structures []game.Structure
	upgrades   map[string][]game.Upgrade
	rewards    map[string][]game.Reward

	script   []game.Node
	page     int
	inTalk   bool
	listener game.DialogueListener

	width, height int
	npcX, npcY    int
}

// NewGame seeds a small but complete world.
func NewGame() *Game {
	g := &Game{
		inGame:  true,
		balance: 500,
		stock: []game.StockEntry{
			{ID: "axe", Label: "Iron Axe", Cost: 150},
			{ID: "lantern", Label: "Lantern", Cost: 80},
			{ID: "seeds", Label: "Barley Seeds", Cost: 40},
			{ID: "plough", Label: "Heavy Plough", Cost: 600},
		},
		cats: []game.Category{
			{ID: "quests", Label: "Quests"},
			{ID: "creatures", Label: "Creatures"},
		},
		journal: map[string][]game.Entry{
			"quests": {
				{ID: "q1", Label: "A Leaky Roof", Text: "Patch the barn roof before the rains."},
				{ID: "q2", Label: "The Lost Ledger", Text: "Find the merchant's missing ledger."},
			},
			"creatures": {
				{ID: "c1", Label: "Marsh Heron", Text: "Seen at dawn near the east pond."},
			},
		},
		structures: []game.Structure{
			{ID: "barn", Label: "Barn", Level: 1},
			{ID: "mill", Label: "Windmill", Level: 2},
		},
		upgrades: map[string][]game.Upgrade{
			"barn": {
				{ID: "barn-roof", Label: "Slate Roof", Cost: 200},
				{ID: "barn-stalls", Label: "Extra Stalls", Cost: 350},
			},
			"mill": {
				{ID: "mill-sails", Label: "Canvas Sails", Cost: 120},
			},
		},
		rewards: map[string][]game.Reward{
			"barn-roof":   {{ID: "r-dry", Label: "Dry Storage"}},
			"barn-stalls": {{ID: "r-goat", Label: "Goat Pen"}, {ID: "r-hay", Label: "Hay Rack"}},
			"mill-sails":  {{ID: "r-flour", Label: "Faster Milling"}},
		},
		script: []game.Node{
			{ID: "n1", Speaker: "Merchant", Text: "Back again? The roads were kind to me this week."},
			{ID: "n2", Speaker: "Merchant", Text: "Care to trade, or just talk?",
				Choices: []string{"Show me your wares", "Tell me the news", "Goodbye"}},
			{ID: "n3", Speaker: "Merchant", Text: "Safe travels, friend."},
		},
		width:  8,
		height: 6,
		npcX:   3,
		npcY:   2,
	}
	return g
}

// SetInGame flips the gameplay-active flag.
func (g *Game) SetInGame(active bool) {
	g.inGame = active
}

// InGame implements game.Host.
func (g *Game) InGame() bool {
	return g.inGame
}

// Stock implements game.Shop. Returns a copy.
func (g *Game) Stock() []game.StockEntry {
	dup := make([]game.StockEntry, len(g.stock))
	copy(dup, g.stock)
	return dup
}

// Balance implements game.Shop.
func (g *Game) Balance() int {
	return g.balance
}

// CanAfford implements game.Shop.
func (g *Game) CanAfford(id string) bool {
	for _, entry := range g.stock {
		if entry.ID == id {
			return g.balance >= entry.Cost
		}
	}
	return false
}

// Purchase implements game.Shop.
func (g *Game) Purchase(id string) error {
	for i, entry := range g.stock {
		if entry.ID != id {
			continue
		}
		if entry.Owned {
			return fmt.Errorf("%s is already owned", entry.Label)
		}
		if g.balance < entry.Cost {
			return fmt.Errorf("not enough coins for %s", entry.Label)
		}
		g.balance -= entry.Cost
		g.stock[i].Owned = true
		return nil
	}
	return fmt.Errorf("unknown item %q", id)
}

// Categories implements game.Journal.
func (g *Game) Categories() []game.Category {
	dup := make([]game.Category, len(g.cats))
	copy(dup, g.cats)
	return dup
}

// Entries implements game.Journal.
func (g *Game) Entries(categoryID string) []game.Entry {
	entries := g.journal[categoryID]
	dup := make([]game.Entry, len(entries))
	copy(dup, entries)
	return dup
}

// ToggleTracked implements game.Journal.
func (g *Game) ToggleTracked(id string) error {
	for cat, entries := range g.journal {
		for i, entry := range entries {
			if entry.ID == id {
				g.journal[cat][i].Tracked = !entry.Tracked
				return nil
			}
		}
	}
	return fmt.Errorf("unknown journal entry %q", id)
}

// Structures implements game.Workshop.
func (g *Game) Structures() []game.Structure {
	dup := make([]game.Structure, len(g.structures))
	copy(dup, g.structures)
	return dup
}

// Upgrades implements game.Workshop.
func (g *Game) Upgrades(structureID string) []game.Upgrade {
	ups := g.upgrades[structureID]
	dup := make([]game.Upgrade, len(ups))
	copy(dup, ups)
	return dup
}

// Rewards implements game.Workshop.
func (g *Game) Rewards(upgradeID string) []game.Reward {
	rs := g.rewards[upgradeID]
	dup := make([]game.Reward, len(rs))
	copy(dup, rs)
	return dup
}

// StartUpgrade implements game.Workshop.
func (g *Game) StartUpgrade(upgradeID string) error {
	for structID, ups := range g.upgrades {
		for i, up := range ups {
			if up.ID != upgradeID {
				continue
			}
			if up.Started {
				return fmt.Errorf("%s is already underway", up.Label)
			}
			if g.balance < up.Cost {
				return fmt.Errorf("not enough coins for %s", up.Label)
			}
			g.balance -= up.Cost
			g.upgrades[structID][i].Started = true
			g.upgrades[structID][i].Complete = true
			return nil
		}
	}
	return fmt.Errorf("unknown upgrade %q", upgradeID)
}

// Claim implements game.Workshop.
func (g *Game) Claim(rewardID string) error {
	for upID, rs := range g.rewards {
		for i, r := range rs {
			if r.ID != rewardID {
				continue
			}
			if r.Claimed {
				return fmt.Errorf("%s was already claimed", r.Label)
			}
			if !g.upgradeComplete(upID) {
				return fmt.Errorf("%s is not finished yet", upID)
			}
			g.rewards[upID][i].Claimed = true
			return nil
		}
	}
	return fmt.Errorf("unknown reward %q", rewardID)
}

func (g *Game) upgradeComplete(upgradeID string) bool {
	for _, ups := range g.upgrades {
		for _, up := range ups {
			if up.ID == upgradeID {
				return up.Complete
			}
		}
	}
	return false
}

// Demolish implements game.Workshop.
func (g *Game) Demolish(structureID string) error {
	for i, s := range g.structures {
		if s.ID == structureID {
			g.structures = append(g.structures[:i], g.structures[i+1:]...)
			delete(g.upgrades, structureID)
			return nil
		}
	}
	return fmt.Errorf("unknown structure %q", structureID)
}

// SetDialogueListener implements game.DialogueNotifier.
func (g *Game) SetDialogueListener(fn game.DialogueListener) {
	g.listener = fn
}

// Current implements game.Dialogue.
func (g *Game) Current() (game.Node, bool) {
	if !g.inTalk || g.page >= len(g.script) {
		return game.Node{}, false
	}
	return g.script[g.page], true
}

// Continue implements game.Dialogue.
func (g *Game) Continue() error {
	if !g.inTalk {
		return fmt.Errorf("no conversation in progress")
	}
	g.page++
	if g.page >= len(g.script) {
		g.inTalk = false
		return nil
	}
	g.fireCurrent()
	return nil
}

// Choose implements game.Dialogue.
func (g *Game) Choose(index int) error {
	node, ok := g.Current()
	if !ok {
		return fmt.Errorf("no conversation in progress")
	}
	if index < 0 || index >= len(node.Choices) {
		return fmt.Errorf("no such choice")
	}
	// Every branch in the demo script leads to the farewell page.
	g.page = len(g.script) - 1
	g.fireCurrent()
	return nil
}

// StartTalk begins the scripted conversation and fires the first
// notification the way a real host would.
func (g *Game) StartTalk() {
	g.inTalk = true
	g.page = 0
	g.fireCurrent()
}

// FireBurst replays the first two script pages as back-to-back
// notifications, simulating a host that raises a second callback before
// the first was heard.
func (g *Game) FireBurst() {
	g.inTalk = true
	g.page = 0
	if g.listener != nil {
		g.listener(kindFor(g.script[0]), g.script[0])
		g.listener(kindFor(g.script[1]), g.script[1])
	}
	g.page = 1
}

func (g *Game) fireCurrent() {
	if g.listener == nil {
		return
	}
	if node, ok := g.Current(); ok {
		g.listener(kindFor(node), node)
	}
}

func kindFor(node game.Node) string {
	if len(node.Choices) > 0 {
		return "branch"
	}
	return "dialogue"
}

// Bounds implements game.World.
func (g *Game) Bounds() (int, int) {
	return g.width, g.height
}

// TileAt implements game.World.
func (g *Game) TileAt(x, y int) (game.Tile, bool) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return game.Tile{}, false
	}
	tile := game.Tile{X: x, Y: y, Label: "Grass"}
	if x == g.npcX && y == g.npcY {
		tile.Label = "Road"
		tile.Occupant = "Merchant"
	}
	return tile, true
}

// Interact implements game.World. Talking to the merchant starts the
// scripted conversation.
func (g *Game) Interact(x, y int) error {
	tile, ok := g.TileAt(x, y)
	if !ok {
		return fmt.Errorf("nothing there")
	}
	if tile.Occupant == "" {
		return fmt.Errorf("nothing to interact with")
	}
	g.StartTalk()
	return nil
}
