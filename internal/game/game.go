// Package game defines the typed boundary between the navigation layer
// and the host game. The core never reads host internals directly; every
// overlay consumes one of these read/command interfaces, which keeps the
// navigation logic portable and testable without a live host.
package game

// Host exposes the coarse host state the dispatcher needs.
type Host interface {
	// InGame reports whether gameplay input should be live. False on the
	// main menu and during loading screens.
	InGame() bool
}

// StockEntry is one purchasable shop item, snapshotted at refresh time.
type StockEntry struct {
	ID    string
	Label string
	Cost  int
	Owned bool
}

// Shop sells items for currency.
type Shop interface {
	Stock() []StockEntry
	CanAfford(id string) bool
	Purchase(id string) error
	Balance() int
}

// Category groups journal entries.
type Category struct {
	ID    string
	Label string
}

// Entry is a single journal entry.
type Entry struct {
	ID      string
	Label   string
	Text    string
	Tracked bool
}

// Journal is a two-level read surface: categories containing entries.
type Journal interface {
	Categories() []Category
	Entries(categoryID string) []Entry
	ToggleTracked(id string) error
}

// Structure is a buildable the player owns.
type Structure struct {
	ID    string
	Label string
	Level int
}

// Upgrade is one improvement available on a structure.
type Upgrade struct {
	ID       string
	Label    string
	Cost     int
	Started  bool
	Complete bool
}

// Reward is earned by completing an upgrade.
type Reward struct {
	ID      string
	Label   string
	Claimed bool
}

// Workshop is a three-level surface: structures, their upgrades, and the
// rewards each upgrade unlocks.
type Workshop interface {
	Structures() []Structure
	Upgrades(structureID string) []Upgrade
	Rewards(upgradeID string) []Reward
	StartUpgrade(upgradeID string) error
	Claim(rewardID string) error
	Demolish(structureID string) error
}

// Node is the current dialogue page: text plus optional branch choices.
type Node struct {
	ID      string
	Speaker string
	Text    string
	Choices []string
}

// Dialogue drives conversations. The host additionally raises callbacks
// when a new node is ready; the app wires those into the event queue.
type Dialogue interface {
	Current() (Node, bool)
	Continue() error
	Choose(index int) error
}

// DialogueListener receives host-fired dialogue notifications. Kind is
// "dialogue" for a new page and "branch" when choices appear.
type DialogueListener func(kind string, node Node)

// DialogueNotifier lets the composition root subscribe to dialogue
// callbacks.
type DialogueNotifier interface {
	SetDialogueListener(DialogueListener)
}

// Tile is one map cell under the navigation cursor.
type Tile struct {
	X        int
	Y        int
	Label    string
	Occupant string
}

// World exposes the map the fallback handler walks.
type World interface {
	Bounds() (width, height int)
	TileAt(x, y int) (Tile, bool)
	Interact(x, y int) error
}
