// Package overlay implements the navigable panels layered over the host
// game: flat lists, multi-level drilldowns, the dialogue reader, and the
// announcement history browser. Every overlay owns its navigation state
// exclusively and speaks through the shared announcer.
package overlay

// Status tags an item with its host-side standing.
type Status int

const (
	StatusNone Status = iota
	StatusLocked
	StatusBuyable
	StatusOwned
	StatusAchieved
)

var statusNames = map[Status]string{
	StatusLocked:   "locked",
	StatusBuyable:  "available",
	StatusOwned:    "owned",
	StatusAchieved: "achieved",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return ""
}

// Item is one navigable entry: a label for announcement, an optional
// dedicated search key, a status tag, and an opaque payload pointing back
// into facade data. Items are rebuilt wholesale on every refresh.
type Item struct {
	ID        string
	Label     string
	SearchKey string
	Status    Status
	Payload   interface{}
}

// Key returns the string type-ahead matches against.
func (i Item) Key() string {
	if i.SearchKey != "" {
		return i.SearchKey
	}
	return i.Label
}
