// Package mapnav is the fallback gameplay handler: when no overlay owns
// the keyboard it walks a tile cursor across the world map, announces
// tiles, and opens overlays through registered shortcuts.
package mapnav

import (
	"fmt"
	"unicode"

	"github.com/sightcast/narrator/internal/audio"
	"github.com/sightcast/narrator/internal/game"
	"github.com/sightcast/narrator/internal/gate"
	"github.com/sightcast/narrator/internal/key"
	"github.com/sightcast/narrator/internal/speech"
)

// Handler is the default game map handler.
type Handler struct {
	host      game.Host
	world     game.World
	announcer *speech.Announcer
	sounds    audio.Player
	gate      *gate.Gate

	x, y      int
	shortcuts map[rune]func()
}

// New builds the map handler.
func New(host game.Host, world game.World, announcer *speech.Announcer, sounds audio.Player, g *gate.Gate) *Handler {
	if sounds == nil {
		sounds = audio.Null
	}
	return &Handler{
		host:      host,
		world:     world,
		announcer: announcer,
		sounds:    sounds,
		gate:      g,
		shortcuts: make(map[rune]func()),
	}
}

// RegisterShortcut opens an overlay when the rune is pressed on the map.
func (h *Handler) RegisterShortcut(r rune, open func()) {
	h.shortcuts[unicode.ToLower(r)] = open
}

// Name implements dispatch.Handler.
func (h *Handler) Name() string {
	return "map"
}

// IsActive implements dispatch.Handler: live only during gameplay and
// only while no overlay has blocked host input.
func (h *Handler) IsActive() bool {
	return h.host.InGame() && !h.gate.Blocked()
}

// Position returns the tile cursor.
func (h *Handler) Position() (int, int) {
	return h.x, h.y
}

// ProcessKey implements dispatch.Handler. The map handler is not modal:
// keys it has no meaning for fall through to the host.
func (h *Handler) ProcessKey(ev key.Event) bool {
	switch {
	case ev.Plain(key.CodeUp):
		h.moveCursor(0, -1)
	case ev.Plain(key.CodeDown):
		h.moveCursor(0, 1)
	case ev.Plain(key.CodeLeft):
		h.moveCursor(-1, 0)
	case ev.Plain(key.CodeRight):
		h.moveCursor(1, 0)
	case ev.Plain(key.CodeHome):
		h.x, h.y = 0, 0
		h.announceTile()
	case ev.Plain(key.CodeEnter), ev.Plain(key.CodeSpace):
		h.interact()
	case ev.Plain(key.CodeEscape):
		// An overlay that just closed on Escape marks the key consumed;
		// otherwise the host gets its pause menu.
		return h.gate.ConsumeSwallow()
	case ev.IsChar():
		if open, ok := h.shortcuts[unicode.ToLower(ev.Rune)]; ok {
			open()
			return true
		}
		return false
	default:
		return false
	}
	return true
}

// moveCursor clamps at the map edge rather than wrapping; walking off the
// world would disorient more than it helps.
func (h *Handler) moveCursor(dx, dy int) {
	w, ht := h.world.Bounds()
	nx, ny := h.x+dx, h.y+dy
	if nx < 0 || ny < 0 || nx >= w || ny >= ht {
		h.sounds.Play(audio.CueFailure)
		h.announcer.Say("Edge of map")
		return
	}
	h.x, h.y = nx, ny
	h.sounds.Play(audio.CueMove)
	h.announceTile()
}

func (h *Handler) announceTile() {
	tile, ok := h.world.TileAt(h.x, h.y)
	if !ok {
		h.announcer.Say("Nothing here")
		return
	}
	if tile.Occupant != "" {
		h.announcer.Say(fmt.Sprintf("%s on %s, %d, %d", tile.Occupant, tile.Label, tile.X, tile.Y))
		return
	}
	h.announcer.Say(fmt.Sprintf("%s, %d, %d", tile.Label, tile.X, tile.Y))
}

func (h *Handler) interact() {
	if err := h.world.Interact(h.x, h.y); err != nil {
		h.sounds.Play(audio.CueFailure)
		h.announcer.Say(err.Error())
	}
}
