// Package gate holds the flags that suppress the host's own input handling
// while an overlay owns the keyboard. The gate is built once by the
// composition root and handed to every overlay; there is no package-level
// state.
package gate

// Gate tracks whether host input is currently suppressed and whether the
// next cancel action should be swallowed instead of echoed to the host.
type Gate struct {
	blocked       bool
	swallowCancel bool
}

// New returns an open gate.
func New() *Gate {
	return &Gate{}
}

// Block suppresses host input handling.
func (g *Gate) Block() {
	g.blocked = true
}

// Unblock restores host input handling.
func (g *Gate) Unblock() {
	g.blocked = false
}

// Blocked reports whether host input is suppressed.
func (g *Gate) Blocked() bool {
	return g.blocked
}

// SwallowNextCancel arms the one-shot cancel swallow. Set when an overlay
// consumes the cancel key while closing, so the host does not also react
// to it this frame.
func (g *Gate) SwallowNextCancel() {
	g.swallowCancel = true
}

// ConsumeSwallow reports whether a cancel should be swallowed and clears
// the flag. The first query wins.
func (g *Gate) ConsumeSwallow() bool {
	was := g.swallowCancel
	g.swallowCancel = false
	return was
}
