package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const (
	defaultViewWidth  = 80
	transcriptMaxRows = 8
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultViewWidth
	}

	var b strings.Builder
	b.WriteString(m.fitLine(styles.Header.Render(" Narrator "), width))
	b.WriteString("\n\n")

	caption := "Ready."
	if entries := m.app.History.Entries(); len(entries) > 0 {
		caption = entries[0]
	}
	b.WriteString(m.fitLine(styles.Caption.Render(caption), width))
	b.WriteString("\n")
	b.WriteString(m.fitLine(styles.Context.Render(m.contextLine()), width))
	b.WriteString("\n\n")

	for _, row := range m.transcriptRows() {
		b.WriteString(m.fitLine(styles.Transcript.Render(row), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.fitLine(styles.Footer.Render(m.footerLine()), width))
	return b.String()
}

// contextLine names whoever owns the keyboard right now.
func (m *Model) contextLine() string {
	a := m.app
	switch {
	case a.Dialogue.IsOpen():
		return "In conversation"
	case a.HistoryView.IsOpen():
		return "Browsing history"
	case a.Workshop.IsOpen():
		return "Workshop open"
	case a.Journal.IsOpen():
		return "Journal open"
	case a.Shop.IsOpen():
		return "Shop open"
	default:
		x, y := a.Map.Position()
		return fmt.Sprintf("On the map at %d, %d", x, y)
	}
}

// transcriptRows returns the announcements older than the caption,
// oldest last, capped to what fits.
func (m *Model) transcriptRows() []string {
	entries := m.app.History.Entries()
	if len(entries) < 2 {
		return nil
	}
	rows := entries[1:]
	limit := transcriptMaxRows
	if m.height > 0 {
		// Header, blank, caption, context, blank, blank, footer.
		if available := m.height - 7; available < limit {
			limit = available
		}
	}
	if limit < 0 {
		limit = 0
	}
	if len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = "  " + row
	}
	return out
}

func (m *Model) footerLine() string {
	if m.app.Dialogue.IsOpen() {
		return " space continue · enter choose · → next · esc leave"
	}
	if m.app.Gate.Blocked() {
		return " ↑↓ navigate · type to search · enter select · esc close"
	}
	return " arrows walk · enter interact · s/j/w/h panels · ctrl+c quit"
}

// fitLine truncates a rendered row to the viewport width without
// breaking its ANSI styling.
func (m *Model) fitLine(row string, width int) string {
	return ansi.Truncate(row, width, "…")
}
