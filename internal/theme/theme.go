// Package theme holds the Lip Gloss styles shared by the demo UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header     *lipgloss.Style
	Caption    *lipgloss.Style
	Transcript *lipgloss.Style
	Context    *lipgloss.Style
	Footer     *lipgloss.Style
	Error      *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Caption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	),
	Transcript: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Context: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
}

// Default returns the stock styles.
func Default() Styles {
	return defaultStyles
}

func ptr(s lipgloss.Style) *lipgloss.Style {
	return &s
}
