package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the form
const (
	ColorAccent    = "86"  // Cyan/green - titles
	ColorHighlight = "205" // Magenta - keys, overlay border
	ColorMuted     = "241" // Gray - hints
	ColorText      = "252" // Light gray - values
)

// Styles contains shared style definitions for the form and its overlays.
var Styles = struct {
	Title lipgloss.Style // Bold accent color
	Box   lipgloss.Style // Overlay box with rounded border
	Hint  lipgloss.Style // Help/hint text
	Key   lipgloss.Style // Field names in the summary
	Value lipgloss.Style // Field values in the summary
	Empty lipgloss.Style // Empty value placeholder
	Label lipgloss.Style // Floating label text
	Input lipgloss.Style // Text inside the input box
	Form  lipgloss.Style // Form container
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Key: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#CC6055")),
	Input: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Form: lipgloss.NewStyle().
		Margin(1, formMargin),
}

// newHelp returns a help model styled like the rest of the form.
func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return h
}
