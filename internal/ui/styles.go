package ui

import (
	"github.com/charmbracelet/lipgloss"

	"sysdash/internal/widget/texttable"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, focused borders
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints, idle borders
	ColorText      = "252" // Light gray - for normal text
)

// Styles contains shared style definitions used across panels and the footer.
var Styles = struct {
	Title    lipgloss.Style // Bold accent color - panel titles
	Border   lipgloss.Style // Idle panel border
	Focused  lipgloss.Style // Focused panel border
	Header   lipgloss.Style // Table header row
	Normal   lipgloss.Style // Normal text
	Selected lipgloss.Style // Selected row in the focused panel
	Muted    lipgloss.Style // Dimmed text
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Status   lipgloss.Style // Status indicators (accent color)
	Error    lipgloss.Style // Error line in the footer
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Border: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Focused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}

// TableStyles returns the shared palette in the form TextTable expects.
func TableStyles() texttable.Styles {
	return texttable.Styles{
		Border:        Styles.Border,
		FocusedBorder: Styles.Focused,
		Title:         Styles.Title,
		Header:        Styles.Header,
		Row:           Styles.Normal,
		Selected:      Styles.Selected,
		Empty:         Styles.Empty,
	}
}
