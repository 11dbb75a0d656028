package texttable

import "github.com/charmbracelet/lipgloss"

// Styles controls how a TextTable renders.
type Styles struct {
	Border        lipgloss.Style
	FocusedBorder lipgloss.Style
	Title         lipgloss.Style
	Header        lipgloss.Style
	Row           lipgloss.Style
	Selected      lipgloss.Style
	Empty         lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Border:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FocusedBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Row:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Empty:         lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}
