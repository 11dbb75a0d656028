package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the one-line help bar shown below the panels:
// application bindings for mode followed by the panel navigation bindings,
// truncated to width.
func RenderKeybindHelp(reg *KeybindRegistry, mode AppMode, panelKeys []key.Binding, width int) string {
	var bindings []key.Binding
	if reg != nil {
		bindings = append(bindings, reg.Bindings(mode)...)
	}
	bindings = append(bindings, panelKeys...)
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Width = width
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	return helpModel.ShortHelpView(bindings)
}
