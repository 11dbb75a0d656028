package widget

import tea "github.com/charmbracelet/bubbletea"

// KeyEvent is a keyboard event from the host terminal.
type KeyEvent = tea.KeyMsg

// MouseEvent is a mouse event in absolute screen coordinates.
type MouseEvent = tea.MouseMsg

// EventResult is the outcome of handling one input event.
type EventResult int

const (
	// NoRedraw means the event was ignored or changed nothing visible.
	NoRedraw EventResult = iota
	// Redraw means visible state changed.
	Redraw
	// Quit asks the application to exit.
	Quit
)

func (e EventResult) String() string {
	switch e {
	case NoRedraw:
		return "NoRedraw"
	case Redraw:
		return "Redraw"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}
