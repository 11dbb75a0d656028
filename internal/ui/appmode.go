package ui

// AppMode represents how the layout is presented.
type AppMode int

const (
	// ModeGrid shows every panel in its grid cell.
	ModeGrid AppMode = iota
	// ModeExpanded shows only the focused panel, full screen.
	ModeExpanded
)

func (m AppMode) String() string {
	switch m {
	case ModeGrid:
		return "Grid"
	case ModeExpanded:
		return "Expanded"
	default:
		return "Unknown"
	}
}
