// Package scroll tracks the selection cursor and viewport offset of a list.
package scroll

// Direction is the direction of the most recent movement.
type Direction int

const (
	Down Direction = iota
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// State is the scroll state of one list. The zero value selects the first row.
type State struct {
	Position  int // selected row index
	Offset    int // first visible row index
	Direction Direction
}

// Move shifts the selection by delta rows within a list of n rows.
// Returns true if the selection changed.
func (s *State) Move(delta, n int) bool {
	if delta > 0 {
		s.Direction = Down
	} else if delta < 0 {
		s.Direction = Up
	}
	return s.set(s.Position+delta, n)
}

// Jump selects row pos within a list of n rows, clamping out-of-range values.
// Returns true if the selection changed.
func (s *State) Jump(pos, n int) bool {
	if pos > s.Position {
		s.Direction = Down
	} else if pos < s.Position {
		s.Direction = Up
	}
	return s.set(pos, n)
}

// Clamp pulls the selection back inside a list that now has n rows.
func (s *State) Clamp(n int) {
	s.set(s.Position, n)
	if s.Offset > s.Position {
		s.Offset = s.Position
	}
}

func (s *State) set(pos, n int) bool {
	if n <= 0 {
		pos = 0
	} else if pos >= n {
		pos = n - 1
	}
	if pos < 0 {
		pos = 0
	}
	changed := pos != s.Position
	s.Position = pos
	return changed
}

// Window returns the half-open range [start, end) of rows visible in a
// viewport of height rows over a list of n rows.
//
// The offset only moves when the selection would leave the viewport, so
// moving within the visible rows never scrolls.
func (s *State) Window(height, n int) (start, end int) {
	if height <= 0 || n <= 0 {
		s.Offset = 0
		return 0, 0
	}
	s.set(s.Position, n)
	if s.Position < s.Offset {
		s.Offset = s.Position
	}
	if s.Position >= s.Offset+height {
		s.Offset = s.Position - height + 1
	}
	if maxOffset := n - height; s.Offset > maxOffset {
		s.Offset = max(maxOffset, 0)
	}
	return s.Offset, min(s.Offset+height, n)
}
