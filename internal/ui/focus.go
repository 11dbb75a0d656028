package ui

// FocusManager tracks and rotates focus across panels.
type FocusManager struct {
	Current  uint64   // ID of the currently focused panel
	Order    []uint64 // Tab order for focus rotation
	OnChange func(from, to uint64)
}

// Next advances focus to the next panel in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() uint64 {
	return f.step(1)
}

// Prev advances focus to the previous panel in order.
func (f *FocusManager) Prev() uint64 {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) uint64 {
	if len(f.Order) == 0 {
		return 0
	}
	idx := f.index(f.Current)
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = len(f.Order) - 1
	default:
		next = (idx + delta + len(f.Order)) % len(f.Order)
	}
	f.set(f.Order[next])
	return f.Current
}

// SetFocus sets focus to the given panel ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id uint64) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

// Reset replaces the focus order after a layout rebuild. Focus moves to
// prefer if it is in order, else to the first panel.
func (f *FocusManager) Reset(order []uint64, prefer uint64) {
	f.Order = order
	if f.SetFocus(prefer) {
		return
	}
	if len(order) == 0 {
		f.set(0)
		return
	}
	f.set(order[0])
}

func (f *FocusManager) index(id uint64) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id uint64) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
