// Package colwidth allocates table column widths and caches the result per
// available width.
package colwidth

import "slices"

// Separator is the number of cells between two visible columns.
const Separator = 1

// Spec constrains one column.
type Spec struct {
	Min  int  // narrowest usable width; columns that cannot get Min are hidden
	Max  int  // preferred width; values below Min are treated as Min
	Flex bool // absorbs space left over once every column reached Max
}

// State caches the widths computed for one table instance.
// The zero value is an empty, invalid cache.
type State struct {
	Widths []int

	forWidth int
	forCols  int
	valid    bool
}

// Clone returns a copy that does not share Widths with s.
func (s State) Clone() State {
	s.Widths = slices.Clone(s.Widths)
	return s
}

// Calculate returns widths for specs within total cells, reusing the cached
// widths when neither total nor the column count changed.
func (s *State) Calculate(specs []Spec, total int) []int {
	if s.valid && s.forWidth == total && s.forCols == len(specs) {
		return s.Widths
	}
	s.Widths = Allocate(specs, total)
	s.forWidth = total
	s.forCols = len(specs)
	s.valid = true
	return s.Widths
}

// Allocate distributes total cells across columns.
//
// Columns are admitted left to right at their Min width (plus Separator
// between columns). The first column that does not fit is hidden together
// with every column after it (width 0). Remaining space grows visible columns
// towards Max in order, then is shared evenly between visible Flex columns.
func Allocate(specs []Spec, total int) []int {
	widths := make([]int, len(specs))
	remaining := total
	visible := 0
	for i, sp := range specs {
		need := sp.Min
		if visible > 0 {
			need += Separator
		}
		if sp.Min <= 0 || need > remaining {
			break
		}
		widths[i] = sp.Min
		remaining -= need
		visible++
	}

	for i := 0; i < visible && remaining > 0; i++ {
		if grow := specs[i].Max - widths[i]; grow > 0 {
			grow = min(grow, remaining)
			widths[i] += grow
			remaining -= grow
		}
	}

	var flex []int
	for i := 0; i < visible; i++ {
		if specs[i].Flex {
			flex = append(flex, i)
		}
	}
	if len(flex) > 0 && remaining > 0 {
		share, extra := remaining/len(flex), remaining%len(flex)
		for n, i := range flex {
			widths[i] += share
			if n < extra {
				widths[i]++
			}
		}
	}
	return widths
}
