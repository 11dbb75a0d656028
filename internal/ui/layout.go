package ui

import (
	"github.com/charmbracelet/lipgloss"

	"sysdash/internal/widget"
)

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []uint64 // Tab order for focus
}

// GridLayout arranges panels in rows. Rows share the height equally and the
// panels of a row share its width equally; leftover cells go to the first
// rows and columns.
type GridLayout struct {
	rows [][]Panel
}

var _ Layout = (*GridLayout)(nil)

// NewGridLayout creates a layout from rows of panels. Empty rows are dropped.
func NewGridLayout(rows [][]Panel) *GridLayout {
	g := &GridLayout{}
	for _, r := range rows {
		if len(r) > 0 {
			g.rows = append(g.rows, r)
		}
	}
	return g
}

// Panels returns every panel in row-major order.
func (g *GridLayout) Panels() []Panel {
	var out []Panel
	for _, r := range g.rows {
		out = append(out, r...)
	}
	return out
}

// FocusOrder returns panel ids in row-major order.
func (g *GridLayout) FocusOrder() []uint64 {
	var ids []uint64
	for _, r := range g.rows {
		for _, p := range r {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Find returns the panel with the given id.
func (g *GridLayout) Find(id uint64) (Panel, bool) {
	for _, r := range g.rows {
		for _, p := range r {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Panel{}, false
}

// FirstOfKind returns the first panel of kind in row-major order.
func (g *GridLayout) FirstOfKind(kind PanelKind) (Panel, bool) {
	for _, r := range g.rows {
		for _, p := range r {
			if p.Kind == kind {
				return p, true
			}
		}
	}
	return Panel{}, false
}

// PanelAt returns the panel whose bounds contain (x, y).
func (g *GridLayout) PanelAt(x, y int) (Panel, bool) {
	for _, r := range g.rows {
		for _, p := range r {
			if p.Widget.Bounds().Contains(x, y) {
				return p, true
			}
		}
	}
	return Panel{}, false
}

// Arrange runs the layout pass over area. If expanded names a panel, that
// panel receives the whole area and every other panel empty bounds, so it
// alone is drawn and hit by the mouse.
func (g *GridLayout) Arrange(area widget.Rect, expanded uint64) {
	if _, ok := g.Find(expanded); ok {
		for _, p := range g.Panels() {
			if p.ID == expanded {
				p.Widget.SetBounds(area)
			} else {
				p.Widget.SetBounds(widget.Rect{})
			}
		}
		return
	}

	heights := split(area.Height, len(g.rows))
	y := area.Y
	for i, r := range g.rows {
		widths := split(area.Width, len(r))
		x := area.X
		for j, p := range r {
			p.Widget.SetBounds(widget.Rect{X: x, Y: y, Width: widths[j], Height: heights[i]})
			x += widths[j]
		}
		y += heights[i]
	}
}

// Render draws every panel with non-empty bounds, highlighting focused.
func (g *GridLayout) Render(focused uint64) string {
	var lines []string
	for _, r := range g.rows {
		var cells []string
		for _, p := range r {
			if p.Widget.Bounds().IsEmpty() {
				continue
			}
			cells = append(cells, p.Widget.Draw(p.ID == focused))
		}
		if len(cells) > 0 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// split divides total into n near-equal parts.
func split(total, n int) []int {
	if n <= 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}
	parts := make([]int, n)
	base, extra := total/n, total%n
	for i := range parts {
		parts[i] = base
		if i < extra {
			parts[i]++
		}
	}
	return parts
}
