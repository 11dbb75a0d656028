// Package texttable implements the scrollable, bordered text table shared by
// every dashboard panel.
//
// A TextTable does not own its scroll position or column widths. It pulls
// them from a StateSource on every event and draw, so several tables showing
// the same data keep independent state, and the state outlives the table.
package texttable

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"sysdash/internal/widget"
	"sysdash/internal/widget/colwidth"
	"sysdash/internal/widget/scroll"
)

// Row is one table row; cells line up with Config.Columns.
type Row []string

// Column describes one table column.
type Column struct {
	Header     string
	Spec       colwidth.Spec
	AlignRight bool
}

// StateSource resolves the UI state of the table instance.
// ok is false when the instance has no registered state; the table then
// ignores input and draws a placeholder.
type StateSource func() (sc *scroll.State, widths *colwidth.State, ok bool)

// Config configures a TextTable.
type Config struct {
	Title   string
	Columns []Column
	Rows    func() []Row
	State   StateSource
	Keys    *KeyMap
	Styles  *Styles
}

// chrome is the number of non-data lines: top border, header, bottom border.
const chrome = 3

// TextTable renders rows into a bordered box and handles in-table navigation.
type TextTable struct {
	title   string
	columns []Column
	rows    func() []Row
	state   StateSource
	keys    KeyMap
	styles  Styles

	drawn widget.Rect // bounds of the last Draw, used for mouse hit-testing
}

// New creates a TextTable from cfg. Nil Rows means no data; nil State means
// the table never has state.
func New(cfg Config) *TextTable {
	t := &TextTable{
		title:   cfg.Title,
		columns: cfg.Columns,
		rows:    cfg.Rows,
		state:   cfg.State,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
	}
	if cfg.Keys != nil {
		t.keys = *cfg.Keys
	}
	if cfg.Styles != nil {
		t.styles = *cfg.Styles
	}
	return t
}

// KeyMap returns the navigation bindings, for help rendering.
func (t *TextTable) KeyMap() KeyMap {
	return t.keys
}

func (t *TextTable) data() []Row {
	if t.rows == nil {
		return nil
	}
	return t.rows()
}

func (t *TextTable) lookup() (*scroll.State, *colwidth.State, bool) {
	if t.state == nil {
		return nil, nil, false
	}
	return t.state()
}

// pageSize is the number of data rows visible in the last drawn bounds.
func (t *TextTable) pageSize() int {
	return max(t.drawn.Height-chrome, 1)
}

// HandleKeyEvent moves the selection. Returns Redraw when it moved.
func (t *TextTable) HandleKeyEvent(event widget.KeyEvent) widget.EventResult {
	sc, _, ok := t.lookup()
	if !ok {
		return widget.NoRedraw
	}
	n := len(t.data())

	var changed bool
	switch {
	case key.Matches(event, t.keys.Up):
		changed = sc.Move(-1, n)
	case key.Matches(event, t.keys.Down):
		changed = sc.Move(1, n)
	case key.Matches(event, t.keys.PageUp):
		changed = sc.Move(-t.pageSize(), n)
	case key.Matches(event, t.keys.PageDown):
		changed = sc.Move(t.pageSize(), n)
	case key.Matches(event, t.keys.Top):
		changed = sc.Jump(0, n)
	case key.Matches(event, t.keys.Bottom):
		changed = sc.Jump(n-1, n)
	}
	if changed {
		return widget.Redraw
	}
	return widget.NoRedraw
}

// HandleMouseEvent scrolls on wheel events and selects the row under a left
// click. Coordinates are absolute; hit-testing uses the bounds of the last Draw.
func (t *TextTable) HandleMouseEvent(event widget.MouseEvent) widget.EventResult {
	sc, _, ok := t.lookup()
	if !ok {
		return widget.NoRedraw
	}
	n := len(t.data())

	var changed bool
	switch {
	case event.Button == tea.MouseButtonWheelUp:
		changed = sc.Move(-1, n)
	case event.Button == tea.MouseButtonWheelDown:
		changed = sc.Move(1, n)
	case event.Button == tea.MouseButtonLeft && event.Action == tea.MouseActionPress:
		// Padding below the last row is not a row.
		idx, hit := t.rowAt(event.X, event.Y)
		if hit && sc.Offset+idx < n {
			changed = sc.Jump(sc.Offset+idx, n)
		}
	}
	if changed {
		return widget.Redraw
	}
	return widget.NoRedraw
}

// rowAt maps screen coordinates to a visible data row index (relative to the
// scroll offset).
func (t *TextTable) rowAt(x, y int) (int, bool) {
	inner := t.drawn.Inner(1)
	// First inner line is the header.
	dataTop := inner.Y + 1
	if !inner.Contains(x, y) || y < dataTop {
		return 0, false
	}
	return y - dataTop, true
}

// Draw renders the table into exactly bounds.Width x bounds.Height cells.
// The bounds are remembered for hit-testing subsequent mouse events.
func (t *TextTable) Draw(bounds widget.Rect, focused bool) string {
	t.drawn = bounds
	if bounds.Width < 2 || bounds.Height < 2 {
		return ""
	}
	innerW := bounds.Width - 2
	innerH := bounds.Height - 2

	border := t.styles.Border
	if focused {
		border = t.styles.FocusedBorder
	}

	rows := t.data()
	sc, widths, ok := t.lookup()

	var lines []string
	title := " " + t.title + " "
	if !ok {
		lines = append(lines, t.styles.Empty.Render(fit("no state", innerW, false)))
	} else {
		cols := widths.Calculate(t.specs(), innerW)
		lines = append(lines, t.styles.Header.Render(fit(t.renderCells(t.headers(), cols), innerW, false)))

		start, end := sc.Window(innerH-1, len(rows))
		if len(rows) == 0 {
			lines = append(lines, t.styles.Empty.Render(fit("no data", innerW, false)))
		} else {
			title = fmt.Sprintf(" %s ─ %d/%d ", t.title, sc.Position+1, len(rows))
		}
		for i := start; i < end; i++ {
			line := fit(t.renderCells(rows[i], cols), innerW, false)
			style := t.styles.Row
			if i == sc.Position && focused {
				style = t.styles.Selected
			} else if i == sc.Position {
				style = t.styles.Header
			}
			lines = append(lines, style.Render(line))
		}
	}
	for len(lines) < innerH {
		lines = append(lines, strings.Repeat(" ", innerW))
	}
	lines = lines[:innerH]

	var b strings.Builder
	title = clip(title, innerW)
	b.WriteString(border.Render("╭"))
	b.WriteString(t.styles.Title.Render(title))
	b.WriteString(border.Render(strings.Repeat("─", innerW-displayWidth(title)) + "╮"))
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(border.Render("│"))
		b.WriteString(line)
		b.WriteString(border.Render("│"))
	}
	b.WriteString("\n")
	b.WriteString(border.Render("╰" + strings.Repeat("─", innerW) + "╯"))
	return b.String()
}

func (t *TextTable) specs() []colwidth.Spec {
	specs := make([]colwidth.Spec, len(t.columns))
	for i, c := range t.columns {
		specs[i] = c.Spec
	}
	return specs
}

func (t *TextTable) headers() Row {
	h := make(Row, len(t.columns))
	for i, c := range t.columns {
		h[i] = c.Header
	}
	return h
}

// renderCells lays out cells into their allocated widths, skipping hidden
// columns.
func (t *TextTable) renderCells(cells Row, widths []int) string {
	parts := make([]string, 0, len(widths))
	for i, w := range widths {
		if w <= 0 {
			continue
		}
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		parts = append(parts, fit(cell, w, t.columns[i].AlignRight))
	}
	return strings.Join(parts, strings.Repeat(" ", colwidth.Separator))
}
