package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"sysdash/internal/collect"
	"sysdash/internal/widget"
	"sysdash/internal/widget/colwidth"
	"sysdash/internal/widget/scroll"
	"sysdash/internal/widget/texttable"
)

// DiskWidgetState is the UI state of one disk table instance.
type DiskWidgetState struct {
	ScrollState     scroll.State
	TableWidthState colwidth.State
}

// NewDiskWidgetState returns the initial state for a new disk table.
func NewDiskWidgetState() *DiskWidgetState {
	return &DiskWidgetState{}
}

// Clone implements widget.Cloner.
func (s DiskWidgetState) Clone() DiskWidgetState {
	s.TableWidthState = s.TableWidthState.Clone()
	return s
}

// DiskState maps disk widget instance ids to their UI state.
type DiskState = widget.Registry[DiskWidgetState]

// NewDiskState builds the registry from the per-instance states.
func NewDiskState(widgetStates map[uint64]*DiskWidgetState) *DiskState {
	return widget.NewRegistry(widgetStates)
}

// DiskTable is a table displaying disk data. It is a thin wrapper around a
// TextTable: every operation is forwarded unchanged.
type DiskTable struct {
	table  *texttable.TextTable
	bounds widget.Rect
}

var _ widget.Widget = (*DiskTable)(nil)

// NewDiskTable creates a DiskTable that takes ownership of table.
func NewDiskTable(table *texttable.TextTable) *DiskTable {
	return &DiskTable{
		table:  table,
		bounds: widget.Rect{},
	}
}

// HandleKeyEvent implements widget.Component.
func (d *DiskTable) HandleKeyEvent(event widget.KeyEvent) widget.EventResult {
	return d.table.HandleKeyEvent(event)
}

// HandleMouseEvent implements widget.Component.
func (d *DiskTable) HandleMouseEvent(event widget.MouseEvent) widget.EventResult {
	return d.table.HandleMouseEvent(event)
}

// Bounds implements widget.Component.
func (d *DiskTable) Bounds() widget.Rect {
	return d.bounds
}

// SetBounds implements widget.Component.
func (d *DiskTable) SetBounds(bounds widget.Rect) {
	d.bounds = bounds
}

// Draw implements widget.Widget.
func (d *DiskTable) Draw(focused bool) string {
	return d.table.Draw(d.bounds, focused)
}

var diskColumns = []texttable.Column{
	{Header: "Disk", Spec: colwidth.Spec{Min: 4, Max: 10}},
	{Header: "Mount", Spec: colwidth.Spec{Min: 5, Max: 16, Flex: true}},
	{Header: "Used", Spec: colwidth.Spec{Min: 8, Max: 10}, AlignRight: true},
	{Header: "Free", Spec: colwidth.Spec{Min: 8, Max: 10}, AlignRight: true},
	{Header: "Total", Spec: colwidth.Spec{Min: 8, Max: 10}, AlignRight: true},
	{Header: "Used%", Spec: colwidth.Spec{Min: 6}, AlignRight: true},
	{Header: "R/s", Spec: colwidth.Spec{Min: 10}, AlignRight: true},
	{Header: "W/s", Spec: colwidth.Spec{Min: 10}, AlignRight: true},
}

// diskRows formats disks as table rows.
func diskRows(disks []collect.Disk) []texttable.Row {
	rows := make([]texttable.Row, len(disks))
	for i, d := range disks {
		rows[i] = texttable.Row{
			d.Name,
			d.Mount,
			humanize.IBytes(d.Used),
			humanize.IBytes(d.Free),
			humanize.IBytes(d.Total),
			fmt.Sprintf("%.1f%%", d.UsedPercent()),
			formatRate(d.ReadRate, d.HasRate),
			formatRate(d.WriteRate, d.HasRate),
		}
	}
	return rows
}

func formatRate(bytesPerSec float64, ok bool) string {
	if !ok {
		return "N/A"
	}
	return humanize.IBytes(uint64(bytesPerSec)) + "/s"
}

// newDiskTextTable builds the table primitive for disk instance id. The
// table resolves its UI state through states on every event and draw.
func newDiskTextTable(states *DiskState, id uint64, data *dataStore, styles texttable.Styles) *texttable.TextTable {
	return texttable.New(texttable.Config{
		Title:   "Disks",
		Columns: diskColumns,
		Rows: func() []texttable.Row {
			return diskRows(data.snapshot().Disks)
		},
		State: stateSource(states, id, func(s *DiskWidgetState) (*scroll.State, *colwidth.State) {
			return &s.ScrollState, &s.TableWidthState
		}),
		Styles: &styles,
	})
}
