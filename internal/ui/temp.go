package ui

import (
	"fmt"

	"sysdash/internal/collect"
	"sysdash/internal/widget"
	"sysdash/internal/widget/colwidth"
	"sysdash/internal/widget/scroll"
	"sysdash/internal/widget/texttable"
)

// TempWidgetState is the UI state of one temperature table instance.
type TempWidgetState struct {
	ScrollState     scroll.State
	TableWidthState colwidth.State
}

// NewTempWidgetState returns the initial state for a new temperature table.
func NewTempWidgetState() *TempWidgetState {
	return &TempWidgetState{}
}

func (s TempWidgetState) Clone() TempWidgetState {
	s.TableWidthState = s.TableWidthState.Clone()
	return s
}

// TempState maps temperature widget instance ids to their UI state.
type TempState = widget.Registry[TempWidgetState]

// NewTempState builds the registry from the per-instance states.
func NewTempState(widgetStates map[uint64]*TempWidgetState) *TempState {
	return widget.NewRegistry(widgetStates)
}

// TempTable is a table displaying temperature sensors. Like DiskTable it only
// forwards to its TextTable.
type TempTable struct {
	table  *texttable.TextTable
	bounds widget.Rect
}

var _ widget.Widget = (*TempTable)(nil)

// NewTempTable creates a TempTable that takes ownership of table.
func NewTempTable(table *texttable.TextTable) *TempTable {
	return &TempTable{table: table}
}

func (t *TempTable) HandleKeyEvent(event widget.KeyEvent) widget.EventResult {
	return t.table.HandleKeyEvent(event)
}

func (t *TempTable) HandleMouseEvent(event widget.MouseEvent) widget.EventResult {
	return t.table.HandleMouseEvent(event)
}

func (t *TempTable) Bounds() widget.Rect {
	return t.bounds
}

func (t *TempTable) SetBounds(bounds widget.Rect) {
	t.bounds = bounds
}

func (t *TempTable) Draw(focused bool) string {
	return t.table.Draw(t.bounds, focused)
}

var tempColumns = []texttable.Column{
	{Header: "Sensor", Spec: colwidth.Spec{Min: 6, Max: 24, Flex: true}},
	{Header: "Temp", Spec: colwidth.Spec{Min: 8}, AlignRight: true},
}

func tempRows(temps []collect.Temp) []texttable.Row {
	rows := make([]texttable.Row, len(temps))
	for i, t := range temps {
		rows[i] = texttable.Row{t.Sensor, fmt.Sprintf("%.1f°C", t.Celsius)}
	}
	return rows
}

func newTempTextTable(states *TempState, id uint64, data *dataStore, styles texttable.Styles) *texttable.TextTable {
	return texttable.New(texttable.Config{
		Title:   "Temperatures",
		Columns: tempColumns,
		Rows: func() []texttable.Row {
			return tempRows(data.snapshot().Temps)
		},
		State: stateSource(states, id, func(s *TempWidgetState) (*scroll.State, *colwidth.State) {
			return &s.ScrollState, &s.TableWidthState
		}),
		Styles: &styles,
	})
}
