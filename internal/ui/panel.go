package ui

import (
	"fmt"

	"sysdash/internal/config"
	"sysdash/internal/widget"
	"sysdash/internal/widget/texttable"
)

// PanelKind names a panel type as written in the layout config.
type PanelKind string

const (
	KindDisk PanelKind = config.WidgetDisk
	KindTemp PanelKind = config.WidgetTemp
)

// Panel is one widget instance placed in the layout.
type Panel struct {
	ID     uint64
	Kind   PanelKind
	Widget widget.Widget
}

// panelFactory creates panels, assigning each a fresh instance id and
// registering its initial state.
type panelFactory struct {
	ids    *widget.IDAllocator
	disk   *DiskState
	temp   *TempState
	data   *dataStore
	styles texttable.Styles
}

func (f *panelFactory) newPanel(kind PanelKind) (Panel, error) {
	id := f.ids.Next()
	switch kind {
	case KindDisk:
		f.disk.Insert(id, NewDiskWidgetState())
		return Panel{ID: id, Kind: kind, Widget: NewDiskTable(newDiskTextTable(f.disk, id, f.data, f.styles))}, nil
	case KindTemp:
		f.temp.Insert(id, NewTempWidgetState())
		return Panel{ID: id, Kind: kind, Widget: NewTempTable(newTempTextTable(f.temp, id, f.data, f.styles))}, nil
	default:
		return Panel{}, fmt.Errorf("unknown panel kind %q", kind)
	}
}

// build lays out grid with freshly allocated ids, then prunes every state
// entry that does not belong to the new layout. Unknown kinds fail before any
// id is allocated, leaving the registries untouched.
func (f *panelFactory) build(grid [][]string) (*GridLayout, error) {
	for _, kinds := range grid {
		for _, k := range kinds {
			if !knownKind(PanelKind(k)) {
				return nil, fmt.Errorf("unknown panel kind %q", k)
			}
		}
	}

	rows := make([][]Panel, 0, len(grid))
	var diskIDs, tempIDs []uint64
	for _, kinds := range grid {
		row := make([]Panel, 0, len(kinds))
		for _, k := range kinds {
			p, err := f.newPanel(PanelKind(k))
			if err != nil {
				return nil, err
			}
			switch p.Kind {
			case KindDisk:
				diskIDs = append(diskIDs, p.ID)
			case KindTemp:
				tempIDs = append(tempIDs, p.ID)
			}
			row = append(row, p)
		}
		rows = append(rows, row)
	}
	f.disk.Retain(diskIDs)
	f.temp.Retain(tempIDs)
	return NewGridLayout(rows), nil
}

func knownKind(k PanelKind) bool {
	return k == KindDisk || k == KindTemp
}
