package ui

import (
	"sysdash/internal/collect"
	"sysdash/internal/widget"
	"sysdash/internal/widget/colwidth"
	"sysdash/internal/widget/scroll"
	"sysdash/internal/widget/texttable"
)

// stateSource resolves instance id in reg on every call, so a table built
// before a registry change observes the change, and a table whose id was
// pruned sees absence instead of stale state.
func stateSource[S any](reg *widget.Registry[S], id uint64, fields func(*S) (*scroll.State, *colwidth.State)) texttable.StateSource {
	return func() (*scroll.State, *colwidth.State, bool) {
		s, ok := reg.GetMut(id)
		if !ok {
			return nil, nil, false
		}
		sc, w := fields(s)
		return sc, w, true
	}
}

// dataStore holds the latest harvested snapshot. Panels read it at draw time;
// only the update loop writes it.
type dataStore struct {
	snap     collect.Snapshot
	received bool
}

func (d *dataStore) snapshot() collect.Snapshot {
	return d.snap
}

func (d *dataStore) set(s collect.Snapshot) {
	d.snap = s
	d.received = true
}
