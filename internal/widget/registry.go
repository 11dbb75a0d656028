package widget

import "sort"

// Registry maps widget instance ids to per-instance UI state.
//
// Lookups for unregistered ids report absence; the registry never creates
// entries on demand. Entries are held by pointer so GetMut hands out stable
// storage that later lookups observe. Not safe for concurrent use: the
// application touches it only from its update loop.
type Registry[S any] struct {
	states map[uint64]*S
}

// NewRegistry builds a registry from initial. The map is adopted as-is;
// nil yields an empty registry.
func NewRegistry[S any](initial map[uint64]*S) *Registry[S] {
	if initial == nil {
		initial = make(map[uint64]*S)
	}
	return &Registry[S]{states: initial}
}

// Cloner is implemented by state types holding slices or maps, so Get can
// hand out a copy that shares no memory with the registry.
type Cloner[S any] interface {
	Clone() S
}

// Get returns a copy of the state for id. States implementing Cloner are
// deep-copied; otherwise the copy is shallow.
func (r *Registry[S]) Get(id uint64) (S, bool) {
	s, ok := r.states[id]
	if !ok || s == nil {
		var zero S
		return zero, false
	}
	if c, ok := any(*s).(Cloner[S]); ok {
		return c.Clone(), true
	}
	return *s, true
}

// GetMut returns the state for id for in-place mutation.
func (r *Registry[S]) GetMut(id uint64) (*S, bool) {
	s, ok := r.states[id]
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}

// Insert registers state under id, replacing any existing entry.
func (r *Registry[S]) Insert(id uint64, state *S) {
	r.states[id] = state
}

// Retain drops every entry whose id is not in ids.
// Returns the number of entries removed.
func (r *Registry[S]) Retain(ids []uint64) int {
	keep := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	removed := 0
	for id := range r.states {
		if _, ok := keep[id]; !ok {
			delete(r.states, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of registered ids.
func (r *Registry[S]) Len() int {
	return len(r.states)
}

// IDs returns the registered ids in ascending order.
func (r *Registry[S]) IDs() []uint64 {
	ids := make([]uint64, 0, len(r.states))
	for id := range r.states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
