package widget

// IDAllocator hands out widget instance ids.
// Ids start at 1 and are never reused by the same allocator, so an id from a
// previous layout can never alias an instance in the current one.
type IDAllocator struct {
	last uint64
}

// Next returns a fresh id.
func (a *IDAllocator) Next() uint64 {
	a.last++
	return a.last
}
