// Package widget provides the primitives shared by every dashboard panel.
//
// Core abstractions:
//   - Rect: screen-space rectangle assigned by the layout pass
//   - Component: receives key/mouse events and carries bounds
//   - Widget: a Component that renders as a top-level dashboard panel
//   - Registry: per-instance UI state keyed by widget instance id
//   - IDAllocator: hands out instance ids that are never reused
package widget
