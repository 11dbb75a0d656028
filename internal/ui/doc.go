// Package ui composes the dashboard from table panels with Bubble Tea.
//
// Core abstractions:
//   - DiskState, TempState: per-instance UI state keyed by widget instance id
//   - DiskTable, TempTable: panel adapters that forward input to a TextTable
//   - GridLayout: arranges panels in rows and assigns their bounds
//   - FocusManager: tracks and rotates focus across panels
//   - KeybindRegistry: application-level key bindings, filtered by AppMode
//   - AppModel: the root model; runs the layout pass and dispatches input
//
// Panels never hold their own UI state. Each panel's TextTable looks its state
// up in the registry by instance id, so the application owns the
// authoritative state independent of how often panels are rebuilt.
package ui
