package ui

import (
	"sysdash/internal/collect"
	"sysdash/internal/config"
)

// SnapshotMsg carries the result of one harvest.
type SnapshotMsg struct {
	Snapshot collect.Snapshot
	Err      error
}

// refreshMsg triggers the next harvest.
type refreshMsg struct{}

// ConfigReloadedMsg is sent when the config file changed and parsed cleanly.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg is sent when a changed config file failed to load.
type ConfigErrorMsg struct {
	Err error
}

// FocusNextMsg moves focus to the next panel (tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves focus to the previous panel (shift+tab).
type FocusPrevMsg struct{}

// ToggleExpandMsg switches between grid and expanded mode (e, esc).
type ToggleExpandMsg struct{}
