package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysdash/internal/config"
)

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	var opts options
	cmd := newRootCmd(&opts)
	require.NoError(t, cmd.ParseFlags([]string{"--rate", "2s", "--expanded"}))

	cfg := config.Default()
	cfg.Log.File = "/tmp/from-config.log"
	require.NoError(t, applyFlags(cmd, cfg, opts))

	assert.Equal(t, 2*time.Second, cfg.RefreshRate.Duration)
	assert.True(t, cfg.Expanded)
	assert.Equal(t, "/tmp/from-config.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestApplyFlags_RejectsTooFastRate(t *testing.T) {
	var opts options
	cmd := newRootCmd(&opts)
	require.NoError(t, cmd.ParseFlags([]string{"--rate", "10ms"}))

	err := applyFlags(cmd, config.Default(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd(&options{})
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestLogFileFlag_BareUsesDefaultPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/state")
	var opts options
	cmd := newRootCmd(&opts)
	require.NoError(t, cmd.ParseFlags([]string{"--log-file"}))

	cfg := config.Default()
	require.NoError(t, applyFlags(cmd, cfg, opts))
	assert.Equal(t, "/state/sysdash/sysdash.log", cfg.Log.File)

	var explicit options
	cmd = newRootCmd(&explicit)
	require.NoError(t, cmd.ParseFlags([]string{"--log-file=/tmp/x.log"}))
	assert.Equal(t, "/tmp/x.log", explicit.logFile)
}
