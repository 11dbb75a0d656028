package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second, cfg.RefreshRate.Duration)
	assert.Equal(t, [][]string{{"disk", "disk"}, {"temp"}}, cfg.Grid())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
refresh_rate = "2s"
expanded = true
default_widget = "temp"

[log]
level = "debug"
file = "/tmp/sysdash.log"

[[row]]
widgets = ["disk"]

[[row]]
widgets = ["temp", "disk", "disk"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.RefreshRate.Duration)
	assert.True(t, cfg.Expanded)
	assert.Equal(t, "temp", cfg.DefaultWidget)
	assert.Equal(t, LogConfig{Level: "debug", File: "/tmp/sysdash.log"}, cfg.Log)
	assert.Equal(t, [][]string{{"disk"}, {"temp", "disk", "disk"}}, cfg.Grid())
}

func TestParse_FillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`expanded = false`))
	require.NoError(t, err)
	assert.Equal(t, Default().RefreshRate, cfg.RefreshRate)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, Default().Grid(), cfg.Grid())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad toml", `refresh_rate = `, "parsing config"},
		{"bad duration", `refresh_rate = "soon"`, "parsing config"},
		{"too fast", `refresh_rate = "10ms"`, "below minimum"},
		{"unknown widget", "[[row]]\nwidgets = [\"cpu\"]", `unknown widget "cpu"`},
		{"empty row", "[[row]]\nwidgets = []", "row 1 has no widgets"},
		{"unknown default", `default_widget = "net"`, `unknown default_widget "net"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGrid_IsACopy(t *testing.T) {
	cfg := Default()
	g := cfg.Grid()
	g[0][0] = "temp"
	assert.Equal(t, "disk", cfg.Rows[0].Widgets[0])
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, "/xdg/sysdash/config.toml", DefaultPath())
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, "/state/sysdash/sysdash.log", DefaultLogPath())
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[row]]\nwidgets = [\"disk\"]\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	errs := make(chan error, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) { changes <- c }, func(err error) { errs <- err })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("[[row]]\nwidgets = [\"temp\", \"temp\"]\n"), 0o644))

	select {
	case cfg := <-changes:
		assert.Equal(t, [][]string{{"temp", "temp"}}, cfg.Grid())
	case err := <-errs:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	// Invalid content surfaces through onError.
	require.NoError(t, os.WriteFile(path, []byte("[[row]]\nwidgets = [\"gpu\"]\n"), 0o644))
	select {
	case err := <-errs:
		assert.Contains(t, err.Error(), "gpu")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
