package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sysdash/internal/collect"
	"sysdash/internal/config"
	"sysdash/internal/logger"
	"sysdash/internal/telemetry"
	"sysdash/internal/ui"
)

type options struct {
	configPath string
	rate       time.Duration
	logFile    string
	logLevel   string
	expanded   bool
}

func main() {
	var opts options
	if err := newRootCmd(&opts).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sysdash",
		Short: "Terminal dashboard for disk usage and temperatures",
		Long: `sysdash shows mounted disks and temperature sensors in a grid of
scrollable tables. The layout is read from a TOML file and reloaded when
the file changes.

Keys:
  tab / shift+tab   move focus between panels
  j/k, pgup/pgdn    scroll the focused table
  e / esc           expand the focused panel / return to the grid
  q                 quit`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, *opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/sysdash/config.toml)")
	f.DurationVar(&opts.rate, "rate", 0, "refresh rate, overrides refresh_rate")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to `path`; pass as --log-file=path, bare --log-file uses $XDG_STATE_HOME/sysdash/sysdash.log")
	f.Lookup("log-file").NoOptDefVal = config.DefaultLogPath()
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&opts.expanded, "expanded", false, "start with the default panel expanded")
	return cmd
}

// applyFlags overrides cfg with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts options) error {
	flags := cmd.Flags()
	if flags.Changed("rate") {
		cfg.RefreshRate = config.Duration{Duration: opts.rate}
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("expanded") {
		cfg.Expanded = opts.expanded
	}
	return cfg.Validate()
}

func run(cmd *cobra.Command, opts options) error {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg, opts); err != nil {
		return err
	}

	if err := logger.Init(logger.Config{Level: cfg.Log.Level, File: cfg.Log.File}); err != nil {
		return err
	}
	defer logger.Close()
	log := logger.For("main")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	tp, err := telemetry.Setup(ctx)
	if err != nil {
		log.Warn("tracing disabled", "err", err)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
		defer done()
		_ = tp.Shutdown(shutdownCtx)
	}()

	model, err := ui.NewAppModel(cfg, collect.New())
	if err != nil {
		return err
	}
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())

	go func() {
		err := config.Watch(ctx, path,
			func(c *config.Config) {
				// Flags keep precedence over the file.
				if err := applyFlags(cmd, c, opts); err != nil {
					p.Send(ui.ConfigErrorMsg{Err: err})
					return
				}
				p.Send(ui.ConfigReloadedMsg{Config: c})
			},
			func(err error) { p.Send(ui.ConfigErrorMsg{Err: err}) },
		)
		if err != nil {
			log.Warn("config watch stopped", "path", path, "err", err)
		}
	}()

	log.Info("starting", "config", path, "rate", cfg.RefreshRate.Duration, "tracing", tp.Enabled())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
