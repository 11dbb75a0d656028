package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sysdash/internal/collect"
	"sysdash/internal/config"
	"sysdash/internal/logger"
	"sysdash/internal/widget"
	"sysdash/internal/widget/texttable"
)

// footerHeight is the number of lines below the panels.
const footerHeight = 1

// harvestTimeout bounds one collection pass.
const harvestTimeout = 5 * time.Second

// AppModel is the root model. It owns the panel state registries, runs the
// layout pass, and routes input: keys to the focused panel, mouse events to
// the panel under the cursor.
type AppModel struct {
	Mode      AppMode
	Layout    *GridLayout
	Focus     *FocusManager
	Disk      *DiskState
	Temp      *TempState
	Keys      *KeybindRegistry
	Harvester collect.Harvester
	Rate      time.Duration

	width, height int
	defaultKind   PanelKind
	factory       *panelFactory
	data          *dataStore
	spinner       spinner.Model
	loading       bool
	lastErr       error
	logCfg        config.LogConfig
	log           *slog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model for cfg, harvesting with h.
func NewAppModel(cfg *config.Config, h collect.Harvester) (*AppModel, error) {
	data := &dataStore{}
	disk := NewDiskState(nil)
	temp := NewTempState(nil)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	m := &AppModel{
		Mode:      ModeGrid,
		Focus:     &FocusManager{},
		Disk:      disk,
		Temp:      temp,
		Keys:      newAppKeybinds(),
		Harvester: h,
		Rate:      cfg.RefreshRate.Duration,
		factory: &panelFactory{
			ids:    &widget.IDAllocator{},
			disk:   disk,
			temp:   temp,
			data:   data,
			styles: TableStyles(),
		},
		data:    data,
		spinner: s,
		loading: true,
		logCfg:  cfg.Log,
		log:     logger.For("ui"),
	}
	if err := m.Reload(cfg); err != nil {
		return nil, err
	}
	if cfg.Expanded {
		m.Mode = ModeExpanded
	}
	return m, nil
}

func newAppKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("tab", func() tea.Msg { return FocusNextMsg{} }, "next")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return FocusPrevMsg{} }, "prev")
	reg.BindWithDesc("e", func() tea.Msg { return ToggleExpandMsg{} }, "expand")
	reg.BindWithDescForMode("esc", func() tea.Msg { return ToggleExpandMsg{} }, "collapse", []AppMode{ModeExpanded})
	return reg
}

// Reload rebuilds the layout for cfg. Every panel gets a fresh instance id;
// state belonging to the previous layout is pruned from the registries.
func (m *AppModel) Reload(cfg *config.Config) error {
	layout, err := m.factory.build(cfg.Grid())
	if err != nil {
		return err
	}
	m.Layout = layout
	m.Rate = cfg.RefreshRate.Duration
	m.defaultKind = PanelKind(cfg.DefaultWidget)

	prefer := uint64(0)
	if p, ok := layout.FirstOfKind(m.defaultKind); ok {
		prefer = p.ID
	}
	m.Focus.Reset(layout.FocusOrder(), prefer)
	m.arrange()
	m.log.Debug("layout rebuilt",
		"panels", len(layout.Panels()),
		"disk_states", m.Disk.Len(),
		"temp_states", m.Temp.Len(),
	)
	return nil
}

// clampScroll pulls every panel's selection back inside the current data,
// which may have fewer rows than the previous snapshot.
func (m *AppModel) clampScroll() {
	snap := m.data.snapshot()
	for _, id := range m.Disk.IDs() {
		if s, ok := m.Disk.GetMut(id); ok {
			s.ScrollState.Clamp(len(snap.Disks))
		}
	}
	for _, id := range m.Temp.IDs() {
		if s, ok := m.Temp.GetMut(id); ok {
			s.ScrollState.Clamp(len(snap.Temps))
		}
	}
}

// reloadLogger re-initialises logging when the [log] section changed.
func (m *AppModel) reloadLogger(cfg config.LogConfig) {
	if cfg == m.logCfg {
		return
	}
	if err := logger.Init(logger.Config{Level: cfg.Level, File: cfg.File}); err != nil {
		m.log.Warn("log reconfigure failed", "err", err)
		return
	}
	m.logCfg = cfg
	m.log = logger.For("ui")
	m.log.Info("logging reconfigured", "level", cfg.Level, "file", cfg.File)
}

// arrange runs the layout pass for the current window size and mode.
func (m *AppModel) arrange() {
	if m.Layout == nil {
		return
	}
	area := widget.Rect{Width: m.width, Height: max(m.height-footerHeight, 0)}
	expanded := uint64(0)
	if m.Mode == ModeExpanded {
		expanded = m.Focus.Current
	}
	m.Layout.Arrange(area, expanded)
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

func (m *AppModel) harvest() tea.Cmd {
	h := m.Harvester
	if h == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), harvestTimeout)
		defer cancel()
		snap, err := h.Harvest(ctx)
		return SnapshotMsg{Snapshot: snap, Err: err}
	}
}

func (m *AppModel) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.Rate, func(time.Time) tea.Msg { return refreshMsg{} })
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.harvest())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.arrange()
		return a, nil
	case SnapshotMsg:
		if msg.Err != nil {
			a.lastErr = msg.Err
			a.log.Warn("harvest failed", "err", msg.Err)
		} else {
			a.data.set(msg.Snapshot)
			a.clampScroll()
			a.loading = false
			a.lastErr = nil
		}
		return a, a.scheduleRefresh()
	case refreshMsg:
		return a, a.harvest()
	case ConfigReloadedMsg:
		a.reloadLogger(msg.Config.Log)
		if err := a.Reload(msg.Config); err != nil {
			a.lastErr = err
			a.log.Warn("config reload failed", "err", err)
		} else {
			a.log.Info("config reloaded")
		}
		return a, nil
	case ConfigErrorMsg:
		a.lastErr = msg.Err
		a.log.Warn("config error", "err", msg.Err)
		return a, nil
	case FocusNextMsg:
		a.Focus.Next()
		a.arrange()
		return a, nil
	case FocusPrevMsg:
		a.Focus.Prev()
		a.arrange()
		return a, nil
	case ToggleExpandMsg:
		if a.Mode == ModeExpanded {
			a.Mode = ModeGrid
		} else {
			a.Mode = ModeExpanded
		}
		a.arrange()
		return a, nil
	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		if consumed, cmd := a.Keys.Handle(msg, a.Mode); consumed {
			return a, cmd
		}
		return a, a.dispatchKey(msg)
	case tea.MouseMsg:
		return a, a.dispatchMouse(msg)
	}
	return a, nil
}

// dispatchKey forwards a key event to the focused panel.
func (m *AppModel) dispatchKey(ev widget.KeyEvent) tea.Cmd {
	p, ok := m.Layout.Find(m.Focus.Current)
	if !ok {
		return nil
	}
	return resultCmd(p.Widget.HandleKeyEvent(ev))
}

// dispatchMouse forwards a mouse event to the panel under the cursor. A
// button press also moves focus there.
func (m *AppModel) dispatchMouse(ev widget.MouseEvent) tea.Cmd {
	p, ok := m.Layout.PanelAt(ev.X, ev.Y)
	if !ok {
		return nil
	}
	if ev.Action == tea.MouseActionPress && !tea.MouseEvent(ev).IsWheel() {
		m.Focus.SetFocus(p.ID)
	}
	return resultCmd(p.Widget.HandleMouseEvent(ev))
}

func resultCmd(res widget.EventResult) tea.Cmd {
	if res == widget.Quit {
		return tea.Quit
	}
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}
	body := a.Layout.Render(a.Focus.Current)
	return lipgloss.JoinVertical(lipgloss.Left, body, a.footer())
}

func (m *AppModel) footer() string {
	switch {
	case m.lastErr != nil:
		return Styles.Error.MaxWidth(m.width).Render("error: " + m.lastErr.Error())
	case m.loading:
		return m.spinner.View() + Styles.Muted.Render(" collecting…")
	}
	return RenderKeybindHelp(m.Keys, m.Mode, texttable.DefaultKeyMap().ShortHelp(), m.width)
}
