package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/qix-arcade/internal/core"
	"github.com/vovakirdan/qix-arcade/internal/registry"
	"github.com/vovakirdan/qix-arcade/internal/storage"
)

// sessionReporter is implemented by games that can summarize a session for
// the session log.
type sessionReporter interface {
	SessionStats() core.SessionStats
}

// Options configure a play Model.
type Options struct {
	Store      *storage.Store // nil disables the session log
	Logger     *log.Logger    // nil discards log output
	Player     string         // recorded with each session
	HoldWindow time.Duration  // zero uses DefaultHoldWindow
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	player   string
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	lastTick time.Time
	lastMode string
	started  time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	m := Model{
		game:   game,
		store:  opts.Store,
		logger: logger.With("game", game.ID(), "player", player),
		player: player,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   NewHeldKeys(opts.HoldWindow),
	}
	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	m.help.Width = cfg.ScreenW
	m.fitScreen()

	// Reset here rather than in Init: Init has a value receiver and its
	// changes to the model would be lost.
	m.startSession()
	return m
}

// fitScreen sizes the game screen to the rows left above the help footer.
func (m *Model) fitScreen() {
	footer := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-footer, 1))
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.endSession("quit")
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(action, time.Now())
	return m, nil
}

// handleResize processes window resize events. The simulation works in
// field units, so a resize only changes the screen buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.held.Frame(now)
	dt := frameDelta(m.lastTick, now, m.config.TickSeconds())
	m.lastTick = now

	if frame.Has(core.ActionRestart) {
		m.endSession("restart")
		m.config.Seed = time.Now().UnixNano()
		m.startSession()
		return m, tickCmd(m.config.TickRate)
	}

	wasPaused := m.game.State().Paused
	result := m.game.Step(frame, dt)
	if result.State.Paused != wasPaused {
		m.logger.Debug("pause toggled", "paused", result.State.Paused)
	}
	m.logModeChange()

	return m, tickCmd(m.config.TickRate)
}

// startSession resets the game and clears per-session bookkeeping.
func (m *Model) startSession() {
	m.game.Reset(m.config)
	m.held.Release()
	m.lastTick = time.Time{}
	m.started = time.Now()
	m.lastMode = ""
	if r, ok := m.game.(sessionReporter); ok {
		m.lastMode = r.SessionStats().Mode
	}
	m.logger.Debug("session started", "seed", m.config.Seed, "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
}

// endSession logs the session and records it in the session log.
func (m *Model) endSession(reason string) {
	r, ok := m.game.(sessionReporter)
	if !ok {
		m.logger.Debug("session ended", "reason", reason, "score", m.game.State().Score)
		return
	}
	stats := r.SessionStats()
	m.logger.Debug("session ended",
		"reason", reason,
		"ticks", stats.Ticks,
		"distance", fmt.Sprintf("%.3f", stats.Distance),
		"mode", stats.Mode,
		"wall", time.Since(m.started).Round(time.Millisecond),
	)
	if m.store == nil || stats.Ticks == 0 {
		return
	}
	_, err := m.store.SaveSession(storage.Session{
		GameID:    m.game.ID(),
		Player:    m.player,
		Ticks:     stats.Ticks,
		Distance:  stats.Distance,
		Score:     m.game.State().Score,
		FinalMode: stats.Mode,
		Duration:  stats.Elapsed,
	})
	if err != nil {
		m.logger.Warn("could not save session", "error", err)
	}
}

func (m *Model) logModeChange() {
	r, ok := m.game.(sessionReporter)
	if !ok {
		return
	}
	mode := r.SessionStats().Mode
	if mode != m.lastMode {
		m.logger.Debug("mode changed", "from", m.lastMode, "to", mode)
		m.lastMode = mode
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	// Interrupted programs exit without a quit key; still log the session.
	if fm, ok := finalModel.(Model); ok && !fm.quitting {
		fm.endSession("interrupted")
	}
	return nil
}
