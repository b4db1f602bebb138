package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// FooterRows is the number of rows below the game used for help and status.
const FooterRows = 1

// statusSeconds is how long a status message replaces the help footer.
const statusSeconds = 2

// Exit tells the caller how a hosted game ended.
type Exit int

const (
	ExitQuit Exit = iota
	ExitBack
)

// Options configures a hosted game.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// ScreenshotDir receives ctrl+s captures. Empty disables screenshots.
	ScreenshotDir string
	// Clipboard also copies captures to the system clipboard.
	Clipboard bool
	// Embedded keeps the program running when the player goes back to the menu.
	Embedded bool
}

// DefaultScreenshotDir returns ~/.pong/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "screenshots")
}

type hotSeater interface {
	HotSeat() bool
}

// Model is the Bubble Tea model for running a pong game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	opts   Options
	logger *log.Logger

	keys  GameKeyMap
	help  help.Model
	input core.MultiInputFrame
	// held counts down the ticks until a synthesized key-up.
	held         map[PaddleKey]int
	releaseAfter int

	state       core.GameState
	status      string
	statusTicks int
	quitting    bool
	backToMenu  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-FooterRows, 1)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hotSeat := false
	if hs, ok := game.(hotSeater); ok {
		hotSeat = hs.HotSeat()
	}
	keys := NewGameKeyMap(hotSeat)
	keys.Screenshot.SetEnabled(opts.ScreenshotDir != "")

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:         game,
		screen:       core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:       cfg,
		opts:         opts,
		logger:       logger,
		keys:         keys,
		help:         h,
		input:        core.NewMultiInputFrame(),
		held:         make(map[PaddleKey]int),
		releaseAfter: max(cfg.TickRate/4, 1),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "variant", m.game.ID(), "seed", m.config.Seed)
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		if m.opts.Embedded {
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.state.GameOver {
			m.restart()
		}
		return m, nil

	case key.Matches(msg, m.keys.Serve):
		m.input.Press(core.Player1, core.ActionServe)
		return m, nil
	}

	if pk, ok := m.keys.Paddle(msg); ok {
		m.input.Press(pk.Player, pk.Action)
		m.held[pk] = m.releaseAfter
	}
	return m, nil
}

// handleResize adapts the running match to the new window.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w := max(msg.Width, 1)
	h := max(msg.Height-FooterRows, 1)

	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)
	m.help.Width = w

	if err := m.game.Resize(w, h); err != nil {
		m.logger.Warn("resize failed", "width", w, "height", h, "error", err)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || (m.backToMenu && m.opts.Embedded) {
		return m, nil
	}

	m.releaseHeld()

	result := m.game.Step(m.input)
	m.state = result.State
	if len(result.Events) > 0 {
		m.logger.Debug("tick", "variant", m.game.ID(), "events", result.Events)
	}

	if m.statusTicks > 0 {
		m.statusTicks--
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// releaseHeld emits key-ups for paddle keys that have not repeated lately.
// Terminals only report presses, so continuous movement relies on this.
func (m *Model) releaseHeld() {
	for pk, left := range m.held {
		if left > 1 {
			m.held[pk] = left - 1
			continue
		}
		frame := m.input.Player(pk.Player)
		frame.Release(pk.Action)
		m.input.SetPlayer(pk.Player, frame)
		delete(m.held, pk)
	}
}

// restart begins a fresh match with a new seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.input.Clear()
	clear(m.held)
	m.logger.Info("game restarted", "variant", m.game.ID(), "seed", m.config.Seed)
}

// saveScreenshot saves the current screen to a file and the clipboard.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)
	text := m.screen.String()

	path, err := writeScreenshot(m.opts.ScreenshotDir, m.game.ID(), text, time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)

	if m.opts.Clipboard {
		if err := clipboard.WriteAll(text); err != nil {
			m.logger.Debug("clipboard unavailable", "error", err)
			return
		}
		m.setStatus("saved " + path + " (copied)")
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTicks = statusSeconds * m.config.TickRate
}

// writeScreenshot stores text as <dir>/<id>_<timestamp>.txt.
func writeScreenshot(dir, id, text string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}
	name := fmt.Sprintf("%s_%s.txt", id, now.Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.statusTicks > 0 {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one game.
func Run(game registry.Game, opts Options) (Exit, error) {
	opts.Embedded = false
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return ExitQuit, err
	}
	if fm, ok := final.(Model); ok && fm.BackToMenu() {
		return ExitBack, nil
	}
	return ExitQuit, nil
}
