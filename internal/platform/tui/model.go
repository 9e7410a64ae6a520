package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-galaga/internal/core"
	"github.com/vovakirdan/tui-galaga/internal/registry"
	"github.com/vovakirdan/tui-galaga/internal/storage"
)

// DefaultHoldMS is how long a key press counts as held when no
// explicit hold time is configured.
const DefaultHoldMS = 150

// RunRecorder stores finished runs. *storage.Store satisfies it.
type RunRecorder interface {
	SaveRun(run storage.RunEntry) (int64, error)
}

// Options tune a Model beyond the runtime config.
type Options struct {
	Recorder RunRecorder
	Logger   *log.Logger
	HoldMS   int // Key hold window; 0 uses DefaultHoldMS

	// Renderer styles the output; nil uses the local terminal.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model that drives one game at a fixed tick rate.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	recorder RunRecorder
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *KeyState
	view     *ScreenRenderer

	tick      int
	gameState core.GameState
	runID     string
	recorded  bool // Whether the current run has been stored
	quitting  bool
}

// NewModel creates a model for game. Seed 0 is replaced with the clock.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	holdMS := opts.HoldMS
	if holdMS <= 0 {
		holdMS = DefaultHoldMS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		recorder: opts.Recorder,
		logger:   logger,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		held:     NewKeyState(cfg.FramesFor(holdMS)),
		view:     NewScreenRenderer(opts.Renderer),
		runID:    storage.NewRunID(),
	}
}

// The bottom row is kept for the help bar.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.recordRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}

	// Opposite directions cancel each other; the latest press wins.
	switch action {
	case core.ActionLeft:
		m.held.Release(core.ActionRight)
	case core.ActionRight:
		m.held.Release(core.ActionLeft)
	}
	m.held.Press(action, m.tick)
	return m, nil
}

// Positions are normalized, so a resize only changes the buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.held.Frame(m.tick))
	m.gameState = result.State
	m.tick++

	switch {
	case wasOver && !m.gameState.GameOver:
		// Restarted: the next finish is a new run.
		m.runID = storage.NewRunID()
		m.recorded = false
	case m.gameState.Victory:
		m.recordRun(storage.OutcomeVictory)
	case m.gameState.GameOver:
		m.recordRun(storage.OutcomeGameOver)
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the current run once. Runs without points are not kept.
func (m *Model) recordRun(outcome string) {
	if m.recorded || m.gameState.Score <= 0 {
		return
	}
	m.recorded = true
	if m.recorder == nil {
		return
	}

	_, err := m.recorder.SaveRun(storage.RunEntry{
		RunID:   m.runID,
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Level:   m.gameState.Level,
		Outcome: outcome,
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.logger.Info("run recorded", "run", m.runID, "score", m.gameState.Score, "outcome", outcome)
}

func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".galaga", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(helpColor))

// View renders the playfield and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return m.view.Render(m.screen) + "\n" + m.view.Help(m.help.View(m.keys))
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
