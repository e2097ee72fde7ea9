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

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Resizer is implemented by games that map screen coordinates to world
// coordinates and need to know the screen size without restarting.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a running game.
//
// Ticks and spawns are two self-rescheduling tea.Tick loops tagged with the
// game epoch. A handler that sees game over, or a message from an older
// epoch, does not reschedule, so both loops end with the run. Restart starts
// a fresh pair for the new epoch.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a model for a game that has already been Reset.
func NewModel(game registry.Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick and spawn loops.
func (m Model) Init() tea.Cmd {
	return m.startLoops()
}

func (m Model) startLoops() tea.Cmd {
	tick, spawn := m.game.Periods()
	epoch := m.gameState.Epoch
	return tea.Batch(tickCmd(tick, epoch), spawnCmd(spawn, epoch))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case SpawnMsg:
		return m.handleSpawn(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if m.gameState.GameOver {
			return m.restart()
		}

	case core.ActionNone:

	default:
		if !m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	}

	return m, nil
}

// handleMouse turns drags into pointer moves and left clicks into shots.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.inputFrame.SetPointer(msg.X)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionShoot)
		}
	}
	return m, nil
}

// handleResize processes window resize events without restarting the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.config)
	}
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Epoch != m.gameState.Epoch || m.gameState.GameOver {
		return m, nil
	}

	result := m.game.Step(msg.Epoch, m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if result.Ended {
		m.logger.Info("game over", "mode", m.game.ID(), "score", m.gameState.Score, "ticks", m.gameState.Tick)
		return m, nil
	}

	tick, _ := m.game.Periods()
	return m, tickCmd(tick, msg.Epoch)
}

// handleSpawn runs one spawn callback.
func (m Model) handleSpawn(msg SpawnMsg) (tea.Model, tea.Cmd) {
	if msg.Epoch != m.gameState.Epoch || m.gameState.GameOver {
		return m, nil
	}

	m.game.Spawn(msg.Epoch)

	_, spawn := m.game.Periods()
	return m, spawnCmd(spawn, msg.Epoch)
}

// restart begins a new epoch and starts fresh timer loops for it.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("restart failed", "mode", m.game.ID(), "err", err)
		return m, nil
	}
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.logger.Info("game restarted", "mode", m.game.ID(), "epoch", m.gameState.Epoch)
	return m, m.startLoops()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".shooter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last known game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game and returns the final state.
func Run(game registry.Game, logger *log.Logger, cfg core.RuntimeConfig) (core.GameState, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := game.Reset(cfg); err != nil {
		return core.GameState{}, err
	}

	model := NewModel(game, logger, cfg)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
