// Package shooter adapts the shooter engine to the arcade platform.
// The engine works in playfield units; this package maps terminal input
// onto engine operations and scales the playfield onto the screen.
package shooter

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/engine"
)

// KeyNudgeSteps is how many player speed steps one Left or Right key press moves.
const KeyNudgeSteps = 3

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	preset  config.Preset
	runtime core.RuntimeConfig
	cfg     config.ShooterConfig
	eng     *engine.Engine

	record  bool
	journal *engine.Journal
}

// New creates a shooter with the configured rules.
func New() *Game {
	return &Game{preset: config.PresetStandard}
}

// NewClassic creates a shooter where any contact ends the run.
func NewClassic() *Game {
	return &Game{preset: config.PresetClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.preset == config.PresetClassic {
		return ModeClassic
	}
	return ModeStandard
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.preset == config.PresetClassic {
		return "Shooter (Classic)"
	}
	return "Shooter"
}

// Reset creates the engine on first use and restarts it after game over.
// Calls while a run is in progress only update the screen size.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	g.runtime = runtime

	if g.eng != nil {
		if g.eng.Phase() == engine.PhaseGameOver {
			g.eng.Restart()
		}
		return nil
	}

	cfg, err := ConfigFor(g.ID(), configPath)
	if err != nil {
		return err
	}
	eng, err := engine.New(cfg, runtime.Seed)
	if err != nil {
		return fmt.Errorf("shooter: %w", err)
	}

	g.cfg = cfg
	g.eng = eng
	if g.record {
		g.attachJournal()
	}
	return nil
}

// Resize updates the screen size used to map pointer columns.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
}

// EnableRecording records every engine command from now on.
func (g *Game) EnableRecording() {
	g.record = true
	if g.eng != nil && g.journal == nil {
		g.attachJournal()
	}
}

func (g *Game) attachJournal() {
	g.journal = engine.NewJournal()
	g.eng.SetRecorder(g.journal)
}

// Journal returns the recorded commands, or nil when recording is off.
func (g *Game) Journal() *engine.Journal {
	return g.journal
}

// Engine returns the underlying engine, or nil before the first Reset.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Step applies the frame's input and advances one tick.
func (g *Game) Step(epoch uint64, in core.InputFrame) core.StepResult {
	if g.eng == nil {
		return core.StepResult{}
	}

	if in.HasPointer {
		g.eng.MovePlayerTo(g.columnToX(in.PointerX))
	}
	if n := in.Count(core.ActionRight) - in.Count(core.ActionLeft); n != 0 {
		g.eng.MovePlayerBy(float64(n) * g.cfg.Player.Speed * KeyNudgeSteps)
	}
	for range in.Count(core.ActionShoot) {
		g.eng.Shoot()
	}

	return g.eng.Tick(epoch)
}

// Spawn runs one spawn timer callback.
func (g *Game) Spawn(epoch uint64) bool {
	if g.eng == nil {
		return false
	}
	return g.eng.Spawn(epoch)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return g.eng.State()
}

// Periods returns the tick and spawn intervals.
func (g *Game) Periods() (tick, spawn time.Duration) {
	return g.cfg.Timing.TickPeriod, g.cfg.Timing.SpawnPeriod
}

// columnToX maps a screen column to the player x that centers the ship on it.
func (g *Game) columnToX(col int) float64 {
	if g.runtime.ScreenW <= 0 {
		return 0
	}
	center := (float64(col) + 0.5) / float64(g.runtime.ScreenW) * g.cfg.Playfield.Width
	return center - g.cfg.Player.Width/2
}
