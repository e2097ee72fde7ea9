package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Engine owns one shooter simulation.
//
// A tick runs in a fixed order: resolve input and fire queued shots, advance
// entities and count escapes, resolve collisions, remove hit entities,
// settle health and score, then check for game over.
type Engine struct {
	cfg  config.ShooterConfig
	seed int64

	store   *EntityStore
	ledger  *Ledger
	input   InputTracker
	spawner *SpawnScheduler
	machine Machine

	tick     uint64
	recorder Recorder
}

// New creates an engine in the Playing phase at epoch 0.
func New(cfg config.ShooterConfig, seed int64) (*Engine, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return &Engine{
		cfg:     cfg,
		seed:    seed,
		store:   NewEntityStore(cfg),
		ledger:  NewLedger(cfg.Rules),
		spawner: NewSpawnScheduler(cfg, seed),
	}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.ShooterConfig { return e.cfg }

// Seed returns the spawn seed.
func (e *Engine) Seed() int64 { return e.seed }

// Phase returns the current game phase.
func (e *Engine) Phase() Phase { return e.machine.Phase() }

// Epoch returns the current restart generation.
func (e *Engine) Epoch() uint64 { return e.machine.Epoch() }

// SetRecorder installs an observer for dispatched commands. Nil disables recording.
func (e *Engine) SetRecorder(r Recorder) {
	e.recorder = r
}

// MovePlayerTo requests an absolute player x for the next tick.
func (e *Engine) MovePlayerTo(x float64) bool {
	return e.Dispatch(Command{Kind: CmdMoveTo, Value: x}).Applied
}

// MovePlayerBy requests a relative move for the next tick.
func (e *Engine) MovePlayerBy(dx float64) bool {
	return e.Dispatch(Command{Kind: CmdMoveBy, Value: dx}).Applied
}

// Press holds a movement direction.
func (e *Engine) Press(d Direction) bool {
	return e.Dispatch(Command{Kind: CmdPress, Value: float64(d)}).Applied
}

// Release lets go of a movement direction.
func (e *Engine) Release(d Direction) bool {
	return e.Dispatch(Command{Kind: CmdRelease, Value: float64(d)}).Applied
}

// Shoot queues one bullet for the next tick.
func (e *Engine) Shoot() bool {
	return e.Dispatch(Command{Kind: CmdShoot}).Applied
}

// Restart starts a new epoch after game over.
func (e *Engine) Restart() bool {
	return e.Dispatch(Command{Kind: CmdRestart}).Applied
}

// Tick advances the simulation by one step. Ticks from an older epoch or
// after game over change nothing.
func (e *Engine) Tick(epoch uint64) core.StepResult {
	return e.Dispatch(Command{Kind: CmdTick, Epoch: epoch})
}

// Spawn adds one enemy at a scheduled position. Returns false when the
// callback was stale or the game is over.
func (e *Engine) Spawn(epoch uint64) bool {
	return e.Dispatch(Command{Kind: CmdSpawn, Epoch: epoch}).Applied
}

// Dispatch applies one command and records it.
func (e *Engine) Dispatch(cmd Command) core.StepResult {
	if e.recorder != nil {
		e.recorder.Record(cmd)
	}

	var res core.StepResult
	switch cmd.Kind {
	case CmdTick:
		if e.machine.Accepts(cmd.Epoch) {
			res = e.step()
		}
	case CmdSpawn:
		if e.machine.Accepts(cmd.Epoch) {
			e.store.SpawnEnemy(e.spawner.Next())
			res.Applied = true
		}
	case CmdMoveTo, CmdMoveBy, CmdPress, CmdRelease, CmdShoot:
		res.Applied = e.applyInput(cmd)
	case CmdRestart:
		res.Applied = e.restart()
	}

	res.State = e.State()
	return res
}

func (e *Engine) applyInput(cmd Command) bool {
	if !e.machine.Playing() {
		return false
	}
	switch cmd.Kind {
	case CmdMoveTo:
		e.input.MoveTo(cmd.Value)
	case CmdMoveBy:
		e.input.MoveBy(cmd.Value)
	case CmdPress:
		e.input.Press(Direction(cmd.Value))
	case CmdRelease:
		e.input.Release(Direction(cmd.Value))
	case CmdShoot:
		e.input.Shoot()
	}
	return true
}

func (e *Engine) step() core.StepResult {
	intent := e.input.Resolve(e.store.Player().Body.X, e.cfg.Player.Speed)
	e.store.MovePlayerBy(intent.DeltaX)
	for range intent.Shots {
		e.store.SpawnBullet()
	}

	escaped := e.store.Advance()

	hits := Resolve(e.store.Player().Body, e.store.Enemies(), e.store.Bullets())
	e.store.ApplyRemovals(hits.EnemyRemovals(), hits.BulletsConsumed)

	e.ledger.Settle(TickDelta{
		Escapes:    escaped,
		PlayerHits: hits.PlayerHits(),
		Kills:      hits.KillCount,
	})
	ended := e.machine.Check(e.ledger.IsLethal())
	e.tick++

	return core.StepResult{
		Applied:   true,
		Escapes:   escaped,
		Kills:     hits.KillCount,
		PlayerHit: hits.PlayerHits() > 0,
		Ended:     ended,
	}
}

func (e *Engine) restart() bool {
	epoch, ok := e.machine.Restart()
	if !ok {
		return false
	}
	e.store.Reset()
	e.ledger.Reset()
	e.input.Reset()
	e.spawner.Reset(e.seed + int64(epoch))
	e.tick = 0
	return true
}

// State returns the platform-facing summary of the game.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:     e.ledger.Score(),
		Health:    e.ledger.Health(),
		MaxHealth: e.ledger.MaxHealth(),
		GameOver:  e.machine.Phase() == PhaseGameOver,
		Epoch:     e.machine.Epoch(),
		Tick:      e.tick,
	}
}

// Snapshot returns a copy of the world safe to hand to another goroutine.
func (e *Engine) Snapshot() Snapshot {
	enemies := e.store.Enemies()
	bullets := e.store.Bullets()

	snap := Snapshot{
		Width:     e.cfg.Playfield.Width,
		Height:    e.cfg.Playfield.Height,
		Player:    e.store.Player().Body,
		Enemies:   make([]EntityView, len(enemies)),
		Bullets:   make([]EntityView, len(bullets)),
		Health:    e.ledger.Health(),
		MaxHealth: e.ledger.MaxHealth(),
		Score:     e.ledger.Score(),
		Phase:     e.machine.Phase(),
		Epoch:     e.machine.Epoch(),
		Tick:      e.tick,
	}
	for i, en := range enemies {
		snap.Enemies[i] = EntityView{ID: en.ID, Body: en.Body}
	}
	for i, b := range bullets {
		snap.Bullets[i] = EntityView{ID: b.ID, Body: b.Body}
	}
	return snap
}
