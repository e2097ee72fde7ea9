package bot

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/engine"
)

func enemyAt(id engine.EntityID, x, y float64) engine.EntityView {
	return engine.EntityView{ID: id, Body: core.NewRect(x, y, 40, 40)}
}

func TestDecideNoEnemiesHolds(t *testing.T) {
	snap := engine.Snapshot{Player: core.NewRect(100.0, 700, 50, 50)}
	d := Decide(snap)
	require.Equal(t, 100.0, d.MoveTo)
	require.False(t, d.Fire)
}

func TestDecideTargetsLowestEnemy(t *testing.T) {
	snap := engine.Snapshot{
		Player: core.NewRect(0.0, 700, 50, 50),
		Enemies: []engine.EntityView{
			enemyAt(1, 300, 100),
			enemyAt(2, 200, 400),
			enemyAt(3, 20, 50),
		},
	}
	d := Decide(snap)
	// Enemy 2 center is 220, ship centers on it.
	require.Equal(t, 195.0, d.MoveTo)
	require.False(t, d.Fire, "ship is not under the target yet")
}

func TestDecideFiresWhenAligned(t *testing.T) {
	snap := engine.Snapshot{
		Player:  core.NewRect(185.0, 700, 50, 50),
		Enemies: []engine.EntityView{enemyAt(1, 200, 400)},
	}
	require.True(t, Decide(snap).Fire)
}

func TestStatsBestScore(t *testing.T) {
	s := Stats{Runs: []Run{{Score: 10}, {Score: 40}, {Score: 20}}}
	require.Equal(t, 40, s.BestScore())
	require.Zero(t, Stats{}.BestScore())
}

type session struct {
	t      *testing.T
	cfg    config.ShooterConfig
	clock  *engine.ManualClock
	runner *engine.Runner
	cancel context.CancelFunc
	stats  chan Stats
}

func startSession(t *testing.T, cfg config.ShooterConfig, opts ...Option) *session {
	t.Helper()
	eng, err := engine.New(cfg, 7)
	require.NoError(t, err)

	clock := engine.NewManualClock(time.Unix(0, 0))
	runner := engine.NewRunner(eng, engine.WithClock(clock))
	ctx, cancel := context.WithCancel(context.Background())

	s := &session{t: t, cfg: cfg, clock: clock, runner: runner, cancel: cancel, stats: make(chan Stats, 1)}
	b := New(runner, opts...)

	go func() { _ = runner.Run(ctx) }()
	go func() {
		st, _ := b.Play(ctx)
		s.stats <- st
	}()
	t.Cleanup(cancel)

	s.sync()
	return s
}

func (s *session) sync() {
	s.t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(s.t, s.runner.Do(ctx, func(*engine.Engine) {}))
}

func (s *session) snapshot() engine.Snapshot {
	s.t.Helper()
	var snap engine.Snapshot
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(s.t, s.runner.Do(ctx, func(e *engine.Engine) { snap = e.Snapshot() }))
	return snap
}

func (s *session) stop() Stats {
	s.t.Helper()
	s.cancel()
	select {
	case st := <-s.stats:
		return st
	case <-time.After(2 * time.Second):
		s.t.Fatal("bot did not stop")
		return Stats{}
	}
}

func TestBotTracksEnemy(t *testing.T) {
	s := startSession(t, config.DefaultShooterConfig())

	s.clock.Fire(s.cfg.Timing.SpawnPeriod)
	snap := s.snapshot()
	require.Len(t, snap.Enemies, 1)

	want := core.Clamp(Decide(snap).MoveTo, 0, s.cfg.PlayerMaxX())
	require.Eventually(t, func() bool {
		s.clock.Fire(s.cfg.Timing.TickPeriod)
		return s.snapshot().Player.X == want
	}, 2*time.Second, 5*time.Millisecond)

	st := s.stop()
	require.Positive(t, st.Decisions)
}

func TestBotRestartsAfterGameOver(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Rules.MaxHealth = 1
	cfg.Rules.EscapePenalty = 1
	cfg.Enemy.Speed = 900

	var ended atomic.Int32
	s := startSession(t, cfg, WithRunEnd(func(Run) { ended.Add(1) }))

	s.clock.Fire(cfg.Timing.SpawnPeriod)
	s.clock.Fire(cfg.Timing.TickPeriod)

	require.Eventually(t, func() bool {
		snap := s.snapshot()
		return snap.Epoch == 1 && !snap.GameOver()
	}, 2*time.Second, 5*time.Millisecond)

	st := s.stop()
	require.Len(t, st.Runs, 1)
	require.Equal(t, uint64(0), st.Runs[0].Epoch)
	require.EqualValues(t, 1, ended.Load())
}
