// Package bot plays the shooter headlessly through an engine.Runner.
// It is used by the sim command to exercise long unattended runs.
package bot

import (
	"context"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter/engine"
)

// Decision is what the bot does on one tick.
type Decision struct {
	MoveTo float64
	Fire   bool
}

// Decide aims at the lowest enemy and fires when the ship is under it.
// With no enemies the ship holds its position.
func Decide(snap engine.Snapshot) Decision {
	d := Decision{MoveTo: snap.Player.X}

	var target *engine.EntityView
	for i := range snap.Enemies {
		if target == nil || snap.Enemies[i].Body.Y > target.Body.Y {
			target = &snap.Enemies[i]
		}
	}
	if target == nil {
		return d
	}

	ex, _ := target.Body.Center()
	px, _ := snap.Player.Center()
	d.MoveTo = ex - snap.Player.W/2
	d.Fire = math.Abs(ex-px) <= target.Body.W/2
	return d
}

// Run is one finished run.
type Run struct {
	Epoch uint64
	Score int
	Ticks uint64
}

// Stats summarizes a bot session.
type Stats struct {
	Runs      []Run
	Decisions int
	Shots     int
}

// BestScore returns the highest score over all finished runs.
func (s Stats) BestScore() int {
	best := 0
	for _, r := range s.Runs {
		best = max(best, r.Score)
	}
	return best
}

// Option configures a Bot.
type Option func(*Bot)

// WithLogger sets the logger for run results.
func WithLogger(l *log.Logger) Option {
	return func(b *Bot) { b.logger = l }
}

// WithRunEnd registers a callback for each finished run.
func WithRunEnd(fn func(Run)) Option {
	return func(b *Bot) { b.onRunEnd = fn }
}

// Bot drives a Runner from its snapshot stream.
type Bot struct {
	runner   *engine.Runner
	logger   *log.Logger
	onRunEnd func(Run)
}

// New creates a bot for runner.
func New(runner *engine.Runner, opts ...Option) *Bot {
	b := &Bot{runner: runner, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Play reacts to snapshots until ctx is cancelled or the runner stops.
// It decides once per tick and restarts after every game over.
func (b *Bot) Play(ctx context.Context) (Stats, error) {
	sub := b.runner.Subscribe(1)
	defer sub.Close()

	var stats Stats
	var decided bool
	var lastEpoch, lastTick uint64
	var ended bool
	var endedEpoch uint64

	for {
		select {
		case <-ctx.Done():
			return stats, nil
		case <-sub.Done():
			return stats, nil

		case snap := <-sub.Snapshots():
			if snap.GameOver() {
				if ended && endedEpoch == snap.Epoch {
					continue
				}
				ended, endedEpoch = true, snap.Epoch
				run := Run{Epoch: snap.Epoch, Score: snap.Score, Ticks: snap.Tick}
				stats.Runs = append(stats.Runs, run)
				b.logger.Info("run finished", "epoch", run.Epoch, "score", run.Score, "ticks", run.Ticks)
				if b.onRunEnd != nil {
					b.onRunEnd(run)
				}
				b.runner.Restart()
				continue
			}

			if decided && snap.Epoch == lastEpoch && snap.Tick == lastTick {
				continue
			}
			decided, lastEpoch, lastTick = true, snap.Epoch, snap.Tick

			d := Decide(snap)
			stats.Decisions++
			if d.MoveTo != snap.Player.X {
				b.runner.MovePlayerTo(d.MoveTo)
			}
			if d.Fire {
				stats.Shots++
				b.runner.Shoot()
			}
		}
	}
}
