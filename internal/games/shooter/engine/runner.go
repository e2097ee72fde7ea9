package engine

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// ErrRunnerStopped is returned by Do once the runner has exited.
var ErrRunnerStopped = errors.New("engine: runner stopped")

const defaultCommandBuffer = 64

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithClock replaces the wall clock.
func WithClock(c Clock) RunnerOption {
	return func(r *Runner) { r.clock = c }
}

// WithLogger sets the lifecycle logger.
func WithLogger(l *log.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// WithCommandBuffer sets how many input commands may queue between ticks.
func WithCommandBuffer(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.bufferSize = n
		}
	}
}

type runnerMsg struct {
	cmd   Command
	query func(*Engine)
	reply chan struct{}
}

// Runner hosts an Engine on a single goroutine. It drives the tick and spawn
// timers, applies input commands from any goroutine and publishes a snapshot
// after every mutation.
//
// Both timers run only while the game is playing. Game over stops them and
// a successful restart creates fresh ones tagged with the new epoch.
type Runner struct {
	eng        *Engine
	clock      Clock
	logger     *log.Logger
	bufferSize int

	msgs   chan runnerMsg
	latest atomic.Pointer[Snapshot]

	subsMu sync.Mutex
	subs   map[*Subscription]struct{}

	dropped  atomic.Uint64
	started  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
	exited   chan struct{}
}

// NewRunner wraps eng. The engine must not be used directly once Run starts.
func NewRunner(eng *Engine, opts ...RunnerOption) *Runner {
	r := &Runner{
		eng:        eng,
		clock:      SystemClock{},
		logger:     log.New(io.Discard),
		bufferSize: defaultCommandBuffer,
		subs:       make(map[*Subscription]struct{}),
		done:       make(chan struct{}),
		exited:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.msgs = make(chan runnerMsg, r.bufferSize)
	snap := eng.Snapshot()
	r.latest.Store(&snap)
	return r
}

// Run drives the engine until ctx is cancelled or Stop is called.
// It may be called once.
func (r *Runner) Run(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return errors.New("engine: runner already started")
	}
	defer close(r.exited)
	defer r.closeSubscriptions()

	cfg := r.eng.Config()
	var tick, spawn Ticker
	var tickC, spawnC <-chan time.Time
	var epoch uint64

	startTimers := func() {
		epoch = r.eng.Epoch()
		tick = r.clock.NewTicker(cfg.Timing.TickPeriod)
		spawn = r.clock.NewTicker(cfg.Timing.SpawnPeriod)
		tickC, spawnC = tick.C(), spawn.C()
	}
	stopTimers := func() {
		if tick != nil {
			tick.Stop()
			spawn.Stop()
		}
		tick, spawn = nil, nil
		tickC, spawnC = nil, nil
	}
	defer stopTimers()

	if r.eng.Phase() == PhasePlaying {
		startTimers()
	}
	r.logger.Info("runner started", "epoch", r.eng.Epoch(), "tick", cfg.Timing.TickPeriod, "spawn", cfg.Timing.SpawnPeriod)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("runner stopped", "reason", ctx.Err())
			return nil

		case <-r.done:
			r.logger.Info("runner stopped")
			return nil

		case <-tickC:
			res := r.eng.Tick(epoch)
			if res.Applied {
				r.publish()
			}
			if res.Ended {
				stopTimers()
				r.logger.Info("game over", "epoch", res.State.Epoch, "score", res.State.Score, "ticks", res.State.Tick)
			}

		case <-spawnC:
			if r.eng.Spawn(epoch) {
				r.publish()
			}

		case msg := <-r.msgs:
			if msg.query != nil {
				msg.query(r.eng)
				close(msg.reply)
				continue
			}
			res := r.eng.Dispatch(msg.cmd)
			if !res.Applied {
				continue
			}
			if msg.cmd.Kind == CmdRestart {
				stopTimers()
				startTimers()
				r.logger.Info("game restarted", "epoch", epoch)
			}
			r.publish()
		}
	}
}

// Stop ends Run. Safe to call multiple times.
func (r *Runner) Stop() {
	r.doneOnce.Do(func() { close(r.done) })
}

// Done closes when Run has returned.
func (r *Runner) Done() <-chan struct{} {
	return r.exited
}

// Snapshot returns the latest published snapshot.
func (r *Runner) Snapshot() Snapshot {
	return *r.latest.Load()
}

// Dropped returns how many input commands were discarded because the queue was full.
func (r *Runner) Dropped() uint64 {
	return r.dropped.Load()
}

// MovePlayerTo queues an absolute move.
func (r *Runner) MovePlayerTo(x float64) bool {
	return r.send(Command{Kind: CmdMoveTo, Value: x})
}

// MovePlayerBy queues a relative move.
func (r *Runner) MovePlayerBy(dx float64) bool {
	return r.send(Command{Kind: CmdMoveBy, Value: dx})
}

// Press queues a held direction.
func (r *Runner) Press(d Direction) bool {
	return r.send(Command{Kind: CmdPress, Value: float64(d)})
}

// Release queues a released direction.
func (r *Runner) Release(d Direction) bool {
	return r.send(Command{Kind: CmdRelease, Value: float64(d)})
}

// Shoot queues one bullet.
func (r *Runner) Shoot() bool {
	return r.send(Command{Kind: CmdShoot})
}

// Restart queues a restart. It only takes effect after game over.
func (r *Runner) Restart() bool {
	return r.send(Command{Kind: CmdRestart})
}

// send queues a command without blocking. A full queue drops the command.
func (r *Runner) send(cmd Command) bool {
	select {
	case <-r.done:
		return false
	default:
	}

	select {
	case r.msgs <- runnerMsg{cmd: cmd}:
		return true
	default:
		r.dropped.Add(1)
		r.logger.Warn("input dropped, command queue full", "command", cmd)
		return false
	}
}

// Do runs fn on the runner goroutine between two events and waits for it.
// Every command queued before Do has been applied when fn runs.
func (r *Runner) Do(ctx context.Context, fn func(*Engine)) error {
	msg := runnerMsg{query: fn, reply: make(chan struct{})}
	select {
	case r.msgs <- msg:
	case <-r.exited:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-msg.reply:
		return nil
	case <-r.exited:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe returns a stream of snapshots. Slow readers lose the oldest
// snapshots, never the newest.
func (r *Runner) Subscribe(buffer int) *Subscription {
	if buffer < 1 {
		buffer = 1
	}
	sub := &Subscription{
		runner:    r,
		snapshots: make(chan Snapshot, buffer),
		done:      make(chan struct{}),
	}
	r.subsMu.Lock()
	r.subs[sub] = struct{}{}
	r.subsMu.Unlock()
	return sub
}

func (r *Runner) publish() {
	snap := r.eng.Snapshot()
	r.latest.Store(&snap)

	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	for sub := range r.subs {
		sub.send(snap)
	}
}

func (r *Runner) unsubscribe(sub *Subscription) {
	r.subsMu.Lock()
	delete(r.subs, sub)
	r.subsMu.Unlock()
}

func (r *Runner) closeSubscriptions() {
	r.subsMu.Lock()
	subs := r.subs
	r.subs = make(map[*Subscription]struct{})
	r.subsMu.Unlock()
	for sub := range subs {
		sub.close()
	}
}

// Subscription receives snapshots from a Runner.
type Subscription struct {
	runner    *Runner
	snapshots chan Snapshot
	done      chan struct{}
	doneOnce  sync.Once
}

// Snapshots returns the snapshot channel.
func (s *Subscription) Snapshots() <-chan Snapshot {
	return s.snapshots
}

// Done closes when the subscription ends.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Close detaches the subscription. Safe to call multiple times.
func (s *Subscription) Close() {
	s.runner.unsubscribe(s)
	s.close()
}

func (s *Subscription) close() {
	s.doneOnce.Do(func() { close(s.done) })
}

func (s *Subscription) send(snap Snapshot) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.snapshots <- snap:
	default:
		// Full: drop the oldest and retry once
		select {
		case <-s.snapshots:
		default:
		}
		select {
		case s.snapshots <- snap:
		default:
		}
	}
}
