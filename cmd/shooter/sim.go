package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/bot"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/engine"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagSimDuration time.Duration
	flagSimRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Let a bot play headlessly",
	Long: `Run the engine on real timers with a bot at the controls.
The bot aims at the lowest enemy, fires when aligned and restarts
after every game over. A summary is printed when the duration ends
or on Ctrl+C.

Examples:
  shooter sim
  shooter sim shooter_classic --duration 1m
  shooter sim --seed 7 --record --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 10*time.Second, "How long the bot plays")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the session as a replay")
}

func runSim(cmd *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := shooter.ConfigFor(mode, flagConfig)
	if err != nil {
		return err
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	eng, err := engine.New(cfg, seed)
	if err != nil {
		return err
	}

	var journal *engine.Journal
	if flagSimRecord {
		journal = engine.NewJournal()
		eng.SetRecorder(journal)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagSimDuration)
	defer cancel()

	runner := engine.NewRunner(eng, engine.WithLogger(logger.WithPrefix("runner")))
	player := bot.New(runner, bot.WithLogger(logger.WithPrefix("bot")))

	logger.Info("simulation started", "mode", mode, "seed", seed, "duration", flagSimDuration)

	var stats bot.Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return runner.Run(gctx)
	})
	g.Go(func() error {
		var err error
		stats, err = player.Play(gctx)
		runner.Stop()
		return err
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	// The runner has exited, so the engine is ours again
	final := eng.State()
	logger.Info("simulation finished",
		"runs", len(stats.Runs),
		"best", stats.BestScore(),
		"decisions", stats.Decisions,
		"shots", stats.Shots,
		"dropped", runner.Dropped(),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Mode:      %s\n", mode)
	fmt.Fprintf(out, "Seed:      %d\n", seed)
	fmt.Fprintf(out, "Runs:      %d finished\n", len(stats.Runs))
	fmt.Fprintf(out, "Best:      %d\n", max(stats.BestScore(), final.Score))
	fmt.Fprintf(out, "Current:   score %d, health %d/%d, tick %d\n", final.Score, final.Health, final.MaxHealth, final.Tick)
	fmt.Fprintf(out, "Digest:    %016x\n", eng.Snapshot().Digest())

	if journal == nil {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(store, logger)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	id, err := store.SaveReplay(storage.Replay{
		Mode:     mode,
		Seed:     seed,
		Config:   data,
		Ticks:    final.Tick,
		Digest:   eng.Snapshot().Digest(),
		Commands: journal.Commands(),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Replay:    %s (%d commands)\n", id, journal.Len())
	return nil
}
