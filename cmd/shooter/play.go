package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: shooter).

Controls:
  Left/Right, A/D  - Move the ship
  Mouse drag       - Move the ship under the pointer
  Space, click     - Shoot
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

With --record every command is stored so the run can be verified
later with 'shooter replay <id>'.

Examples:
  shooter play
  shooter play shooter_classic
  shooter play --seed 42 --record`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the run as a replay")
}

func modeArg(args []string) (string, error) {
	mode := shooter.ModeStandard
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return "", fmt.Errorf("unknown mode %q, run 'shooter list' to see available modes", mode)
	}
	return mode, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	mode, err := modeArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(mode)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sg, recordable := game.(*shooter.Game)
	if flagRecord {
		if !recordable {
			return errors.New("mode does not support recording")
		}
		sg.EnableRecording()
	}

	logger.Info("starting game", "mode", mode, "seed", cfg.Seed, "record", flagRecord)
	state, err := tui.Run(game, logger, cfg)
	if err != nil {
		return err
	}
	logger.Info("game closed", "mode", mode, "score", state.Score, "ticks", state.Tick)

	if flagRecord {
		id, err := saveRecording(sg, logger)
		if err != nil {
			return err
		}
		fmt.Printf("Replay saved: %s\n", id)
	}
	return nil
}

// saveRecording stores the journal of a finished game as a replay.
func saveRecording(game *shooter.Game, logger *log.Logger) (string, error) {
	eng := game.Engine()
	if eng == nil || game.Journal() == nil {
		return "", errors.New("nothing was recorded")
	}

	data, err := config.Marshal(eng.Config())
	if err != nil {
		return "", err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return "", err
	}
	defer closeStore(store, logger)

	id, err := store.SaveReplay(storage.Replay{
		Mode:     game.ID(),
		Seed:     eng.Seed(),
		Config:   data,
		Ticks:    eng.State().Tick,
		Digest:   eng.Snapshot().Digest(),
		Commands: game.Journal().Commands(),
	})
	if err != nil {
		return "", fmt.Errorf("save replay: %w", err)
	}
	logger.Info("replay saved", "id", id, "commands", game.Journal().Len())
	return id, nil
}
