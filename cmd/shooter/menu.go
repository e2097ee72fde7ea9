package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// runMenu loops between the mode picker, the game and the replay browser
// until the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height, Seed: flagSeed}

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsReplays {
			goBack, err := browseReplays(cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return err
		}

		// A fixed --seed applies to the first run only
		runCfg := cfg
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		cfg.Seed = 0

		logger.Info("starting game", "mode", game.ID(), "seed", runCfg.Seed)
		state, err := tui.Run(game, logger, runCfg)
		if err != nil {
			return fmt.Errorf("running %s: %w", game.ID(), err)
		}
		logger.Info("game closed", "mode", game.ID(), "score", state.Score, "ticks", state.Tick)
	}
}
