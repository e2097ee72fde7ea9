package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a mode would run with, as YAML.

The configuration is searched in this order:
  1. --config <path>
  2. ~/.shooter/configs/shooter.yaml
  3. ./configs/shooter.yaml
  4. built-in defaults

Use --default to print the built-in file as a starting point.

Examples:
  shooter config
  shooter config shooter_classic
  shooter config --default > ~/.shooter/configs/shooter.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	mode, err := modeArg(args)
	if err != nil {
		return err
	}
	cfg, err := shooter.ConfigFor(mode, flagConfig)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
