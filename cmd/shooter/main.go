// shooter is a terminal arcade shooter: move the ship, shoot the enemies
// falling from the top, and keep them from reaching the bottom.
//
// Usage:
//
//	shooter                  - Start the mode picker menu
//	shooter play [mode]      - Play a mode directly
//	shooter list             - List available modes
//	shooter sim [mode]       - Let a bot play headlessly
//	shooter replay <id>      - Verify a recorded run
//	shooter replays          - List or delete recorded runs
//	shooter config           - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load a custom shooter YAML
//	--db <path>         - Set replay database path (default: ~/.shooter/shooter.db)
//	--log-level <level> - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Shooter - a vertical arcade shooter in your terminal",
	Long: `Shooter is a terminal arcade game. Enemies fall from the top of the
playfield; shoot them before they reach the bottom or hit your ship.

Available commands:
  play     - Play a mode directly
  list     - Show all available modes
  sim      - Let a bot play headlessly
  replay   - Verify a recorded run
  replays  - Browse, list or delete recorded runs
  config   - Print the effective configuration

Running shooter without a command opens the mode picker.

Examples:
  shooter
  shooter play
  shooter play shooter_classic --record
  shooter sim --duration 30s
  shooter config --config ./my-shooter.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		shooter.SetConfigPath(flagConfig)
	},
	RunE: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the replay database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (TUI commands log nothing otherwise)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(configCmd)
}
