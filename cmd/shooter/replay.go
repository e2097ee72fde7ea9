package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/engine"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagReplaysLimit  int
	flagReplaysMode   string
	flagReplaysDelete string
	flagReplaysPlain  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Verify a recorded run",
	Long: `Rebuild the engine from a stored replay, feed it the recorded
commands and check that the final world matches the recorded digest.

Examples:
  shooter replay 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse, list or delete recorded runs",
	Long: `Open the replay browser, print stored replays newest first with
--plain, or delete one with --delete.

Examples:
  shooter replays
  shooter replays --plain --mode shooter_classic --limit 5
  shooter replays --delete 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplaysLimit, "limit", 20, "Maximum number of replays to list")
	replaysCmd.Flags().StringVar(&flagReplaysMode, "mode", "", "Only list replays of this mode")
	replaysCmd.Flags().StringVar(&flagReplaysDelete, "delete", "", "Delete the replay with this ID")
	replaysCmd.Flags().BoolVar(&flagReplaysPlain, "plain", false, "Print replays instead of opening the browser")
}

// errDigestMismatch means a replay did not reproduce its recorded world.
var errDigestMismatch = errors.New("replay diverged from the recording")

func runReplay(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.LoadReplay(args[0])
	if err != nil {
		return err
	}

	eng, err := replayEngine(rec)
	if err != nil {
		return err
	}

	got := eng.Snapshot().Digest()
	state := eng.State()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Replay:    %s (%s)\n", rec.ID, rec.Mode)
	fmt.Fprintf(out, "Commands:  %d\n", len(rec.Commands))
	fmt.Fprintf(out, "Score:     %d\n", state.Score)
	fmt.Fprintf(out, "Ticks:     %d (recorded %d)\n", state.Tick, rec.Ticks)
	fmt.Fprintf(out, "Digest:    %016x (recorded %016x)\n", got, rec.Digest)

	if got != rec.Digest {
		return fmt.Errorf("%s: %w", rec.ID, errDigestMismatch)
	}
	fmt.Fprintln(out, "OK: replay reproduces the recorded run")
	return nil
}

// replayEngine rebuilds the engine a replay was recorded with and replays its commands.
func replayEngine(rec *storage.Replay) (*engine.Engine, error) {
	cfg, err := config.Parse(rec.Config)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", rec.ID, err)
	}
	return engine.Replay(cfg, rec.Seed, rec.Commands)
}

func runReplays(cmd *cobra.Command, _ []string) error {
	if !flagReplaysPlain && flagReplaysDelete == "" {
		_, err := browseReplays(terminalSize())
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagReplaysDelete != "" {
		if err := store.DeleteReplay(flagReplaysDelete); err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted replay %s\n", flagReplaysDelete)
		return nil
	}

	replays, err := store.ListReplays(flagReplaysMode, flagReplaysLimit)
	if err != nil {
		return err
	}
	if len(replays) == 0 {
		fmt.Fprintln(out, "No replays recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'shooter play --record' to record one.")
		return nil
	}

	fmt.Fprintf(out, "  %-36s  %-16s  %-8s  %-8s  %s\n", "ID", "Mode", "Ticks", "Commands", "Date")
	fmt.Fprintf(out, "  %-36s  %-16s  %-8s  %-8s  %s\n", "--", "----", "-----", "--------", "----")
	for _, r := range replays {
		fmt.Fprintf(out, "  %-36s  %-16s  %-8d  %-8d  %s\n",
			r.ID, r.Mode, r.Ticks, r.CommandCount, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// browseReplays opens the interactive replay browser.
func browseReplays(width, height int) (goBack bool, err error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return false, err
	}
	defer store.Close()
	return tui.RunReplayBrowser(store, width, height)
}
