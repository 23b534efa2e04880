package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/platformfighter/internal/application/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file.json>",
	Short: "Run a recorded session headless",
	Long: `Plays a recording made with --record through the simulation without
opening a window and prints the final outcome. The configuration stored in
the recording is used, so the result is identical to the recorded session.

Examples:
  fighter replay run.json
  fighter replay run.json --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), flagLogLevel)
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		logger.Error("failed to load replay", "path", args[0], "err", err)
		return err
	}
	logger.Info("replaying", "path", args[0], "frames", len(data.Frames), "source", data.Source)

	res, err := replay.Run(data, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "frames:       %d\n", res.Frames)
	fmt.Fprintf(out, "hits:         %d\n", res.Hits)
	fmt.Fprintf(out, "enemy health: %d\n", res.EnemyHealth)
	fmt.Fprintf(out, "enemy alive:  %t\n", res.EnemyAlive)
	fmt.Fprintf(out, "player alive: %t\n", res.PlayerAlive)
	if res.DefeatedAt > 0 {
		fmt.Fprintf(out, "defeated at:  %d\n", res.DefeatedAt)
	}
	return nil
}
