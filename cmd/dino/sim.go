package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/loop"
	"github.com/vovakirdan/tui-dino/internal/platform/tui"
)

var (
	flagSimDuration time.Duration
	flagSimJumps    []time.Duration
	flagSimAutoJump bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game on a virtual clock",
	Long: `Run a game without a terminal UI and print what happened.

The run is deterministic: frames advance at the configured rate on a
virtual clock, obstacles spawn on the configured cadence, and presses
happen exactly at the given offsets.

Examples:
  dino sim
  dino sim --duration 10s --jump 6s
  dino sim --duration 2m --autojump
  dino sim --fps 30 --jump 100ms --jump 2s`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 5*time.Second, "Virtual time to simulate")
	simCmd.Flags().DurationSliceVar(&flagSimJumps, "jump", nil, "Offset of a primary press (repeatable)")
	simCmd.Flags().BoolVar(&flagSimAutoJump, "autojump", false, "Jump automatically in front of every obstacle")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("Error", err)
	}

	var console io.Writer
	if flagDebug {
		console = os.Stderr
	}
	logger, closer, err := tui.NewLogger(tui.LogOptions{
		Console: console,
		File:    flagLogFile,
		Prefix:  "dino-sim",
		Debug:   flagDebug,
	})
	if err != nil {
		fail("Error opening log file", err)
	}
	defer closer.Close()

	res, err := loop.Simulate(cfg, loop.SimOptions{
		Duration: flagSimDuration,
		Jumps:    flagSimJumps,
		AutoJump: flagSimAutoJump,
		Logger:   logger,
	})
	if err != nil {
		closer.Close()
		fail("Error", err)
	}

	fmt.Printf("Frames:    %d\n", res.Frames)
	fmt.Printf("Spawned:   %d\n", res.Spawned)
	fmt.Printf("Jumps:     %d\n", res.Jumps)
	fmt.Printf("Score:     %d\n", res.Score)
	fmt.Printf("State:     %s\n", res.State)
	if res.EndedAt > 0 {
		fmt.Printf("Ended at:  %s\n", res.EndedAt)
	}
	fmt.Printf("Obstacles: %d live\n", res.Obstacles)
}
