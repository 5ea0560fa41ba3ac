package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W  - Jump, or restart after game over
  Mouse       - Click the dino to jump
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Resizing the terminal starts a fresh run.

Examples:
  dino play
  dino play --fps 30
  dino play --config ./my-dino.yaml --log-file ~/.dino/dino.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("Error", err)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Frame.FPS,
	}

	// The terminal belongs to the game, so logs only go to a file
	logger, closer, err := tui.NewLogger(tui.LogOptions{
		File:   flagLogFile,
		Prefix: "dino",
		Debug:  flagDebug,
	})
	if err != nil {
		fail("Error opening log file", err)
	}
	defer closer.Close()

	if runErr := tui.Run(cfg, rt, logger); runErr != nil {
		closer.Close()
		fail("Error running game", runErr)
	}
}
