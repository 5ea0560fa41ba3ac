// dino is a side-scrolling runner for the terminal: jump over the obstacles
// rolling toward you for as long as you can.
//
// Usage:
//
//	dino play      - Play in this terminal
//	dino serve     - Start SSH server for remote play
//	dino sim       - Run a headless game on a virtual clock
//	dino config    - Print the default configuration
//
// Global flags:
//
//	--fps <rate>       - Override the frame rate (default: from config)
//	--config <path>    - Path to a game config YAML
//	--log-file <path>  - Write logs to a rotating file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Runner - jump the obstacles in your terminal",
	Long: `Dino Runner is a side-scrolling obstacle runner for the terminal.
Obstacles roll in from the right; jump over them. Every frame survived
is a point, and the first touch ends the run.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  sim      - Run a headless game and print the result
  config   - Print the default configuration

Examples:
  dino play
  dino play --config ./configs/dino.yaml
  dino serve --ssh :2222
  dino sim --duration 30s --autojump`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this rotating file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and applies the global flag overrides.
func loadConfig() (config.DinoConfig, error) {
	cfg, err := config.LoadDino(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS != 0 {
		cfg.Frame.FPS = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// fail prints err like the rest of the CLI and exits.
func fail(format string, err error) {
	fmt.Fprintf(os.Stderr, format+": %v\n", err)
	os.Exit(1)
}
