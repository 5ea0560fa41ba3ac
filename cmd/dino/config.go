package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dino/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as YAML.

Save it to ~/.dino/configs/dino.yaml or ./configs/dino.yaml to customize
the game, or pass it with --config. With --check, load the config the
other commands would use and report whether it is valid.

Examples:
  dino config > ~/.dino/configs/dino.yaml
  dino config --check --config ./my-dino.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the effective config instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagCheck {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	if _, err := loadConfig(); err != nil {
		fail("Error", err)
	}
	fmt.Println("Config OK")
}
