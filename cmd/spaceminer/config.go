package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-miner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config file
search and the difficulty preset are applied.

Config search order:
  --config <path>
  ~/.spaceminer/configs/spaceminer.yaml
  ./configs/spaceminer.yaml
  built-in defaults

Examples:
  spaceminer config
  spaceminer config --difficulty hard`,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
