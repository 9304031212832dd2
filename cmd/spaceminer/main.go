// spaceminer is an Asteroids-style arcade game: shoot asteroids, earn
// credits, buy upgrades between levels.
//
// Usage:
//
//	spaceminer               - Play in the terminal (same as "play")
//	spaceminer play          - Play in the terminal
//	spaceminer window        - Play in a desktop window
//	spaceminer config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom YAML config
//	--difficulty <preset> - easy, normal or hard
//	--log <path>          - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaceminer",
	Short: "Space Miner - shoot asteroids, earn credits, buy upgrades",
	Long: `Space Miner is an Asteroids-style arcade game.

Destroy asteroids to earn credits. Clear the field to reach the shop, where
credits buy a bigger magazine or an extra life before the next level.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  spaceminer
  spaceminer window --difficulty easy
  spaceminer play --seed 42 --log ./spaceminer.log
  spaceminer config > ~/.spaceminer/configs/spaceminer.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
