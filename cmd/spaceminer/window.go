package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-miner/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play Space Miner in a desktop window.

Controls:
  Left/Right     - Rotate the ship
  Up             - Accelerate
  Space          - Shoot
  R              - Reload
  Esc            - Pause
  Up/Down, Enter - Menu navigation

Closing the window quits the game.

Examples:
  spaceminer window
  spaceminer window --fps 120 --log ./spaceminer.log`,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := newGameSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := window.Run(s.app, s.logical(), flagFPS); err != nil {
		return fmt.Errorf("window frontend: %w", err)
	}
	return nil
}
