package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-miner/internal/core"
	"github.com/vovakirdan/space-miner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Space Miner in the terminal.

Controls:
  Left/Right (A/D) - Rotate the ship
  Up (W)           - Accelerate
  Space            - Shoot
  R                - Reload
  Esc              - Pause
  Up/Down, Enter   - Menu navigation
  Ctrl+C           - Quit

Terminals report key presses but not releases, so holding a key relies on the
terminal's key repeat.

Examples:
  spaceminer play
  spaceminer play --difficulty hard
  spaceminer play --config ./my-spaceminer.yaml`,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newGameSession()
	if err != nil {
		return err
	}
	defer s.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	if err := tui.Run(s.app, s.logical(), rc); err != nil {
		return fmt.Errorf("terminal frontend: %w", err)
	}

	runs, err := s.store.TopRuns(10)
	if err != nil {
		s.log.Error("failed to read run history", "err", err)
		return nil
	}
	fmt.Print(tui.SessionSummary(runs))
	return nil
}
