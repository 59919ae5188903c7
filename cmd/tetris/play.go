package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing.

Controls (default bindings, see configs/tetris.yaml):
  Left/Right  - Move piece
  Down        - Soft drop
  Up          - Rotate clockwise
  Space       - Hard drop
  P           - Pause
  R           - Restart (after game over)
  Q           - Save score and exit (after game over)
  Ctrl+C      - Quit without saving

Examples:
  tetris play
  tetris play --seed 42
  tetris play --scores ./scores.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(a.options(store), a.runtimeConfig()); err != nil {
		a.logger.Error("game failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
