package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  tetris menu
  tetris menu --fps 8`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	opts := a.options(store)
	cfg := a.runtimeConfig()
	fixedSeed := cfg.Seed != 0

	for {
		menuResult, err := tui.RunMenu(cfg, a.allTimeHigh())
		if err != nil {
			a.logger.Error("menu failed", "error", err)
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuScores:
			goBack, err := tui.RunScoreboard(store, a.allTimeHigh(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				a.logger.Error("scoreboard failed", "error", err)
			}
			if !goBack {
				return nil
			}

		case tui.MenuPlay:
			if !fixedSeed {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(opts, cfg); err != nil {
				a.logger.Error("game failed", "error", err)
			}

		default:
			return nil
		}
	}
}
