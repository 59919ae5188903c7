package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the all-time high score from the score file and the top
sessions from the session history.

Examples:
  tetris scores
  tetris scores --limit 20
  tetris scores --recent
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to list")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the most recent sessions instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the session history (the score file is kept)")
}

func runScores(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer a.close()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	high, err := a.scores.HighScore()
	if err != nil {
		return fmt.Errorf("reading score file: %w", err)
	}

	store, err := storage.Open(a.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(tetris.GameID); err != nil {
			return err
		}
		fmt.Println("Session history cleared.")
		return nil
	}

	best, err := store.HighScore(tetris.GameID)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("T E T R I S"))
	fmt.Printf("High Score (All Time): %d\n", high)
	fmt.Println(dimStyle.Render(a.scores.Path()))
	if best > high {
		// The ledger also holds remote sessions saved to another score file.
		fmt.Println(dimStyle.Render(fmt.Sprintf("Best recorded session: %d", best)))
	}
	fmt.Println()

	var entries []storage.ScoreEntry
	heading := "Top Sessions"
	if flagScoresRecent {
		heading = "Recent Sessions"
		entries, err = store.RecentScores(tetris.GameID, flagScoresLimit)
	} else {
		entries, err = store.TopScores(tetris.GameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println(titleStyle.Render(heading))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tetris play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, e.Player, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(tetris.GameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Println(dimStyle.Render(fmt.Sprintf("%d games, average %.1f, last played %s",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))))
	}
	return nil
}
