// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as "tetris play")
//	tetris play              - Play a game
//	tetris menu              - Start menu with play and scoreboard
//	tetris scores            - Show the all-time high and session history
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Ticks per second; gravity moves one row per tick (default: 5)
//	--seed <value>   - Set RNG seed for reproducible piece sequences
//	--scores <path>  - Score file (default: ~/.tetris/scores.txt)
//	--db <path>      - Session ledger database (default: ~/.tetris/sessions.db)
//	--config <path>  - Config YAML (default search: ~/.tetris/config.yaml, ./configs/tetris.yaml)
//	--log <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagScores  string
	flagDBPath  string
	flagConfig  string
	flagLogPath string
	flagPlayer  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle game for the terminal.

Clear full rows to score. The best score ever saved is kept in a plain
text score file; every finished game is also recorded in a local
session history.

Available commands:
  play     - Play a game (default)
  menu     - Menu with play and scoreboard
  scores   - Show high scores
  serve    - Start SSH server for remote play

Examples:
  tetris
  tetris play --seed 42
  tetris menu --fps 8
  tetris scores --recent
  tetris serve --ssh :2222`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 5, "Tick rate (gravity steps per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagScores, "scores", "~/.tetris/scores.txt", "Path to the score file")
	pf.StringVar(&flagDBPath, "db", "~/.tetris/sessions.db", "Path to the session history database")
	pf.StringVar(&flagConfig, "config", "", "Path to a config YAML")
	pf.StringVar(&flagLogPath, "log", "", "Write logs to this file")
	pf.StringVar(&flagPlayer, "player", "", "Player name for the session history (default: $USER)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
