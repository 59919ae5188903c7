package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/scorefile"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// app holds what every command builds from flags and config.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	scores  *scorefile.File
	logFile *os.File
}

// setup loads configuration, applies flags and creates the logger.
// Interactive commands pass logToStderr=false: the alt screen owns the
// terminal, so logs go to --log or nowhere.
func setup(cmd *cobra.Command, logToStderr bool) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd.Flags().Changed, &cfg)

	a := &app{cfg: cfg}

	var w io.Writer = io.Discard
	switch {
	case flagLogPath != "":
		f, err := os.OpenFile(flagLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		a.logFile = f
		w = f
	case logToStderr:
		w = os.Stderr
	}
	a.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})

	a.scores, err = scorefile.Open(cfg.ScoresFile)
	if err != nil {
		a.close()
		return nil, err
	}

	a.logger.Debug("configuration loaded", "tick_rate", cfg.TickRate, "scores", a.scores.Path(), "db", cfg.DBPath)
	return a, nil
}

// applyFlags lets explicitly set flags override config values.
func applyFlags(changed func(name string) bool, cfg *config.Config) {
	if changed("fps") {
		cfg.TickRate = flagFPS
	}
	if changed("scores") {
		cfg.ScoresFile = flagScores
	}
	if changed("db") {
		cfg.DBPath = flagDBPath
	}
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// openStore opens the session ledger. The game runs without it on failure.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.cfg.DBPath)
	if err != nil {
		a.logger.Warn("could not open session database", "path", a.cfg.DBPath, "error", err)
		return nil
	}
	return store
}

// allTimeHigh reads the score file, logging and returning 0 on failure.
func (a *app) allTimeHigh() int {
	high, err := a.scores.HighScore()
	if err != nil {
		a.logger.Warn("could not read score file", "path", a.scores.Path(), "error", err)
		return 0
	}
	return high
}

func (a *app) options(store *storage.Store) tui.Options {
	return tui.Options{
		Scores:       a.scores,
		Store:        store,
		Logger:       a.logger,
		Keys:         tui.NewKeyMap(a.cfg.Keys),
		Player:       playerName(flagPlayer),
		HistoryShown: a.cfg.HistoryShown,
	}
}

// runtimeConfig sizes the game from the current terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = a.cfg.TickRate
	cfg.Seed = flagSeed
	return cfg
}

// playerName returns the explicit name, $USER, or "player".
func playerName(flag string) string {
	if flag != "" {
		return flag
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
