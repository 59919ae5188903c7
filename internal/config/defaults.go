package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		TickRate:     core.DefaultTickRate,
		ScoresFile:   "~/.tetris/scores.txt",
		DBPath:       "~/.tetris/sessions.db",
		HistoryShown: 5,
		Keys: KeyBindings{
			Left:     []string{"left"},
			Right:    []string{"right"},
			Down:     []string{"down"},
			Rotate:   []string{"up"},
			HardDrop: []string{" "},
			Pause:    []string{"p", "P"},
			Restart:  []string{"r", "R"},
			Exit:     []string{"q", "Q"},
			Quit:     []string{"ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
