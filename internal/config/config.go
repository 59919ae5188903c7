// Package config provides YAML-based configuration loading for the game:
// file locations, simulation rate and key bindings.
package config

// Config contains all user-tunable settings. Game rules are not configurable.
type Config struct {
	TickRate     int         `yaml:"tick_rate"`     // Simulation ticks per second
	ScoresFile   string      `yaml:"scores_file"`   // Newline-delimited all-time score file
	DBPath       string      `yaml:"db_path"`       // SQLite session ledger
	HistoryShown int         `yaml:"history_shown"` // Session scores listed after game over
	Keys         KeyBindings `yaml:"keys"`
}

// KeyBindings lists the terminal key names bound to each action.
// Key names follow Bubble Tea's KeyMsg.String() ("left", "ctrl+c", " ").
type KeyBindings struct {
	Left     []string `yaml:"left"`
	Right    []string `yaml:"right"`
	Down     []string `yaml:"down"`
	Rotate   []string `yaml:"rotate"`
	HardDrop []string `yaml:"hard_drop"`
	Pause    []string `yaml:"pause"`
	Restart  []string `yaml:"restart"`
	Exit     []string `yaml:"exit"`
	Quit     []string `yaml:"quit"`
}

// fillDefaults replaces zero or empty values with the hardcoded defaults so a
// partial config file stays usable.
func (c *Config) fillDefaults() {
	def := Default()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.ScoresFile == "" {
		c.ScoresFile = def.ScoresFile
	}
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.HistoryShown <= 0 {
		c.HistoryShown = def.HistoryShown
	}

	keys := &c.Keys
	for _, kv := range []struct {
		dst *[]string
		def []string
	}{
		{&keys.Left, def.Keys.Left},
		{&keys.Right, def.Keys.Right},
		{&keys.Down, def.Keys.Down},
		{&keys.Rotate, def.Keys.Rotate},
		{&keys.HardDrop, def.Keys.HardDrop},
		{&keys.Pause, def.Keys.Pause},
		{&keys.Restart, def.Keys.Restart},
		{&keys.Exit, def.Keys.Exit},
		{&keys.Quit, def.Keys.Quit},
	} {
		if len(*kv.dst) == 0 {
			*kv.dst = kv.def
		}
	}
}
