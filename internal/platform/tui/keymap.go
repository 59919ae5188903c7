package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// KeyMap holds the in-game key bindings.
// It translates Bubble Tea key messages to game actions and describes
// itself for the side panel.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Down     key.Binding
	Rotate   key.Binding
	HardDrop key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Exit     key.Binding
	Quit     key.Binding
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Left:     binding(kb.Left, "move left"),
		Right:    binding(kb.Right, "move right"),
		Down:     binding(kb.Down, "soft drop"),
		Rotate:   binding(kb.Rotate, "rotate"),
		HardDrop: binding(kb.HardDrop, "hard drop"),
		Pause:    binding(kb.Pause, "pause"),
		Restart:  binding(kb.Restart, "restart"),
		Exit:     binding(kb.Exit, "save and exit"),
		Quit:     binding(kb.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings of the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders key names for display, e.g. "p/P" or "space".
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	return strings.Join(names, "/")
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.HardDrop):
		return core.ActionHardDrop
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Exit):
		return core.ActionExit
	}
	return core.ActionNone
}

// Hints describes the bindings for the game's side panel.
func (k KeyMap) Hints() tetris.Hints {
	var controls []string
	for _, b := range []key.Binding{k.Left, k.Right, k.Down, k.Rotate, k.HardDrop, k.Pause} {
		h := b.Help()
		controls = append(controls, fmt.Sprintf("%-11s %s", h.Key, h.Desc))
	}
	return tetris.Hints{
		Controls: controls,
		GameOver: fmt.Sprintf("Press %s to Restart | Press %s to Exit",
			promptKey(k.Restart), promptKey(k.Exit)),
	}
}

// promptKey returns the first key of a binding in upper case, the way the
// game-over prompt names it ("R", "Q").
func promptKey(b key.Binding) string {
	keys := b.Keys()
	if len(keys) == 0 {
		return "?"
	}
	if keys[0] == " " {
		return "Space"
	}
	return strings.ToUpper(keys[0])
}
