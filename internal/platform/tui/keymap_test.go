package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDefaults(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionHardDrop},
		{"p", runeKey('p'), core.ActionPause},
		{"P", runeKey('P'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionExit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, km.MapKey(tt.msg), "MapKey(%q)", tt.msg.String())
		})
	}
}

func TestMapKeyCustomBindings(t *testing.T) {
	kb := config.Default().Keys
	kb.Left = []string{"a", "left"}
	kb.Rotate = []string{"w"}
	km := NewKeyMap(kb)

	assert.Equal(t, core.ActionLeft, km.MapKey(runeKey('a')))
	assert.Equal(t, core.ActionLeft, km.MapKey(tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, core.ActionRotate, km.MapKey(runeKey('w')))
	assert.Equal(t, core.ActionNone, km.MapKey(tea.KeyMsg{Type: tea.KeyUp}), "up is unbound after rebinding rotate")
}

func TestHints(t *testing.T) {
	h := DefaultKeyMap().Hints()

	assert.Equal(t, "Press R to Restart | Press Q to Exit", h.GameOver)

	joined := strings.Join(h.Controls, "\n")
	for _, want := range []string{"space", "hard drop", "p/P", "rotate"} {
		assert.Contains(t, joined, want)
	}
}
