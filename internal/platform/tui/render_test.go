package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestEveryPieceColorHasStyle(t *testing.T) {
	for _, c := range tetris.Palette {
		_, ok := ansiCodes[c]
		assert.True(t, ok, "piece color %d has no terminal color", c)
	}
}

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "Score:")
	s.DrawTextColor(1, 1, "[]", core.ColorCyan)
	s.DrawTextColor(3, 1, "[]", core.ColorRed)

	out := RenderScreen(s)

	assert.Len(t, strings.Split(out, "\n"), 3)
	assert.Contains(t, out, "Score:")
	assert.Equal(t, 2, strings.Count(out, "[]"))
}
