package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// boardFrame is the border of a 10x20 board drawn two columns per cell.
var boardFrame = NewRect(0, 0, 22, 22)

func TestBoardFrameEdges(t *testing.T) {
	assert.Equal(t, 22, boardFrame.Right())
	assert.Equal(t, 22, boardFrame.Bottom())

	cx, cy := boardFrame.Center()
	assert.Equal(t, 11, cx)
	assert.Equal(t, 11, cy)
}

func TestRectContainsExcludesFarEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name   string
		x, y   int
		inside bool
	}{
		{"origin", 2, 3, true},
		{"last cell", 5, 7, true},
		{"right edge", 6, 3, false},
		{"bottom edge", 2, 8, false},
		{"above", 2, 2, false},
		{"negative row", 3, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inside, r.Contains(tt.x, tt.y))
		})
	}
}
