package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Board dimensions in cells.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Board is the grid of settled blocks, indexed [row][col].
// core.ColorDefault marks an empty cell; any other color is a merged block.
type Board struct {
	width  int
	height int
	cells  [][]core.Color
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([][]core.Color, height),
	}
	for y := range b.cells {
		b.cells[y] = make([]core.Color, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// inside reports whether (x, y) addresses a stored cell.
func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the color at (x, y), or ColorDefault outside the grid.
func (b *Board) At(x, y int) core.Color {
	if !b.inside(x, y) {
		return core.ColorDefault
	}
	return b.cells[y][x]
}

// Set stores a color at (x, y). Out-of-range writes are ignored.
func (b *Board) Set(x, y int, c core.Color) {
	if !b.inside(x, y) {
		return
	}
	b.cells[y][x] = c
}

// IsEmpty reports whether the cell at (x, y) holds no block.
func (b *Board) IsEmpty(x, y int) bool {
	return b.At(x, y) == core.ColorDefault
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// FillRow occupies every cell of row y with color c.
func (b *Board) FillRow(y int, c core.Color) {
	for x := range b.cells[y] {
		b.cells[y][x] = c
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.width, b.height)
	for y := range b.cells {
		copy(clone.cells[y], b.cells[y])
	}
	return clone
}

// Equal reports whether two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the board with '.' for empty and '#' for occupied cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c == core.ColorDefault {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}

// Collides reports whether any occupied cell of p lies left or right of the
// board, at or below its bottom row, or on a settled block.
// Cells above row 0 are allowed and never checked against the grid.
func Collides(p Piece, b *Board) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return true
		}
		if c.Y >= 0 && b.cells[c.Y][c.X] != core.ColorDefault {
			return true
		}
	}
	return false
}

// Merge writes the piece color into the board at every occupied cell.
// Cells above row 0 have nowhere to go and are dropped.
func Merge(p Piece, b *Board) {
	for _, c := range p.Cells() {
		b.Set(c.X, c.Y, p.Color)
	}
}

// ClearLines removes every full row, inserting an empty row at the top for
// each, and returns how many rows were removed.
func ClearLines(b *Board) int {
	cleared := 0
	for y := 0; y < b.height; y++ {
		if !b.RowFull(y) {
			continue
		}
		row := b.cells[y]
		copy(b.cells[1:y+1], b.cells[:y])
		for x := range row {
			row[x] = core.ColorDefault
		}
		b.cells[0] = row
		cleared++
	}
	return cleared
}
