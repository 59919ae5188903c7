// Package tetris implements the falling-block puzzle: the piece catalog,
// the settled board, and the tick-driven game state machine.
package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape is a rectangular occupancy grid indexed [row][col].
// Shapes are never mutated after construction; Rotate returns a new grid.
type Shape [][]bool

// parseShape builds a Shape from rows where '#' marks an occupied cell.
func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == '#'
		}
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the shape turned 90° clockwise: row order is reversed,
// then the grid is transposed. A W×H shape becomes H×W.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range out {
		out[i] = make([]bool, h)
		for j := range out[i] {
			out[i][j] = s[h-1-j][i]
		}
	}
	return out
}

// Equal reports whether both shapes have the same size and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Cells returns the offsets of occupied cells in row-major order.
func (s Shape) Cells() []Point {
	var cells []Point
	for y, row := range s {
		for x, filled := range row {
			if filled {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// String renders the shape with '#' and '.', one line per row.
func (s Shape) String() string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Kind identifies one of the seven catalog shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindL
	KindJ
)

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

var kindNames = []string{"I", "O", "T", "S", "Z", "L", "J"}

// catalog holds the spawn orientation of every kind.
var catalog = []Shape{
	KindI: parseShape("####"),
	KindO: parseShape("##", "##"),
	KindT: parseShape(".#.", "###"),
	KindS: parseShape("##.", ".##"),
	KindZ: parseShape(".##", "##."),
	KindL: parseShape("###", "..#"),
	KindJ: parseShape("###", "#.."),
}

// Palette is the set of colors a spawned piece may take.
var Palette = []core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorPurple,
}

// ShapeOf returns the spawn orientation for a kind.
func ShapeOf(k Kind) Shape {
	return catalog[k]
}
