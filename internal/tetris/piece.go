package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Piece is the falling block: a shape, its color and its origin on the board.
// Pieces are values; Translate and Rotated build candidates that the caller
// tests with Collides before committing.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	X, Y  int
}

// NewPiece creates a piece of the given kind in its spawn orientation.
func NewPiece(kind Kind, color core.Color, x, y int) Piece {
	return Piece{
		Kind:  kind,
		Shape: ShapeOf(kind),
		Color: color,
		X:     x,
		Y:     y,
	}
}

// SpawnPiece picks a random kind and color and centers the piece on row 0.
func SpawnPiece(rng *rand.Rand, boardWidth int) Piece {
	kind := Kind(rng.Intn(len(catalog)))
	color := Palette[rng.Intn(len(Palette))]
	return NewPiece(kind, color, SpawnX(boardWidth, ShapeOf(kind)), 0)
}

// SpawnX returns the column that centers a shape horizontally.
func SpawnX(boardWidth int, s Shape) int {
	return boardWidth/2 - s.Width()/2
}

// Translate returns a copy of the piece moved by (dx, dy).
func (p Piece) Translate(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece with its shape turned clockwise.
// The origin is unchanged.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Cells returns the absolute board coordinates of the occupied cells.
func (p Piece) Cells() []Point {
	cells := p.Shape.Cells()
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}
