// Package core provides the types shared by the game and the terminal
// platform: actions, input frames, colors and the frame buffer. It has no
// Bubble Tea dependency so game logic stays pure and testable.
package core

// Rect is an axis-aligned rectangle in screen cells. The board frame and
// the frame buffer bounds are both Rects.
type Rect struct {
	X, Y int // top-left corner
	W, H int
}

// NewRect creates a rectangle at (x, y) with size w×h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside; the right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell, rounding down.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
