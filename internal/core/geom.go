// Package core provides fundamental types shared by the snake game, its
// scheduler and the terminal front end. It has no external dependencies so
// the game logic stays pure and testable.
package core

// Rect is an axis-aligned area of grid cells. The right and bottom edges
// are exclusive.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Square returns the n×n rectangle anchored at the origin, the shape of
// every snake board.
func Square(n int) Rect {
	return Rect{W: n, H: n}
}

// Right returns the first x coordinate past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first y coordinate past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
