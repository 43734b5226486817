package world

import "fmt"

// Point is an integer grid position
type Point struct {
	X, Y int
}

// Add returns p offset by dx, dy
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance between two points
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// String returns "x,y"
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Rect is an axis-aligned rectangle with its origin at the lower-left corner.
// Cells covered are [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a rectangle
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// MaxX returns the exclusive right edge
func (r Rect) MaxX() int {
	return r.X + r.W
}

// MaxY returns the exclusive top edge
func (r Rect) MaxY() int {
	return r.Y + r.H
}

// Area returns the number of cells covered
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell at p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// ContainsRect reports whether o lies entirely inside r
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// Inset grows the rectangle by d on every side (shrinks it when d is negative)
func (r Rect) Inset(d int) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Intersect returns the overlap of r and o. The result is empty when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.MaxX(), o.MaxX())
	y1 := min(r.MaxY(), o.MaxY())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps reports whether r and o share at least one cell
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).Empty()
}

// String returns "(x,y wxh)"
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
