// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based generator.
package world

// Grid is a fixed-size 2D grid of values addressed by (x, y) with y-up.
// Cells are stored column-major so x is the outer loop everywhere.
type Grid[T any] struct {
	cells  []T
	width  int
	height int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid[T any](width, height int) *Grid[T] {
	g := &Grid[T]{}
	g.Build(width, height)
	return g
}

// Build initializes the grid with the given dimensions, zeroing every cell
func (g *Grid[T]) Build(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.cells = make([]T, width*height)
}

// Width returns the number of columns in the grid
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid[T]) Height() int {
	return g.height
}

// Bounds returns the rectangle covered by the grid
func (g *Grid[T]) Bounds() Rect {
	return Rect{W: g.width, H: g.height}
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid[T]) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
func (g *Grid[T]) IsPlayablePosition(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid[T]) IsOnPerimeter(x, y int) bool {
	return g.IsValidPosition(x, y) && !g.IsPlayablePosition(x, y)
}

// At returns the value at the given position, or the zero value if out of bounds
func (g *Grid[T]) At(x, y int) T {
	if !g.IsValidPosition(x, y) {
		var zero T
		return zero
	}
	return g.cells[x*g.height+y]
}

// Set stores v at the given position. Returns false if out of bounds.
func (g *Grid[T]) Set(x, y int, v T) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.cells[x*g.height+y] = v
	return true
}

// Fill sets every cell of r that lies inside the grid to v
func (g *Grid[T]) Fill(r Rect, v T) {
	r = r.Intersect(g.Bounds())
	for x := r.X; x < r.MaxX(); x++ {
		for y := r.Y; y < r.MaxY(); y++ {
			g.cells[x*g.height+y] = v
		}
	}
}

// Clone returns an independent copy of the grid
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{width: g.width, height: g.height, cells: make([]T, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites every cell with the matching cell of src, which must be the same size
func (g *Grid[T]) CopyFrom(src *Grid[T]) {
	if src.width != g.width || src.height != g.height {
		panic("Grid dimensions differ")
	}
	copy(g.cells, src.cells)
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid[T]) ForEachCell(fn func(x, y int, v T)) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			fn(x, y, g.cells[x*g.height+y])
		}
	}
}

// Map converts a grid cell by cell
func Map[T, U any](g *Grid[T], fn func(T) U) *Grid[U] {
	out := NewGrid[U](g.width, g.height)
	for i, v := range g.cells {
		out.cells[i] = fn(v)
	}
	return out
}

// Equal reports whether two comparable grids have the same size and contents
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}
