// Package automaton turns rooms and corridors into an organic passability grid.
//
// Every cell is tagged with one of four states. Room interiors, corridor centre lines and the
// outer ring are pinned during initialisation; the remaining cells are seeded by coin flip and
// smoothed by a birth/death rule over their Moore neighbourhood.
package automaton

import (
	"math/rand"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/edges"
	"dungeongen/pkg/game/room"
)

// Automaton holds the cell grid for one rasterization
type Automaton struct {
	opts  Options
	rng   *rand.Rand
	cells *world.Grid[CellState]
	next  *world.Grid[CellState]
}

// Rasterize runs the automaton with a generator seeded from opts.Seed.
// opts is expected to have passed Validate.
func Rasterize(opts Options, rooms []*room.Room, links []edges.Edge) *world.Grid[bool] {
	return RasterizeWith(rand.New(rand.NewSource(opts.Seed)), opts, rooms, links)
}

// RasterizeWith runs the automaton drawing from rng and returns true for every floor cell
func RasterizeWith(rng *rand.Rand, opts Options, rooms []*room.Room, links []edges.Edge) *world.Grid[bool] {
	a := New(rng, opts)
	a.Init(rooms, links)
	for i := 0; i < opts.Steps; i++ {
		a.Step()
	}
	return a.Bools()
}

// New creates an automaton with every cell Dead
func New(rng *rand.Rand, opts Options) *Automaton {
	return &Automaton{
		opts:  opts,
		rng:   rng,
		cells: world.NewGrid[CellState](opts.Width, opts.Height),
		next:  world.NewGrid[CellState](opts.Width, opts.Height),
	}
}

// Init sets the starting state of every cell. Later passes override earlier ones.
func (a *Automaton) Init(rooms []*room.Room, links []edges.Edge) {
	for _, r := range rooms {
		a.seedRoom(r)
	}
	for _, r := range rooms {
		a.wallOff(r.Original)
	}
	for _, e := range links {
		a.carve(rooms[e.From.Room].Center(), rooms[e.To.Room].Center())
	}
	for _, r := range rooms {
		a.cells.Fill(r.Current, AlwaysAlive)
	}
	a.wallOff(a.cells.Bounds())
}

// Step applies one generation of the birth/death rule against a snapshot of the grid
func (a *Automaton) Step() {
	a.next.CopyFrom(a.cells)

	a.cells.ForEachCell(func(x, y int, s CellState) {
		if s.Pinned() {
			return
		}

		n := a.aliveNeighbours(x, y)
		switch s {
		case Alive:
			if n < a.opts.DeathLimit {
				a.next.Set(x, y, Dead)
			}
		case Dead:
			if n > a.opts.BirthLimit {
				a.next.Set(x, y, Alive)
			}
		}
	})

	a.cells, a.next = a.next, a.cells
}

// State returns the state of a cell. Positions outside the grid report Dead.
func (a *Automaton) State(x, y int) CellState {
	return a.cells.At(x, y)
}

// Bools maps the grid to passability
func (a *Automaton) Bools() *world.Grid[bool] {
	return world.Map(a.cells, CellState.Passable)
}

// aliveNeighbours counts passable cells in the Moore neighbourhood. Off-grid counts as alive.
func (a *Automaton) aliveNeighbours(x, y int) int {
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !a.cells.IsValidPosition(nx, ny) || a.cells.At(nx, ny).Passable() {
				count++
			}
		}
	}
	return count
}

// roll draws a transient state
func (a *Automaton) roll() CellState {
	if a.rng.Float64() > a.opts.InitialChance {
		return Alive
	}
	return Dead
}

// seedRoom flips a coin for every cell around the room's current bounds, never leaving its
// original footprint or the grid
func (a *Automaton) seedRoom(r *room.Room) {
	area := r.Current.Inset(a.opts.RoomBoundaryDistance).
		Intersect(r.Original).
		Intersect(a.cells.Bounds())

	for x := area.X; x < area.MaxX(); x++ {
		for y := area.Y; y < area.MaxY(); y++ {
			a.cells.Set(x, y, a.roll())
		}
	}
}

// wallOff pins the one-cell perimeter of r as AlwaysDead
func (a *Automaton) wallOff(r world.Rect) {
	if r.Empty() {
		return
	}
	for x := r.X; x < r.MaxX(); x++ {
		a.cells.Set(x, r.Y, AlwaysDead)
		a.cells.Set(x, r.MaxY()-1, AlwaysDead)
	}
	for y := r.Y; y < r.MaxY(); y++ {
		a.cells.Set(r.X, y, AlwaysDead)
		a.cells.Set(r.MaxX()-1, y, AlwaysDead)
	}
}

// carve lays an L-shaped corridor between two points. A coin flip picks which axis goes first.
func (a *Automaton) carve(from, to world.Point) {
	cur := from
	if a.rng.Float64() > 0.5 {
		cur = a.walkX(cur, to.X)
		a.walkY(cur, to.Y)
	} else {
		cur = a.walkY(cur, to.Y)
		a.walkX(cur, to.X)
	}
}

// walkX moves along x to target, laying a vertical band at every step
func (a *Automaton) walkX(cur world.Point, target int) world.Point {
	step := 1
	if cur.X > target {
		step = -1
	}
	for cur.X != target {
		cur.X += step
		a.band(cur, 0, 1)
	}
	return cur
}

// walkY moves along y to target, laying a horizontal band at every step
func (a *Automaton) walkY(cur world.Point, target int) world.Point {
	step := 1
	if cur.Y > target {
		step = -1
	}
	for cur.Y != target {
		cur.Y += step
		a.band(cur, 1, 0)
	}
	return cur
}

// band pins c and re-rolls the cells at offsets [-d, d) along (dx, dy) that are not pinned alive
func (a *Automaton) band(c world.Point, dx, dy int) {
	a.cells.Set(c.X, c.Y, AlwaysAlive)

	d := a.opts.PathBoundaryDistance
	for i := -d; i < d; i++ {
		if i == 0 {
			continue
		}
		x, y := c.X+i*dx, c.Y+i*dy
		if !a.cells.IsValidPosition(x, y) || a.cells.At(x, y) == AlwaysAlive {
			continue
		}
		a.cells.Set(x, y, a.roll())
	}
}
