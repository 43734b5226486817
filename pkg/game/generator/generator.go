package generator

import (
	"math/rand"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/automaton"
	"dungeongen/pkg/game/edges"
	"dungeongen/pkg/game/partition"
	"dungeongen/pkg/game/room"
	"dungeongen/pkg/game/shrink"
)

// DungeonGenerator is an interface for dungeon generation pipelines
type DungeonGenerator interface {
	Generate(opts Options) (*Dungeon, error)
	Name() string
}

// Available generators
var (
	Organic = &OrganicGenerator{}
)

// DefaultGenerator is the default dungeon generator
var DefaultGenerator DungeonGenerator = Organic

// Generate builds a dungeon with the default generator
func Generate(opts Options) (*Dungeon, error) {
	return DefaultGenerator.Generate(opts)
}

// Dungeon is the result of one generation run
type Dungeon struct {
	Seed    int64
	Options Options

	Rooms []*room.Room
	Edges []edges.Edge

	// Grid is true for floor
	Grid *world.Grid[bool]

	// Spawn and Exit index into Rooms
	Spawn int
	Exit  int
}

// SpawnCell returns the centre of the spawn room
func (d *Dungeon) SpawnCell() world.Point {
	return d.Rooms[d.Spawn].Center()
}

// ExitCell returns the centre of the exit room
func (d *Dungeon) ExitCell() world.Point {
	return d.Rooms[d.Exit].Center()
}

// SpawnPositions returns the four cells orthogonally next to the spawn centre: east, west, north, south
func (d *Dungeon) SpawnPositions() []world.Point {
	c := d.SpawnCell()
	return []world.Point{c.Add(1, 0), c.Add(-1, 0), c.Add(0, 1), c.Add(0, -1)}
}

// Passable reports whether a cell is floor. Off-grid cells are walls.
func (d *Dungeon) Passable(p world.Point) bool {
	return d.Grid.At(p.X, p.Y)
}

// OrganicGenerator partitions the area into rooms, links them with a spanning tree and
// grows caves around them with a cellular automaton
type OrganicGenerator struct{}

// Name returns the name of this generator
func (g *OrganicGenerator) Name() string {
	return "Organic"
}

// Generate validates opts and runs every stage off one generator seeded from opts.Seed
func (g *OrganicGenerator) Generate(opts Options) (*Dungeon, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	// Step 1: Partition the whole grid
	rooms := partition.Split(rng, world.NewRect(0, 0, opts.Width, opts.Height), opts.Splits)

	// Step 2: Pull rooms in from their cells
	shrink.Apply(rng, rooms, opts.Shrink)

	// Step 3: Pick the corridors
	links := edges.Select(rooms)

	// Step 4: Rasterize
	grid := automaton.RasterizeWith(rng, opts.Options, rooms, links)

	// Step 5: Spawn and exit
	spawn, exit := pickLandmarks(rng, rooms, opts.FinishPercentile)

	return &Dungeon{
		Seed:    opts.Seed,
		Options: opts,
		Rooms:   rooms,
		Edges:   links,
		Grid:    grid,
		Spawn:   spawn,
		Exit:    exit,
	}, nil
}
