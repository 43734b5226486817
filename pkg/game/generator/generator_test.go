package generator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

func testOptions(seed int64) generator.Options {
	opts := generator.DefaultOptions()
	opts.Seed = seed
	opts.Width = 80
	opts.Height = 50
	return opts
}

func TestGenerate(t *testing.T) {
	t.Run("room and edge counts", func(t *testing.T) {
		d, err := generator.Generate(testOptions(3))
		require.NoError(t, err)

		assert.Len(t, d.Rooms, 1<<d.Options.Splits)
		assert.Len(t, d.Edges, len(d.Rooms)-1)
		assert.Equal(t, 80, d.Grid.Width())
		assert.Equal(t, 50, d.Grid.Height())
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := generator.Generate(testOptions(11))
		require.NoError(t, err)
		b, err := generator.Generate(testOptions(11))
		require.NoError(t, err)

		assert.True(t, world.Equal(a.Grid, b.Grid))
		assert.Equal(t, a.Spawn, b.Spawn)
		assert.Equal(t, a.Exit, b.Exit)
		assert.Equal(t, a.Edges, b.Edges)
		for i := range a.Rooms {
			assert.Equal(t, a.Rooms[i].Current, b.Rooms[i].Current)
		}
	})

	t.Run("rooms shrink inside their cells", func(t *testing.T) {
		d, err := generator.Generate(testOptions(5))
		require.NoError(t, err)

		for _, r := range d.Rooms {
			assert.True(t, r.Original.ContainsRect(r.Current), "current %v outside original %v", r.Current, r.Original)
		}
	})

	t.Run("room interiors are floor and the ring is wall", func(t *testing.T) {
		d, err := generator.Generate(testOptions(8))
		require.NoError(t, err)

		d.Grid.ForEachCell(func(x, y int, floor bool) {
			if d.Grid.IsOnPerimeter(x, y) {
				assert.False(t, floor, "ring cell %d,%d", x, y)
			}
		})
		for i, r := range d.Rooms {
			assert.True(t, d.Passable(r.Center()), "room %d centre", i)
		}
	})

	t.Run("zero splits", func(t *testing.T) {
		opts := testOptions(1)
		opts.Splits = 0
		d, err := generator.Generate(opts)
		require.NoError(t, err)

		assert.Len(t, d.Rooms, 1)
		assert.Empty(t, d.Edges)
		assert.Equal(t, 0, d.Spawn)
		assert.Equal(t, 0, d.Exit)
	})

	t.Run("rejects invalid options", func(t *testing.T) {
		opts := testOptions(1)
		opts.Shrink.Max = 2
		_, err := generator.Generate(opts)
		assert.ErrorIs(t, err, generator.ErrInvalidOptions)
	})
}

func TestGenerate_ExitReachable(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		d, err := generator.Generate(testOptions(seed))
		require.NoError(t, err)
		assert.NoError(t, generator.Validate(d), "seed %d", seed)
	}
}

func TestGenerate_ExitAwayFromSpawn(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		d, err := generator.Generate(testOptions(seed))
		require.NoError(t, err)

		assert.NotEqual(t, d.Spawn, d.Exit, "seed %d", seed)

		// With the default percentile the exit is never the closest room
		origin := d.SpawnCell()
		closest := -1
		for i, r := range d.Rooms {
			if i == d.Spawn {
				continue
			}
			if closest < 0 || origin.Manhattan(r.Center()) < origin.Manhattan(d.Rooms[closest].Center()) {
				closest = i
			}
		}
		if origin.Manhattan(d.ExitCell()) != origin.Manhattan(d.Rooms[closest].Center()) {
			assert.NotEqual(t, closest, d.Exit, "seed %d", seed)
		}
	}
}

func TestDungeon_SpawnPositions(t *testing.T) {
	d, err := generator.Generate(testOptions(2))
	require.NoError(t, err)

	c := d.SpawnCell()
	assert.Equal(t, []world.Point{
		{X: c.X + 1, Y: c.Y},
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X, Y: c.Y - 1},
	}, d.SpawnPositions())
}

func TestOptions_Validate(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		assert.NoError(t, generator.DefaultOptions().Validate())
	})

	t.Run("collects every problem", func(t *testing.T) {
		opts := generator.DefaultOptions()
		opts.Splits = -1
		opts.FinishPercentile = 1.2
		opts.Shrink.Min = -0.5
		opts.InitialChance = 2

		err := opts.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, generator.ErrInvalidOptions)

		var joined interface{ Unwrap() []error }
		require.True(t, errors.As(err, &joined))
		assert.Len(t, joined.Unwrap(), 4)
	})

	t.Run("too many splits", func(t *testing.T) {
		opts := generator.DefaultOptions()
		opts.Splits = generator.MaxSplits + 1
		assert.ErrorIs(t, opts.Validate(), generator.ErrInvalidOptions)
	})
}

func TestValidate(t *testing.T) {
	t.Run("walled off exit", func(t *testing.T) {
		d, err := generator.Generate(testOptions(4))
		require.NoError(t, err)

		// Box the exit centre in
		exit := d.ExitCell()
		for _, dir := range world.AllDirections() {
			dx, dy := dir.Delta()
			d.Grid.Set(exit.X+dx, exit.Y+dy, false)
		}
		assert.ErrorIs(t, generator.Validate(d), generator.ErrUnreachable)
	})

	t.Run("spawn on a wall", func(t *testing.T) {
		d, err := generator.Generate(testOptions(4))
		require.NoError(t, err)

		spawn := d.SpawnCell()
		d.Grid.Set(spawn.X, spawn.Y, false)
		assert.ErrorIs(t, generator.Validate(d), generator.ErrUnreachable)
	})
}

func TestReachable(t *testing.T) {
	grid := world.NewGrid[bool](5, 3)
	// Two floor strips split by a wall column
	grid.Fill(world.NewRect(0, 1, 2, 1), true)
	grid.Fill(world.NewRect(3, 0, 2, 3), true)

	left := generator.Reachable(grid, world.Point{X: 0, Y: 1})
	assert.Equal(t, 2, left.Size())
	assert.False(t, left.Has(world.Point{X: 3, Y: 1}))

	right := generator.Reachable(grid, world.Point{X: 4, Y: 2})
	assert.Equal(t, 6, right.Size())

	wall := generator.Reachable(grid, world.Point{X: 2, Y: 1})
	assert.Equal(t, 0, wall.Size())
}

func TestDefaultGenerator(t *testing.T) {
	assert.Equal(t, "Organic", generator.DefaultGenerator.Name())
}
