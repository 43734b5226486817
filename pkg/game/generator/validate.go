package generator

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/world"
)

// ErrUnreachable is returned when the exit cannot be walked to from the spawn
var ErrUnreachable = errors.New("exit unreachable")

// Validate checks that the spawn and exit are floor and joined by a walkable path
func Validate(d *Dungeon) error {
	spawn, exit := d.SpawnCell(), d.ExitCell()
	if !d.Passable(spawn) {
		return fmt.Errorf("%w: spawn %v is a wall", ErrUnreachable, spawn)
	}
	if !d.Passable(exit) {
		return fmt.Errorf("%w: exit %v is a wall", ErrUnreachable, exit)
	}

	reachable := Reachable(d.Grid, spawn)
	if !reachable.Has(exit) {
		return fmt.Errorf("%w: %v not reachable from %v (%d cells explored)", ErrUnreachable, exit, spawn, reachable.Size())
	}
	return nil
}

// Reachable returns every floor cell connected to start through N/E/S/W steps
func Reachable(grid *world.Grid[bool], start world.Point) *mapset.Set[world.Point] {
	reachable := mapset.New[world.Point]()
	queue := []world.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !grid.At(current.X, current.Y) || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, dir := range world.AllDirections() {
			dx, dy := dir.Delta()
			n := current.Add(dx, dy)
			if grid.At(n.X, n.Y) && !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return &reachable
}
