// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

const mapDumpFilename = "map.txt"

// WriteDump writes a full debug dump of d: metadata, legend, map, rooms and edges.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func WriteDump(w io.Writer, d *generator.Dungeon) error {
	if d == nil || d.Grid == nil {
		return fmt.Errorf("no grid")
	}

	var b strings.Builder
	o := d.Options
	spawn, exit := d.SpawnCell(), d.ExitCell()

	// --- Metadata (seed, size, rules) ---
	fmt.Fprintln(&b, "=== MAP DUMP DEBUG (partition, corridors, automaton) ===")
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Metadata ---")
	fmt.Fprintf(&b, "seed: %d\n", d.Seed)
	fmt.Fprintf(&b, "grid_width: %d\n", d.Grid.Width())
	fmt.Fprintf(&b, "grid_height: %d\n", d.Grid.Height())
	fmt.Fprintf(&b, "coordinate_system: x,y (0-based, x=east, y=north; map printed north first)\n")
	fmt.Fprintf(&b, "splits: %d\n", o.Splits)
	fmt.Fprintf(&b, "shrink: %v..%v\n", o.Shrink.Min, o.Shrink.Max)
	fmt.Fprintf(&b, "death_limit: %d\n", o.DeathLimit)
	fmt.Fprintf(&b, "birth_limit: %d\n", o.BirthLimit)
	fmt.Fprintf(&b, "initial_chance: %v\n", o.InitialChance)
	fmt.Fprintf(&b, "room_boundary_distance: %d\n", o.RoomBoundaryDistance)
	fmt.Fprintf(&b, "path_boundary_distance: %d\n", o.PathBoundaryDistance)
	fmt.Fprintf(&b, "steps: %d\n", o.Steps)
	fmt.Fprintf(&b, "spawn_room: %d\n", d.Spawn)
	fmt.Fprintf(&b, "spawn_cell: %s\n", spawn)
	fmt.Fprintf(&b, "exit_room: %d\n", d.Exit)
	fmt.Fprintf(&b, "exit_cell: %s\n", exit)
	fmt.Fprintf(&b, "floor_cells: %d\n", countFloor(d.Grid))
	fmt.Fprintln(&b, "")

	// --- Legend ---
	fmt.Fprintln(&b, "--- Legend (cell symbols) ---")
	var legend []string
	for _, t := range renderer.AllTiles() {
		legend = append(legend, fmt.Sprintf("%s = %s", t.Icon(), t.Name()))
	}
	fmt.Fprintln(&b, strings.Join(legend, "  "))
	fmt.Fprintln(&b, "")

	// --- Map ---
	fmt.Fprintln(&b, "--- Map ---")
	b.WriteString(renderer.Text(d))
	fmt.Fprintln(&b, "")

	// --- Rooms ---
	fmt.Fprintln(&b, "--- Rooms (original and current bounds, adjacency by index) ---")
	for i, r := range d.Rooms {
		fmt.Fprintf(&b, "  room: %d original: %s current: %s center: %s", i, r.Original, r.Current, r.Center())
		for _, dir := range world.AllDirections() {
			fmt.Fprintf(&b, " %s: %v", strings.ToLower(dir.String()), r.Neighbors(dir))
		}
		fmt.Fprintln(&b)
	}
	fmt.Fprintln(&b, "")

	// --- Edges ---
	fmt.Fprintln(&b, "--- Edges (spanning tree) ---")
	if len(d.Edges) == 0 {
		fmt.Fprintln(&b, "  (none)")
	}
	for _, e := range d.Edges {
		fmt.Fprintf(&b, "  from: %d to: %d distance: %d\n", e.From.Room, e.To.Room, e.Distance)
	}
	fmt.Fprintln(&b, "")

	// --- Reachability ---
	fmt.Fprintln(&b, "--- Reachability ---")
	reachable := generator.Reachable(d.Grid, spawn)
	fmt.Fprintf(&b, "reachable_from_spawn: %d\n", reachable.Size())
	fmt.Fprintf(&b, "exit_reachable: %v\n", reachable.Has(exit))
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "=== END MAP DUMP ===")

	_, err := io.WriteString(w, b.String())
	return err
}

// DumpToFile writes the dump to path, or to map.txt in the working directory when path is empty.
// It returns the absolute path written.
func DumpToFile(d *generator.Dungeon, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, d); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

func countFloor(g *world.Grid[bool]) int {
	n := 0
	g.ForEachCell(func(_, _ int, floor bool) {
		if floor {
			n++
		}
	})
	return n
}
