// Package edges picks the corridors that connect every room: a minimum spanning tree over
// the room adjacency graph, weighted by the Manhattan distance between room centres.
package edges

import (
	"slices"

	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/game/room"
)

// Vertex wraps a room for graph purposes
type Vertex struct {
	Room int // index into the room slice
}

// Edge is an undirected connection between two rooms
type Edge struct {
	From     Vertex
	To       Vertex
	Distance int
}

// Equal reports whether two edges join the same pair of rooms, in either direction
func (e Edge) Equal(o Edge) bool {
	return (e.From == o.From && e.To == o.To) || (e.From == o.To && e.To == o.From)
}

// key returns the direction-independent identity of the edge
func (e Edge) key() pairKey {
	a, b := e.From.Room, e.To.Room
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

type pairKey struct {
	lo, hi int
}

// Distance returns the Manhattan distance between the centres of two rooms
func Distance(a, b *room.Room) int {
	return a.Center().Manhattan(b.Center())
}

// Candidates returns one edge per adjacent room pair, sorted by ascending distance.
// Ties keep the order in which pairs were first seen.
func Candidates(rooms []*room.Room) []Edge {
	var candidates []Edge
	seen := mapset.New[pairKey]()

	for i, r := range rooms {
		for _, j := range r.AdjacentRooms() {
			e := Edge{
				From:     Vertex{Room: i},
				To:       Vertex{Room: j},
				Distance: Distance(r, rooms[j]),
			}

			// The reverse direction was already added from the other room
			if seen.Has(e.key()) {
				continue
			}
			seen.Put(e.key())
			candidates = append(candidates, e)
		}
	}

	slices.SortStableFunc(candidates, func(a, b Edge) int {
		return a.Distance - b.Distance
	})
	return candidates
}

// Select returns the minimum spanning tree of the room adjacency graph.
// A connected graph of n rooms yields exactly n-1 edges.
func Select(rooms []*room.Room) []Edge {
	var tree []Edge
	if len(rooms) < 2 {
		return tree
	}

	forest := newForest(len(rooms))
	for _, e := range Candidates(rooms) {
		if !forest.union(e.From.Room, e.To.Room) {
			// Would close a cycle
			continue
		}
		tree = append(tree, e)
		if len(tree) == len(rooms)-1 {
			break
		}
	}
	return tree
}

// forest is a union-find over vertex indices, scoped to one selection
type forest struct {
	sets []*disjoint.Element
}

func newForest(n int) *forest {
	f := &forest{sets: make([]*disjoint.Element, n)}
	for i := range f.sets {
		f.sets[i] = disjoint.NewElement()
	}
	return f
}

// connected reports whether a and b are in the same component
func (f *forest) connected(a, b int) bool {
	return f.sets[a].Find() == f.sets[b].Find()
}

// union merges the components of a and b. Returns false if they were already joined.
func (f *forest) union(a, b int) bool {
	if f.connected(a, b) {
		return false
	}
	disjoint.Union(f.sets[a], f.sets[b])
	return true
}
