// Package partition splits a rectangle into a binary tree of rooms and discovers which
// leaves touch across every split boundary.
package partition

import (
	"math/rand"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/room"
)

// Split ratio band, as a fraction of the dimension being cut
const (
	lowerRatio = 0.30
	upperRatio = 0.70
)

// noNode marks an absent child or parent
const noNode = -1

// node is one record in the partition arena
type node struct {
	rect                world.Rect
	parent, left, right int

	// horizontal is the axis used to split this node: bottom/top children when true,
	// left/right children when false
	horizontal bool

	// frontier holds, per direction, the leaves visible along that side, in coordinate order
	frontier [4][]int

	// room is the index into the result slice for leaves
	room int
}

func (n *node) isLeaf() bool {
	return n.left == noNode && n.right == noNode
}

// partitioner owns the arena for a single partition run
type partitioner struct {
	rng   *rand.Rand
	nodes []node
	rooms []*room.Room
}

// Partition splits root with a generator seeded from seed
func Partition(root world.Rect, seed int64, splits int) []*room.Room {
	return Split(rand.New(rand.NewSource(seed)), root, splits)
}

// Split recursively halves root splits levels deep, starting with a horizontal cut and
// alternating the axis per level. It returns the 2^splits leaves with their adjacency
// populated. Split ratios are drawn from rng.
func Split(rng *rand.Rand, root world.Rect, splits int) []*room.Room {
	p := &partitioner{rng: rng}
	head := p.newNode(root, noNode)
	p.split(head, true, splits)

	p.findFrontiers(head)
	p.matchFrontiers(head)

	return p.rooms
}

func (p *partitioner) newNode(r world.Rect, parent int) int {
	p.nodes = append(p.nodes, node{
		rect:   r,
		parent: parent,
		left:   noNode,
		right:  noNode,
		room:   noNode,
	})
	return len(p.nodes) - 1
}

// split divides the node at idx and recurses into both children with one fewer split
func (p *partitioner) split(idx int, horizontal bool, splits int) {
	if splits <= 0 {
		p.nodes[idx].room = len(p.rooms)
		p.rooms = append(p.rooms, room.New(p.nodes[idx].rect))
		return
	}

	ratio := p.rng.Float64()*(upperRatio-lowerRatio) + lowerRatio
	r := p.nodes[idx].rect

	var lower, upper world.Rect
	if horizontal {
		// Bottom room then top room
		h := splitPoint(r.H, ratio)
		lower = world.NewRect(r.X, r.Y, r.W, h)
		upper = world.NewRect(r.X, r.Y+h, r.W, r.H-h)
	} else {
		// Left room then right room
		w := splitPoint(r.W, ratio)
		lower = world.NewRect(r.X, r.Y, w, r.H)
		upper = world.NewRect(r.X+w, r.Y, r.W-w, r.H)
	}

	left := p.newNode(lower, idx)
	right := p.newNode(upper, idx)
	p.nodes[idx].left = left
	p.nodes[idx].right = right
	p.nodes[idx].horizontal = horizontal

	p.split(left, !horizontal, splits-1)
	p.split(right, !horizontal, splits-1)
}

// splitPoint returns the size of the lower child, kept away from 0 and dim when dim allows it
func splitPoint(dim int, ratio float64) int {
	cut := int(float64(dim) * ratio)
	if dim >= 2 {
		cut = max(1, min(cut, dim-1))
	}
	return cut
}

// findFrontiers fills every node's frontier lists bottom-up
func (p *partitioner) findFrontiers(idx int) {
	n := &p.nodes[idx]
	if n.isLeaf() {
		for _, dir := range world.AllDirections() {
			n.frontier[dir] = []int{idx}
		}
		return
	}

	left, right := n.left, n.right
	p.findFrontiers(left)
	p.findFrontiers(right)

	// Children are appended above, so re-take the pointers
	n = &p.nodes[idx]
	l, r := &p.nodes[left], &p.nodes[right]

	if n.horizontal {
		// l is the bottom child, r the top child
		n.frontier[world.North] = concat(r.frontier[world.North])
		n.frontier[world.South] = concat(l.frontier[world.South])
		n.frontier[world.East] = concat(l.frontier[world.East], r.frontier[world.East])
		n.frontier[world.West] = concat(l.frontier[world.West], r.frontier[world.West])
	} else {
		// l is the west child, r the east child
		n.frontier[world.West] = concat(l.frontier[world.West])
		n.frontier[world.East] = concat(r.frontier[world.East])
		n.frontier[world.North] = concat(l.frontier[world.North], r.frontier[world.North])
		n.frontier[world.South] = concat(l.frontier[world.South], r.frontier[world.South])
	}
}

// matchFrontiers links the leaves facing each other across every split, bottom-up
func (p *partitioner) matchFrontiers(idx int) {
	n := p.nodes[idx]
	if n.isLeaf() {
		return
	}

	p.matchFrontiers(n.left)
	p.matchFrontiers(n.right)

	l, r := p.nodes[n.left], p.nodes[n.right]
	if n.horizontal {
		// Bottom child's north side meets the top child's south side; leaves are ordered by x
		p.sweep(l.frontier[world.North], r.frontier[world.South], world.North, func(rc world.Rect) int {
			return rc.MaxX()
		})
	} else {
		// West child's east side meets the east child's west side; leaves are ordered by y
		p.sweep(l.frontier[world.East], r.frontier[world.West], world.East, func(rc world.Rect) int {
			return rc.MaxY()
		})
	}
}

// sweep walks two frontiers that cover the same boundary segment and links every pair of
// leaves whose spans overlap. dir is the direction from a lower leaf to its partner.
func (p *partitioner) sweep(lower, upper []int, dir world.Direction, end func(world.Rect) int) {
	i, j := 0, 0
	for i < len(lower) && j < len(upper) {
		a := p.nodes[lower[i]]
		b := p.nodes[upper[j]]

		p.link(a.room, b.room, dir)

		aEnd, bEnd := end(a.rect), end(b.rect)
		switch {
		case aEnd < bEnd:
			i++
		case aEnd > bEnd:
			j++
		default:
			i++
			j++
		}
	}
}

// link records a symmetric adjacency between two rooms
func (p *partitioner) link(from, to int, dir world.Direction) {
	p.rooms[from].AddNeighbor(dir, to)
	p.rooms[to].AddNeighbor(dir.Opposite(), from)
}

func concat(lists ...[]int) []int {
	var out []int
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
