// Package room defines the rectangular rooms shared by every generation stage.
package room

import (
	"dungeongen/pkg/engine/world"
)

// Room is a partition cell. Original is the footprint the partitioner produced and never
// changes; Current starts equal to it and may be shrunk before rasterization.
type Room struct {
	Original world.Rect
	Current  world.Rect

	// Adjacent holds, per direction, indices into the room slice the partitioner returned.
	// It is filled once during partitioning.
	Adjacent [4][]int
}

// New creates a room whose original and current bounds are r
func New(r world.Rect) *Room {
	return &Room{Original: r, Current: r}
}

// Center returns the centre of the current bounds (integer division)
func (r *Room) Center() world.Point {
	return world.Point{
		X: r.Current.X + r.Current.W/2,
		Y: r.Current.Y + r.Current.H/2,
	}
}

// Area returns the area of the current bounds
func (r *Room) Area() int {
	return r.Current.Area()
}

// Equal reports whether two rooms have identical current bounds
func (r *Room) Equal(other *Room) bool {
	if other == nil {
		return false
	}
	return r.Current == other.Current
}

// Neighbors returns the adjacency list for one direction
func (r *Room) Neighbors(dir world.Direction) []int {
	if !dir.IsValid() {
		return nil
	}
	return r.Adjacent[dir]
}

// AddNeighbor records idx as adjacent in the given direction
func (r *Room) AddNeighbor(dir world.Direction, idx int) {
	r.Adjacent[dir] = append(r.Adjacent[dir], idx)
}

// AdjacentRooms returns every adjacent room index: north, south, east, then west
func (r *Room) AdjacentRooms() []int {
	var rooms []int
	rooms = append(rooms, r.Adjacent[world.North]...)
	rooms = append(rooms, r.Adjacent[world.South]...)
	rooms = append(rooms, r.Adjacent[world.East]...)
	rooms = append(rooms, r.Adjacent[world.West]...)
	return rooms
}

// Shrink pulls the current bounds in from each side. Original is left untouched.
func (r *Room) Shrink(left, right, top, bottom int) {
	r.Current.X += left
	r.Current.Y += bottom
	r.Current.W -= left + right
	r.Current.H -= top + bottom
}
