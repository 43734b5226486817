package generator

import (
	"math/rand"
	"slices"

	"dungeongen/pkg/game/room"
)

// pickLandmarks chooses the spawn room at random and the exit among the rooms furthest
// from it. A single room is both.
func pickLandmarks(rng *rand.Rand, rooms []*room.Room, percentile float64) (spawn, exit int) {
	if len(rooms) < 2 {
		return 0, 0
	}

	spawn = rng.Intn(len(rooms))
	origin := rooms[spawn].Center()

	// Rank every other room by distance from the spawn centre
	var ranked []int
	for i := range rooms {
		if i != spawn {
			ranked = append(ranked, i)
		}
	}
	slices.SortStableFunc(ranked, func(a, b int) int {
		return origin.Manhattan(rooms[a].Center()) - origin.Manhattan(rooms[b].Center())
	})

	lo := min(int(float64(len(ranked))*percentile), len(ranked)-1)
	exit = ranked[lo+rng.Intn(len(ranked)-lo)]
	return spawn, exit
}
