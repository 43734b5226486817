// Package shrink pulls each room's current bounds in from its partition cell so the
// automaton has space between rooms for walls and corridors.
package shrink

import (
	"errors"
	"fmt"
	"math/rand"

	"dungeongen/pkg/game/room"
)

// ErrInvalidRange is wrapped when a shrink range is out of bounds
var ErrInvalidRange = errors.New("invalid shrink range")

// Range is the band shrink fractions are drawn from, per side
type Range struct {
	Min float64 `env:"MIN" envDefault:"0.1"`
	Max float64 `env:"MAX" envDefault:"0.25"`
}

// Validate checks both ends lie in [0,1] and Min does not exceed Max
func (r Range) Validate() error {
	if r.Min < 0 || r.Min > 1 || r.Max < 0 || r.Max > 1 {
		return fmt.Errorf("%w: [%v, %v] must lie within [0,1]", ErrInvalidRange, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %v above max %v", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// draw returns a fraction in [Min, Max)
func (r Range) draw(rng *rand.Rand) float64 {
	return rng.Float64()*(r.Max-r.Min) + r.Min
}

// Apply shrinks every room in order. Each room draws left, right, top then bottom.
// Rooms at least 1x1 before the shrink stay at least 1x1.
func Apply(rng *rand.Rand, rooms []*room.Room, r Range) {
	for _, rm := range rooms {
		w, h := rm.Current.W, rm.Current.H

		left := int(float64(w) * r.draw(rng))
		right := int(float64(w) * r.draw(rng))
		top := int(float64(h) * r.draw(rng))
		bottom := int(float64(h) * r.draw(rng))

		left, right = fit(w, left, right)
		bottom, top = fit(h, bottom, top)

		rm.Shrink(left, right, top, bottom)
	}
}

// fit trims a pair of shrinks so at least one cell of size survives, taking from b first
func fit(size, a, b int) (int, int) {
	if size < 1 {
		return 0, 0
	}
	excess := a + b - (size - 1)
	if excess <= 0 {
		return a, b
	}
	cut := min(excess, b)
	b -= cut
	a -= excess - cut
	return a, b
}
