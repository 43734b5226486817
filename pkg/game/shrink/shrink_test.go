package shrink

import (
	"errors"
	"math/rand"
	"testing"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/partition"
	"dungeongen/pkg/game/room"
)

func TestRange_Validate(t *testing.T) {
	cases := []struct {
		r     Range
		valid bool
	}{
		{Range{0, 0}, true},
		{Range{0.1, 0.25}, true},
		{Range{1, 1}, true},
		{Range{-0.1, 0.5}, false},
		{Range{0.2, 1.5}, false},
		{Range{0.6, 0.4}, false},
	}
	for _, c := range cases {
		err := c.r.Validate()
		if c.valid && err != nil {
			t.Errorf("%+v.Validate() = %v, want nil", c.r, err)
		}
		if !c.valid && !errors.Is(err, ErrInvalidRange) {
			t.Errorf("%+v.Validate() = %v, want ErrInvalidRange", c.r, err)
		}
	}
}

func TestApply_KeepsCurrentInsideOriginal(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	rooms := partition.Split(rng, world.NewRect(0, 0, 100, 70), 5)
	Apply(rng, rooms, Range{Min: 0.1, Max: 0.4})

	for i, r := range rooms {
		if !r.Original.ContainsRect(r.Current) {
			t.Errorf("room %d current %v escapes original %v", i, r.Current, r.Original)
		}
		if r.Current.W < 1 || r.Current.H < 1 {
			t.Errorf("room %d current %v smaller than 1x1", i, r.Current)
		}
	}
}

func TestApply_ZeroRangeIsNoop(t *testing.T) {
	rooms := []*room.Room{room.New(world.NewRect(3, 4, 20, 10))}
	Apply(rand.New(rand.NewSource(1)), rooms, Range{})
	if rooms[0].Current != rooms[0].Original {
		t.Errorf("Current = %v, want %v", rooms[0].Current, rooms[0].Original)
	}
}

func TestApply_DrawOrder(t *testing.T) {
	r := Range{Min: 0.1, Max: 0.3}
	rooms := []*room.Room{room.New(world.NewRect(0, 0, 40, 20))}
	Apply(rand.New(rand.NewSource(77)), rooms, r)

	ref := rand.New(rand.NewSource(77))
	left := int(40 * r.draw(ref))
	right := int(40 * r.draw(ref))
	top := int(20 * r.draw(ref))
	bottom := int(20 * r.draw(ref))

	want := world.NewRect(left, bottom, 40-left-right, 20-top-bottom)
	if rooms[0].Current != want {
		t.Errorf("Current = %v, want %v", rooms[0].Current, want)
	}
}

func TestApply_FullRangeLeavesOneCell(t *testing.T) {
	rooms := []*room.Room{room.New(world.NewRect(0, 0, 9, 7))}
	Apply(rand.New(rand.NewSource(2)), rooms, Range{Min: 1, Max: 1})

	got := rooms[0].Current
	if got.W != 1 || got.H != 1 {
		t.Errorf("Current = %v, want 1x1", got)
	}
	if !rooms[0].Original.ContainsRect(got) {
		t.Errorf("Current %v escapes original %v", got, rooms[0].Original)
	}
}

func TestFit(t *testing.T) {
	cases := []struct {
		size, a, b   int
		wantA, wantB int
	}{
		{size: 10, a: 2, b: 3, wantA: 2, wantB: 3},
		{size: 10, a: 5, b: 5, wantA: 5, wantB: 4},
		{size: 10, a: 9, b: 9, wantA: 9, wantB: 0},
		{size: 10, a: 10, b: 10, wantA: 9, wantB: 0},
		{size: 1, a: 0, b: 1, wantA: 0, wantB: 0},
		{size: 0, a: 0, b: 0, wantA: 0, wantB: 0},
	}
	for _, c := range cases {
		a, b := fit(c.size, c.a, c.b)
		if a != c.wantA || b != c.wantB {
			t.Errorf("fit(%d, %d, %d) = %d, %d, want %d, %d", c.size, c.a, c.b, a, b, c.wantA, c.wantB)
		}
	}
}
