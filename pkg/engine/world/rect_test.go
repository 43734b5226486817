package world

import "testing"

func TestRect_Inset(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if got, want := r.Inset(1), NewRect(1, 2, 6, 7); got != want {
		t.Errorf("Inset(1) = %v, want %v", got, want)
	}
	if got, want := r.Inset(-1), NewRect(3, 4, 2, 3); got != want {
		t.Errorf("Inset(-1) = %v, want %v", got, want)
	}
}

func TestRect_Intersect(t *testing.T) {
	a := NewRect(0, 0, 5, 5)
	b := NewRect(3, 2, 5, 5)
	if got, want := a.Intersect(b), NewRect(3, 2, 2, 3); got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}

	far := NewRect(10, 10, 2, 2)
	if got := a.Intersect(far); !got.Empty() {
		t.Errorf("Intersect(disjoint) = %v, want empty", got)
	}
	if a.Overlaps(far) {
		t.Errorf("Overlaps(disjoint) = true, want false")
	}

	// Sharing only an edge is not an overlap
	edge := NewRect(5, 0, 2, 5)
	if a.Overlaps(edge) {
		t.Errorf("Overlaps(edge) = true, want false")
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(1, 1, 3, 2)
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{1, 1}, true},
		{Point{3, 2}, true},
		{Point{4, 2}, false},
		{Point{3, 3}, false},
		{Point{0, 1}, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.p, got, c.want)
		}
	}

	if !r.ContainsRect(NewRect(2, 1, 2, 2)) {
		t.Errorf("ContainsRect(inner) = false, want true")
	}
	if r.ContainsRect(NewRect(2, 1, 3, 2)) {
		t.Errorf("ContainsRect(overhanging) = true, want false")
	}
}

func TestRect_Area(t *testing.T) {
	if got := NewRect(0, 0, 3, 4).Area(); got != 12 {
		t.Errorf("Area = %d, want 12", got)
	}
	if got := NewRect(0, 0, -1, 4).Area(); got != 0 {
		t.Errorf("Area(negative width) = %d, want 0", got)
	}
}

func TestPoint_Manhattan(t *testing.T) {
	if got := (Point{1, 2}).Manhattan(Point{4, -2}); got != 7 {
		t.Errorf("Manhattan = %d, want 7", got)
	}
}

func TestStrings(t *testing.T) {
	if got := NewRect(1, 2, 3, 4).String(); got != "(1,2 3x4)" {
		t.Errorf("Rect.String() = %q", got)
	}
	if got := (Point{5, 6}).String(); got != "5,6" {
		t.Errorf("Point.String() = %q", got)
	}
}
