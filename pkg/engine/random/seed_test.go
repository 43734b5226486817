package random

import "testing"

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}
	if a == 0 || b == 0 {
		t.Errorf("NewSeed() returned zero")
	}
	if a == b {
		t.Errorf("two seeds both %d", a)
	}
}

func TestResolve(t *testing.T) {
	if got, err := Resolve(42); err != nil || got != 42 {
		t.Errorf("Resolve(42) = %d, %v, want 42, nil", got, err)
	}
	got, err := Resolve(0)
	if err != nil {
		t.Fatalf("Resolve(0) error = %v", err)
	}
	if got == 0 {
		t.Errorf("Resolve(0) = 0, want a drawn seed")
	}
}
