package domain

import (
	"testing"
)

func TestSystemDistanceTo(t *testing.T) {
	a := &System{Name: "A", X: 1, Y: 2, Z: 3}
	b := &System{Name: "B", X: 4, Y: 6, Z: 15}

	// 3-4-12 right triangle in 3D: distance 13.
	if got := a.DistanceTo(b); got != 13 {
		t.Fatalf("DistanceTo = %v, want 13", got)
	}
	if got := b.DistanceTo(a); got != 13 {
		t.Fatalf("distance must be symmetric, got %v", got)
	}
	if got := a.DistanceTo(a); got != 0 {
		t.Fatalf("self distance = %v, want 0", got)
	}
}

func TestParseRouteMode(t *testing.T) {
	for _, valid := range []string{"loop", "end_at_last", "open"} {
		mode, err := ParseRouteMode(valid)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", valid, err)
		}
		if string(mode) != valid {
			t.Fatalf("mode = %q, want %q", mode, valid)
		}
	}

	if _, err := ParseRouteMode("roundtrip"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestCostMatrixSetMirrors(t *testing.T) {
	m := NewCostMatrix(3)
	m.Set(0, 2, 12.5, 2)

	if m.Distance(2, 0) != 12.5 {
		t.Fatalf("mirrored distance = %v, want 12.5", m.Distance(2, 0))
	}
	if m.Jumps(2, 0) != 2 {
		t.Fatalf("mirrored jumps = %d, want 2", m.Jumps(2, 0))
	}
	if m.Len() != 3 {
		t.Fatalf("len = %d, want 3", m.Len())
	}
}
