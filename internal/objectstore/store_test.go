package objectstore

import (
	"math"
	"testing"
)

func TestGetOrCreate(t *testing.T) {
	s := New()
	p1, created := s.GetOrCreate([]float64{1, 2})
	if !created {
		t.Fatalf("expected created=true on first call")
	}
	if p1.Label != NoLabel {
		t.Errorf("new point should start with NoLabel, got %d", p1.Label)
	}

	p2, created := s.GetOrCreate([]float64{1, 2})
	if created {
		t.Errorf("expected created=false on second call with equal coordinate")
	}
	if p1 != p2 {
		t.Errorf("expected the same Point object for an equal coordinate")
	}
}

func TestGetOrCreateDistinctFloatBits(t *testing.T) {
	s := New()
	// 0.0 and -0.0 have distinct IEEE-754 bit patterns and so must be
	// treated as distinct coordinates under bitwise equality (§3).
	negZero := math.Copysign(0, -1)
	p1, _ := s.GetOrCreate([]float64{0.0})
	p2, created := s.GetOrCreate([]float64{negZero})
	if !created {
		t.Fatalf("expected -0.0 to be a distinct coordinate from 0.0")
	}
	if p1 == p2 {
		t.Errorf("0.0 and -0.0 must not share a Point object")
	}
}

func TestBumpAndExists(t *testing.T) {
	s := New()
	p, _ := s.GetOrCreate([]float64{5})
	if p.Exists() {
		t.Errorf("freshly created point should not exist until bumped")
	}
	s.Bump(p, 1)
	if !p.Exists() {
		t.Errorf("expected point to exist after Bump(+1)")
	}
	s.Bump(p, -1)
	if p.Exists() {
		t.Errorf("expected point to not exist after count returns to zero")
	}
}

func TestRemove(t *testing.T) {
	s := New()
	coord := []float64{1, 1}
	s.GetOrCreate(coord)
	if s.Len() != 1 {
		t.Fatalf("expected Len()=1, got %d", s.Len())
	}
	s.Remove(coord)
	if s.Len() != 0 {
		t.Fatalf("expected Len()=0 after Remove, got %d", s.Len())
	}
	if _, ok := s.Get(coord); ok {
		t.Errorf("expected Get to report absence after Remove")
	}
}

func TestCore(t *testing.T) {
	p := &Point{NeighborWeight: 3}
	if !p.Core(3) {
		t.Errorf("expected core at NeighborWeight==minPts")
	}
	if p.Core(4) {
		t.Errorf("expected non-core at NeighborWeight<minPts")
	}
}
