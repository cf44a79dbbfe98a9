package labels

import (
	"testing"

	"github.com/tugberkcapraz/incdbscan/internal/objectstore"
)

func TestFreshIdentityMonotone(t *testing.T) {
	r := New()
	a := r.FreshIdentity()
	b := r.FreshIdentity()
	if a == b {
		t.Fatalf("expected distinct identities, got %d and %d", a, b)
	}
	if b <= a {
		t.Errorf("expected monotonically increasing identities, got %d then %d", a, b)
	}
}

func TestSetAndGet(t *testing.T) {
	r := New()
	id := r.FreshIdentity()
	p := &objectstore.Point{Coord: []float64{1, 1}, Label: objectstore.NoLabel}
	r.Set(p, id)
	if got := r.Get(p); got != id {
		t.Errorf("Get() = %d, want %d", got, id)
	}
	if r.Size(id) != 1 {
		t.Errorf("Size(id) = %d, want 1", r.Size(id))
	}
}

func TestSetMovesMembership(t *testing.T) {
	r := New()
	a := r.FreshIdentity()
	b := r.FreshIdentity()
	p := &objectstore.Point{Coord: []float64{0, 0}}
	r.Set(p, a)
	r.Set(p, b)
	if r.Size(a) != 0 {
		t.Errorf("expected identity a to lose its member, Size(a)=%d", r.Size(a))
	}
	if r.Size(b) != 1 {
		t.Errorf("expected identity b to gain the member, Size(b)=%d", r.Size(b))
	}
}

func TestSetNoise(t *testing.T) {
	r := New()
	id := r.FreshIdentity()
	p := &objectstore.Point{Coord: []float64{0, 0}}
	r.Set(p, id)
	r.Set(p, Noise)
	if r.Get(p) != Noise {
		t.Errorf("expected Noise label")
	}
	if r.Size(id) != 0 {
		t.Errorf("expected identity to lose the now-noise member")
	}
}

func TestMembersOfOrder(t *testing.T) {
	r := New()
	id := r.FreshIdentity()
	p1 := &objectstore.Point{Coord: []float64{2, 0}}
	p2 := &objectstore.Point{Coord: []float64{1, 0}}
	p3 := &objectstore.Point{Coord: []float64{1, 5}}
	r.Set(p1, id)
	r.Set(p2, id)
	r.Set(p3, id)

	members := r.MembersOf(id)
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(members))
	}
	for i := 1; i < len(members); i++ {
		if !LexLess(members[i-1].Coord, members[i].Coord) && !coordsEqual(members[i-1].Coord, members[i].Coord) {
			t.Errorf("MembersOf should be lexicographically sorted: %v before %v", members[i-1].Coord, members[i].Coord)
		}
	}
}

func coordsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestForget(t *testing.T) {
	r := New()
	id := r.FreshIdentity()
	p := &objectstore.Point{Coord: []float64{0, 0}}
	r.Set(p, id)
	r.Forget(p)
	if r.Size(id) != 0 {
		t.Errorf("expected Forget to remove the point from the reverse index")
	}
}

func TestRetire(t *testing.T) {
	r := New()
	id := r.FreshIdentity()
	r.Retire(id)
	if members := r.MembersOf(id); len(members) != 0 {
		t.Errorf("expected no members after Retire, got %d", len(members))
	}
}

func TestLexLess(t *testing.T) {
	cases := []struct {
		a, b []float64
		want bool
	}{
		{[]float64{0, 0}, []float64{0, 1}, true},
		{[]float64{1, 0}, []float64{0, 1}, false},
		{[]float64{1}, []float64{1, 0}, true},
		{[]float64{1, 0}, []float64{1, 0}, false},
	}
	for _, c := range cases {
		if got := LexLess(c.a, c.b); got != c.want {
			t.Errorf("LexLess(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
