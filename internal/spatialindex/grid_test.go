package spatialindex

import (
	"sort"
	"testing"

	"github.com/tugberkcapraz/incdbscan/internal/metric"
)

func coordKeysOf(coords [][]float64) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = coordKey(c)
	}
	sort.Strings(out)
	return out
}

func TestPutIdempotent(t *testing.T) {
	ix := New(1.0, metric.New(metric.L2))
	ix.Put([]float64{0, 0})
	ix.Put([]float64{0, 0})
	if ix.Len() != 1 {
		t.Errorf("expected Len()=1 after duplicate Put, got %d", ix.Len())
	}
}

func TestQueryFindsNearbyAcrossCellBoundary(t *testing.T) {
	ix := New(1.0, metric.New(metric.L2))
	// These two points straddle a cell boundary (cell size 1.0) but are
	// within eps of each other, exercising the 3^d neighbor-cell window.
	a := []float64{0.9, 0.9}
	b := []float64{1.1, 1.1}
	ix.Put(a)
	ix.Put(b)

	got := coordKeysOf(ix.Query(a))
	want := coordKeysOf([][]float64{a, b})
	if len(got) != len(want) {
		t.Fatalf("Query(a) = %d results, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Query(a)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQueryExcludesFarPoints(t *testing.T) {
	ix := New(1.0, metric.New(metric.L2))
	near := []float64{0, 0}
	far := []float64{10, 10}
	ix.Put(near)
	ix.Put(far)

	got := ix.Query(near)
	if len(got) != 1 {
		t.Fatalf("Query(near) = %d results, want 1", len(got))
	}
}

func TestDropRemovesFromIndex(t *testing.T) {
	ix := New(1.0, metric.New(metric.L2))
	coord := []float64{0, 0}
	ix.Put(coord)
	ix.Drop(coord)
	if ix.Len() != 0 {
		t.Errorf("expected Len()=0 after Drop, got %d", ix.Len())
	}
	if got := ix.Query(coord); len(got) != 0 {
		t.Errorf("expected Query to return nothing after Drop, got %d", len(got))
	}
}

func TestDropOfUnknownCoordIsNoop(t *testing.T) {
	ix := New(1.0, metric.New(metric.L2))
	ix.Put([]float64{0, 0})
	ix.Drop([]float64{5, 5})
	if ix.Len() != 1 {
		t.Errorf("Drop of an unindexed coordinate should not disturb the index")
	}
}

func TestQueryHigherDimension(t *testing.T) {
	ix := New(1.0, metric.New(metric.LInf))
	pts := [][]float64{
		{0, 0, 0, 0},
		{0.5, 0.5, 0.5, 0.5},
		{5, 5, 5, 5},
	}
	for _, p := range pts {
		ix.Put(p)
	}
	got := ix.Query([]float64{0, 0, 0, 0})
	if len(got) != 2 {
		t.Errorf("Query in 4D = %d results, want 2", len(got))
	}
}
