// Package spatialindex provides a uniform grid index for fast eps-radius
// neighborhood queries over a dynamic set of coordinates. It generalizes
// the 2D grid used for one-shot DBSCAN clustering over LiDAR world points
// (cell size ~ eps, Szudzik cell-ID pairing) to an arbitrary fixed
// dimension and to incremental insert/delete.
package spatialindex

import (
	"math"
	"strconv"
	"strings"

	"github.com/tugberkcapraz/incdbscan/internal/metric"
)

// Index answers "every stored coordinate within eps of a query point"
// queries in roughly O(points per cell) by bucketing coordinates into
// cells of side length eps. It holds non-owning string keys back to the
// Object Store; the Object Store is the source of truth for point data.
type Index struct {
	eps    float64
	m      metric.Metric
	cells  map[string][]string // cell key -> coordinate keys in that cell
	coords map[string][]float64
}

// New returns an empty Index with the given cell size (normally set equal
// to eps) and metric.
func New(eps float64, m metric.Metric) *Index {
	return &Index{
		eps:    eps,
		m:      m,
		cells:  make(map[string][]string),
		coords: make(map[string][]float64),
	}
}

// cellCoord returns the per-axis cell index for a single coordinate
// component.
func (ix *Index) cellCoord(v float64) int64 {
	return int64(math.Floor(v / ix.eps))
}

// cellKey builds a canonical key for the cell containing coord. A plain
// delimited string of per-axis cell indices is used rather than folding a
// Szudzik pairing across dimensions (as the teacher's 2D grid does,
// internal/lidar/clustering.go getCellID): Szudzik pairing is only safe
// from int64 overflow for two axes, and this index must support arbitrary
// dimension.
func (ix *Index) cellKey(coord []float64) string {
	var b strings.Builder
	for i, v := range coord {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(ix.cellCoord(v), 10))
	}
	return b.String()
}

// coordKey is the map key used for the coordinate itself, distinct from
// the Object Store's key function so this package has no dependency on
// objectstore.
func coordKey(coord []float64) string {
	var b strings.Builder
	for i, v := range coord {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatFloat(v, 'x', -1, 64))
	}
	return b.String()
}

// Put registers coord as queryable. Idempotent across duplicate
// coordinates: calling Put twice with an equal coordinate is a no-op
// after the first call.
func (ix *Index) Put(coord []float64) {
	ck := coordKey(coord)
	if _, ok := ix.coords[ck]; ok {
		return
	}
	ix.coords[ck] = coord
	cell := ix.cellKey(coord)
	ix.cells[cell] = append(ix.cells[cell], ck)
}

// Drop removes coord from the index. Called only once the Object Store's
// count for coord has reached zero.
func (ix *Index) Drop(coord []float64) {
	ck := coordKey(coord)
	if _, ok := ix.coords[ck]; !ok {
		return
	}
	delete(ix.coords, ck)
	cell := ix.cellKey(coord)
	bucket := ix.cells[cell]
	for i, c := range bucket {
		if c == ck {
			bucket[i] = bucket[len(bucket)-1]
			ix.cells[cell] = bucket[:len(bucket)-1]
			break
		}
	}
	if len(ix.cells[cell]) == 0 {
		delete(ix.cells, cell)
	}
}

// Query returns every stored coordinate within eps of coord (inclusive),
// including coord itself if it is stored. It searches the 3^d window of
// cells surrounding coord's own cell, generalizing the teacher's 3x3
// window to d dimensions, then refines candidates with an exact distance
// check.
func (ix *Index) Query(coord []float64) [][]float64 {
	d := len(coord)
	base := make([]int64, d)
	for i, v := range coord {
		base[i] = ix.cellCoord(v)
	}

	var results [][]float64
	offsets := make([]int64, d)
	ix.forEachOffset(offsets, 0, func(offsets []int64) {
		cellCoord := make([]int64, d)
		for i := range cellCoord {
			cellCoord[i] = base[i] + offsets[i]
		}
		key := formatCellKey(cellCoord)
		for _, ck := range ix.cells[key] {
			cand := ix.coords[ck]
			if within, err := ix.m.Within(coord, cand, ix.eps); err == nil && within {
				results = append(results, cand)
			}
		}
	})
	return results
}

// forEachOffset enumerates every vector in {-1,0,1}^d, invoking fn once
// per vector. It recurses one axis at a time rather than materializing all
// 3^d combinations up front.
func (ix *Index) forEachOffset(offsets []int64, axis int, fn func([]int64)) {
	if axis == len(offsets) {
		fn(offsets)
		return
	}
	for _, o := range [3]int64{-1, 0, 1} {
		offsets[axis] = o
		ix.forEachOffset(offsets, axis+1, fn)
	}
}

func formatCellKey(cellCoord []int64) string {
	var b strings.Builder
	for i, c := range cellCoord {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(c, 10))
	}
	return b.String()
}

// Len returns the number of distinct coordinates currently indexed.
func (ix *Index) Len() int {
	return len(ix.coords)
}
