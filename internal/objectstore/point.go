// Package objectstore holds every distinct stored point, its multiplicity,
// and its cached neighbor weight. It owns point objects; the neighborhood
// index and label registry only hold references keyed by coordinate.
package objectstore

import "math"

// NoLabel marks a point that has not yet been assigned a cluster identity
// or noise label. It never appears on a point returned to a caller once the
// Update Engine has finished processing an operation (invariant: every
// existing point has either Noise or a concrete identity after an
// operation completes).
const NoLabel = math.MinInt64

// Noise marks a non-core point with no core neighbor.
const Noise = -1

// Point is a single distinct coordinate and its bookkeeping.
//
// Coord is never mutated after creation; Count, NeighborWeight and Label
// are mutated in place by the Update Engine as operations run.
type Point struct {
	Coord []float64

	// Count is the net number of times this exact coordinate has been
	// inserted minus deleted. The point exists iff Count > 0.
	Count int

	// NeighborWeight is Σ q.Count over every stored point q (including
	// this one) within eps, kept incrementally in step with Count changes
	// of any such q (invariant 1).
	NeighborWeight int

	// Label is Noise, NoLabel (not yet classified), or a nonnegative
	// cluster identity.
	Label int64
}

// Exists reports whether p currently represents a live point.
func (p *Point) Exists() bool {
	return p.Count > 0
}

// Core reports whether p currently satisfies the core predicate for the
// given minPts threshold.
func (p *Point) Core(minPts int) bool {
	return p.NeighborWeight >= minPts
}
