// Package labels maintains the equivalence structure on points: each
// existing non-noise point belongs to exactly one cluster identity. It
// owns the point→identity mapping and a reverse identity→members index so
// that enumerating a cluster's membership (needed rarely, on cluster
// destruction or after a split) does not require a full scan.
package labels

import (
	"sort"

	"github.com/tugberkcapraz/incdbscan/internal/objectstore"
)

// Noise is the label value meaning "non-core with no core neighbor".
const Noise = objectstore.Noise

// Registry tracks, for every existing point, its current label, and the
// reverse mapping from cluster identity to member points.
type Registry struct {
	next    int64
	members map[int64]map[*objectstore.Point]struct{}
}

// New returns an empty Registry. Identity 0 is the first identity that
// FreshIdentity will ever hand out.
func New() *Registry {
	return &Registry{members: make(map[int64]map[*objectstore.Point]struct{})}
}

// FreshIdentity returns a new cluster identity, never reused even after
// its cluster is later destroyed (monotone counter, §3).
func (r *Registry) FreshIdentity() int64 {
	id := r.next
	r.next++
	r.members[id] = make(map[*objectstore.Point]struct{})
	return id
}

// Set assigns label to p, updating the reverse index. label is either
// Noise or a cluster identity previously returned by FreshIdentity.
func (r *Registry) Set(p *objectstore.Point, label int64) {
	if p.Label == label {
		if _, ok := r.members[label][p]; ok || label == Noise {
			return
		}
	}
	if p.Label != Noise && p.Label != objectstore.NoLabel {
		if set, ok := r.members[p.Label]; ok {
			delete(set, p)
		}
	}
	p.Label = label
	if label != Noise {
		set, ok := r.members[label]
		if !ok {
			set = make(map[*objectstore.Point]struct{})
			r.members[label] = set
		}
		set[p] = struct{}{}
	}
}

// Get returns p's current label.
func (r *Registry) Get(p *objectstore.Point) int64 {
	return p.Label
}

// Forget removes p from the reverse index entirely, without touching
// p.Label. Called by the Update Engine when a point's Count reaches zero
// and it is about to be removed from the Object Store.
func (r *Registry) Forget(p *objectstore.Point) {
	if p.Label == Noise || p.Label == objectstore.NoLabel {
		return
	}
	if set, ok := r.members[p.Label]; ok {
		delete(set, p)
	}
}

// MembersOf returns every point currently labeled with identity, in
// lexicographic coordinate order, so that callers iterating over a
// cluster's members do so in a deterministic order.
func (r *Registry) MembersOf(identity int64) []*objectstore.Point {
	set := r.members[identity]
	out := make([]*objectstore.Point, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sortByCoord(out)
	return out
}

// Size returns the number of points currently labeled with identity.
func (r *Registry) Size(identity int64) int {
	return len(r.members[identity])
}

// Retire drops the bookkeeping for a destroyed identity. The identity
// itself is never reused (the monotone counter already guarantees that);
// Retire only reclaims the now-empty reverse-index bucket.
func (r *Registry) Retire(identity int64) {
	delete(r.members, identity)
}

func sortByCoord(pts []*objectstore.Point) {
	sort.Slice(pts, func(i, j int) bool {
		return LexLess(pts[i].Coord, pts[j].Coord)
	})
}

// LexLess reports whether a sorts before b in lexicographic coordinate
// order, the tie-break rule used when a split must pick which surviving
// component keeps the original identity (§4.5.2).
func LexLess(a, b []float64) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
