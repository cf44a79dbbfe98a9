package engine

import (
	"sort"

	"github.com/tugberkcapraz/incdbscan/internal/objectstore"
)

// Insert processes a single coordinate insertion (§4.5.1).
func (e *Engine) Insert(coord []float64) error {
	if err := e.checkDim(coord); err != nil {
		return err
	}

	p, created := e.store.GetOrCreate(coord)
	if created {
		e.index.Put(coord)
	}

	// Step 1: register and count.
	neighbors := e.neighborPoints(coord) // includes p, since it is now indexed
	wasCore := make(map[*objectstore.Point]bool, len(neighbors))
	for _, q := range neighbors {
		wasCore[q] = q.Core(e.minPts)
	}

	e.store.Bump(p, +1)

	// Step 2: neighborhood update. Every neighbor's weight rises by
	// exactly 1 because p's count just rose by 1; p's own weight is
	// recomputed directly from the (now current) counts of its
	// neighborhood, since p may be brand new and have no prior baseline.
	sum := 0
	for _, q := range neighbors {
		if q != p {
			q.NeighborWeight++
		}
		sum += q.Count
	}
	p.NeighborWeight = sum

	// Step 3: identify new cores.
	var newCores []*objectstore.Point
	for _, q := range neighbors {
		if q.Core(e.minPts) && !wasCore[q] {
			newCores = append(newCores, q)
		}
	}

	if len(newCores) == 0 {
		// Case (a): p is not core, and nothing newly became core.
		if !p.Core(e.minPts) {
			e.assignNonCoreLabel(p, neighbors)
		}
		return nil
	}

	// Cases (b)/(c): at least one new core appeared (possibly just p).
	u := e.touchedClusterIdentities(p, neighbors, newCores)

	var target int64
	if len(u) == 0 {
		target = e.registry.FreshIdentity()
		e.logf("incdbscan: created cluster %d", target)
	} else {
		target = u[0]
		for _, id := range u[1:] {
			e.mergeInto(id, target)
		}
	}

	e.registry.Set(p, target)
	for _, core := range newCores {
		e.registry.Set(core, target)
		e.absorbBorders(core, target)
	}
	return nil
}

// assignNonCoreLabel implements §4.5.1 case (a): p stays non-core and no
// neighbor newly became core, so p either borders an existing core or is
// noise.
func (e *Engine) assignNonCoreLabel(p *objectstore.Point, neighbors []*objectstore.Point) {
	for _, q := range neighbors {
		if q == p {
			continue
		}
		if q.Core(e.minPts) {
			e.registry.Set(p, q.Label)
			return
		}
	}
	e.registry.Set(p, objectstore.Noise)
}

// touchedClusterIdentities returns the distinct, sorted, non-noise
// identities that this insertion's new cores touch: every already-labeled
// core in p's own neighborhood, plus every already-labeled core in the
// neighborhood of each *other* point that itself just became core.
//
// The second half is not optional bookkeeping: a point q can be promoted
// to core by p's arrival while bordering a core point a2 that is nowhere
// near p (dist(p, a2) > eps), only within eps of q. If q's own prior
// label were trusted in isolation it would carry only one tie-broken
// identity (§4.5.1 case a's "pick any" for a border with multiple core
// neighbors), so a second such identity reachable only through q could be
// missed entirely. Once q is core, invariant 3 (spec.md §3: "if two core
// points are within eps, they share a cluster identity") applies to every
// core point within q's own neighborhood, not just p's, so every one of
// them must be folded into the merge.
func (e *Engine) touchedClusterIdentities(p *objectstore.Point, neighbors, newCores []*objectstore.Point) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	collect := func(self *objectstore.Point, candidates []*objectstore.Point) {
		for _, q := range candidates {
			if q == self || !q.Core(e.minPts) {
				continue
			}
			if q.Label == objectstore.Noise || q.Label == objectstore.NoLabel {
				continue
			}
			if !seen[q.Label] {
				seen[q.Label] = true
				ids = append(ids, q.Label)
			}
		}
	}

	collect(p, neighbors)
	for _, core := range newCores {
		if core == p {
			continue // already covered by the pass above
		}
		collect(core, e.neighborPoints(core.Coord))
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// mergeInto relabels every member of from to to, then retires from.
func (e *Engine) mergeInto(from, to int64) {
	if from == to {
		return
	}
	members := e.registry.MembersOf(from)
	for _, m := range members {
		e.registry.Set(m, to)
	}
	e.registry.Retire(from)
	e.logf("incdbscan: merged cluster %d into %d", from, to)
}

// absorbBorders assigns identity to every non-core neighbor of core (its
// border points), per §4.5.1 step 5.
func (e *Engine) absorbBorders(core *objectstore.Point, identity int64) {
	for _, n := range e.neighborPoints(core.Coord) {
		if n.Exists() && !n.Core(e.minPts) {
			e.registry.Set(n, identity)
		}
	}
}
