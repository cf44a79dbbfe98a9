package engine

import (
	"github.com/tugberkcapraz/incdbscan/internal/labels"
	"github.com/tugberkcapraz/incdbscan/internal/objectstore"
)

// handleSplit implements §4.5.2 steps 6-7: it determines whether deleting
// p fragmented cluster c, and if so allocates fresh identities for every
// component but the largest, reassigning borders accordingly. If c has no
// core points left at all, it is destroyed and every remaining member
// becomes noise.
func (e *Engine) handleSplit(c int64, p *objectstore.Point, exCore []*objectstore.Point) {
	// p is always a touch point for the purpose of re-scanning its old
	// neighborhood for surviving cores, even when it was removed entirely:
	// a core point vanishing outright is the most common split trigger.
	touchPoints := append([]*objectstore.Point{}, exCore...)
	touchPoints = append(touchPoints, p)

	seeds := e.frontierSeeds(c, touchPoints)
	if len(seeds) == 0 {
		e.destroyIfCoreless(c)
		return
	}

	components := e.coreComponents(c, seeds)
	if len(components) <= 1 {
		// Single component: no split. The cluster may still have lost its
		// last core if, against the locality assumption, none of the
		// seeds actually turned out to be core (defensive fallback).
		e.destroyIfCoreless(c)
		return
	}

	largest := pickLargest(components)

	for _, comp := range components {
		if comp.root == largest.root {
			continue
		}
		fresh := e.registry.FreshIdentity()
		for _, core := range comp.members {
			e.registry.Set(core, fresh)
		}
		e.logf("incdbscan: split cluster %d -> %d (%d cores)", c, fresh, len(comp.members))
	}

	// Border reassignment for every former member of c: cores have already
	// been placed into their component's identity above; every remaining
	// (non-core) point is reattached to any surviving core neighbor, or
	// becomes noise if none remains.
	for _, m := range e.registry.MembersOf(c) {
		if m.Core(e.minPts) {
			continue
		}
		e.reattachBorder(m)
	}
}

// frontierSeeds returns the distinct core points, labeled c, that are
// directly adjacent to a touch point (a point that just lost core status,
// or p itself, whether or not it is still present) — the candidate articulation
// neighborhood the split BFS starts from.
func (e *Engine) frontierSeeds(c int64, touchPoints []*objectstore.Point) []*objectstore.Point {
	seen := make(map[*objectstore.Point]bool)
	var seeds []*objectstore.Point
	add := func(q *objectstore.Point) {
		if q.Exists() && q.Core(e.minPts) && q.Label == c && !seen[q] {
			seen[q] = true
			seeds = append(seeds, q)
		}
	}
	for _, t := range touchPoints {
		add(t)
		for _, n := range e.neighborPoints(t.Coord) {
			add(n)
		}
	}
	return seeds
}

// component is a connected set of core points sharing cluster identity c
// discovered by coreComponents.
type component struct {
	root    *objectstore.Point
	members []*objectstore.Point
}

// coreComponents runs a multi-source BFS, with union-find merging, over
// the core-reachability graph restricted to points labeled c, starting
// from seeds. It exits as soon as every seed has merged into a single
// component (no split possible, so the caller has no need of an exact
// membership list); otherwise it runs until every reachable core has been
// discovered and returns every resulting component in full.
func (e *Engine) coreComponents(c int64, seeds []*objectstore.Point) []component {
	parent := make(map[*objectstore.Point]*objectstore.Point, len(seeds))
	var find func(*objectstore.Point) *objectstore.Point
	find = func(x *objectstore.Point) *objectstore.Point {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b *objectstore.Point) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	var queue []*objectstore.Point
	for _, s := range seeds {
		if _, ok := parent[s]; ok {
			continue
		}
		parent[s] = s
		queue = append(queue, s)
	}

	distinctSeedRoots := func() int {
		roots := make(map[*objectstore.Point]bool, len(seeds))
		for _, s := range seeds {
			roots[find(s)] = true
		}
		return len(roots)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range e.neighborPoints(cur.Coord) {
			if !nb.Exists() || !nb.Core(e.minPts) || nb.Label != c {
				continue
			}
			if _, visited := parent[nb]; !visited {
				parent[nb] = find(cur)
				queue = append(queue, nb)
			} else {
				union(nb, cur)
			}
		}
		if distinctSeedRoots() == 1 {
			break // every seed has merged: the cluster cannot be split
		}
	}

	groups := make(map[*objectstore.Point][]*objectstore.Point)
	for q := range parent {
		r := find(q)
		groups[r] = append(groups[r], q)
	}
	components := make([]component, 0, len(groups))
	for r, members := range groups {
		components = append(components, component{root: r, members: members})
	}
	return components
}

// pickLargest returns the component with the most core points, breaking
// ties by the lexicographically smallest member coordinate (§4.5.2).
func pickLargest(components []component) component {
	best := components[0]
	bestKey := smallestCoord(best.members)
	for _, comp := range components[1:] {
		if len(comp.members) > len(best.members) {
			best = comp
			bestKey = smallestCoord(comp.members)
			continue
		}
		if len(comp.members) == len(best.members) {
			k := smallestCoord(comp.members)
			if labels.LexLess(k, bestKey) {
				best = comp
				bestKey = k
			}
		}
	}
	return best
}

func smallestCoord(members []*objectstore.Point) []float64 {
	best := members[0].Coord
	for _, m := range members[1:] {
		if labels.LexLess(m.Coord, best) {
			best = m.Coord
		}
	}
	return best
}

// reattachBorder finds any remaining core neighbor for m and adopts its
// (possibly new, post-split) label; if none remains, m becomes noise.
func (e *Engine) reattachBorder(m *objectstore.Point) {
	if !m.Exists() {
		return
	}
	for _, n := range e.neighborPoints(m.Coord) {
		if n != m && n.Exists() && n.Core(e.minPts) {
			e.registry.Set(m, n.Label)
			return
		}
	}
	e.registry.Set(m, objectstore.Noise)
}

// destroyIfCoreless retires c if it no longer has any core member,
// turning every remaining member into noise.
func (e *Engine) destroyIfCoreless(c int64) {
	members := e.registry.MembersOf(c)
	for _, m := range members {
		if m.Exists() && m.Core(e.minPts) {
			return // still has at least one core; nothing to destroy
		}
	}
	for _, m := range members {
		e.registry.Set(m, objectstore.Noise)
	}
	e.registry.Retire(c)
	e.logf("incdbscan: destroyed cluster %d", c)
}
