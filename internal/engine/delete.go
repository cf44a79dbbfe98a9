package engine

import "github.com/tugberkcapraz/incdbscan/internal/objectstore"

// Delete processes a single coordinate deletion (§4.5.2). It returns false
// if the coordinate had no live point to remove.
func (e *Engine) Delete(coord []float64) (bool, error) {
	if e.dim == 0 {
		// Nothing has ever been inserted, so nothing can be found; the
		// dimension stays unfixed until the first insertion.
		return false, nil
	}
	if err := e.checkDim(coord); err != nil {
		return false, err
	}

	p, ok := e.store.Get(coord)
	if !ok || !p.Exists() {
		return false, nil
	}

	// Step 1/2: look up p, gather its neighborhood before any mutation.
	neighbors := e.neighborPoints(coord) // includes p
	wasCore := make(map[*objectstore.Point]bool, len(neighbors))
	for _, q := range neighbors {
		wasCore[q] = q.Core(e.minPts)
	}
	oldLabel := p.Label

	e.store.Bump(p, -1)
	for _, q := range neighbors {
		q.NeighborWeight--
	}

	removed := p.Count == 0
	if removed {
		e.index.Drop(coord)
		e.registry.Forget(p)
		e.store.Remove(coord)
	}

	// Step 4: ExCore = neighbors (p included, if still present) that were
	// core before step 2 and are no longer core after.
	var exCore []*objectstore.Point
	for _, q := range neighbors {
		if q == p && removed {
			continue
		}
		if wasCore[q] && !q.Core(e.minPts) {
			exCore = append(exCore, q)
		}
	}

	// Step 5: border reclassification local to the points that just lost
	// core status (p itself, if demoted or removed, and every ExCore
	// member).
	lostCore := append([]*objectstore.Point{}, exCore...)
	if wasCore[p] && (removed || !p.Core(e.minPts)) {
		lostCore = append(lostCore, p)
	}
	for _, s := range lostCore {
		for _, b := range e.neighborPoints(s.Coord) {
			if !b.Exists() || b.Core(e.minPts) || b.Label == objectstore.Noise {
				continue
			}
			if !e.hasCoreNeighbor(b) {
				e.registry.Set(b, objectstore.Noise)
			}
		}
	}

	// Step 6/7: split detection and cluster destruction, restricted to the
	// cluster identity p belonged to before this deletion.
	if oldLabel != objectstore.Noise && oldLabel != objectstore.NoLabel {
		e.handleSplit(oldLabel, p, exCore)
	}

	return true, nil
}

// hasCoreNeighbor reports whether b currently has at least one core
// neighbor (used to decide whether a border point becomes noise).
func (e *Engine) hasCoreNeighbor(b *objectstore.Point) bool {
	for _, n := range e.neighborPoints(b.Coord) {
		if n != b && n.Exists() && n.Core(e.minPts) {
			return true
		}
	}
	return false
}
