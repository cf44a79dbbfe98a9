package objectstore

// Store holds every distinct point ever inserted, keyed by coordinate. A
// point remains in the Store even after its Count drops to zero only for
// the instant needed to let the Update Engine read its final state; the
// Update Engine is responsible for calling Remove once it is done with a
// point whose Count has reached zero.
type Store struct {
	points map[string]*Point
}

// New returns an empty Store.
func New() *Store {
	return &Store{points: make(map[string]*Point)}
}

// GetOrCreate returns the existing point at coord, or creates a new one
// with Count 0 and Label NoLabel. The second return value reports whether
// a new point object was created.
//
// coord is retained by the returned Point; callers must not mutate it
// afterwards.
func (s *Store) GetOrCreate(coord []float64) (p *Point, created bool) {
	key := Key(coord)
	if existing, ok := s.points[key]; ok {
		return existing, false
	}
	p = &Point{Coord: coord, Label: NoLabel}
	s.points[key] = p
	return p, true
}

// Get returns the point at coord, if any point object has ever been
// created for it (regardless of whether it currently Exists).
func (s *Store) Get(coord []float64) (*Point, bool) {
	p, ok := s.points[Key(coord)]
	return p, ok
}

// Remove deletes the point object for coord entirely. Called only once
// its Count has reached zero.
func (s *Store) Remove(coord []float64) {
	delete(s.points, Key(coord))
}

// Bump adjusts p's Count by delta (+1 on insertion, -1 on deletion).
func (s *Store) Bump(p *Point, delta int) {
	p.Count += delta
}

// Exists reports whether p currently represents a live point.
func (s *Store) Exists(p *Point) bool {
	return p.Exists()
}

// Len returns the number of distinct point objects currently tracked
// (including any mid-operation transients the engine has not yet removed).
func (s *Store) Len() int {
	return len(s.points)
}
