package engine

import (
	"errors"
	"fmt"
	"log"

	"github.com/tugberkcapraz/incdbscan/internal/labels"
	"github.com/tugberkcapraz/incdbscan/internal/metric"
	"github.com/tugberkcapraz/incdbscan/internal/objectstore"
	"github.com/tugberkcapraz/incdbscan/internal/spatialindex"
)

// ErrDimensionMismatch is returned when a coordinate's width does not
// match the dimension established by the first accepted point.
var ErrDimensionMismatch = errors.New("engine: dimension mismatch")

// Engine orchestrates insertion and deletion over an Object Store,
// Neighborhood Index, and Label Registry. It is the only component that
// mutates more than one of those substructures in a single operation.
type Engine struct {
	store    *objectstore.Store
	index    *spatialindex.Index
	registry *labels.Registry
	metric   metric.Metric
	eps      float64
	minPts   int

	dim    int // 0 until the first point fixes it
	logger *log.Logger
}

// New returns an Engine with empty substructures for the given parameters.
// eps and minPts are assumed already validated by the caller (construction
// validation is an external-interface concern).
func New(eps float64, minPts int, m metric.Metric) *Engine {
	return &Engine{
		store:    objectstore.New(),
		index:    spatialindex.New(eps, m),
		registry: labels.New(),
		metric:   m,
		eps:      eps,
		minPts:   minPts,
		logger:   log.Default(),
	}
}

// SetLogger overrides the logger used for lifecycle notices (cluster
// creation, merge, split, destruction). Passing nil silences logging.
func (e *Engine) SetLogger(l *log.Logger) {
	e.logger = l
}

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}

// Dim returns the dimension fixed by the first accepted point, or 0 if no
// point has been accepted yet.
func (e *Engine) Dim() int {
	return e.dim
}

// checkDim fixes the dimension on the first call and validates every
// subsequent coordinate against it.
func (e *Engine) checkDim(coord []float64) error {
	if e.dim == 0 {
		e.dim = len(coord)
		return nil
	}
	if len(coord) != e.dim {
		return fmt.Errorf("%w: expected %d dimensions, got %d", ErrDimensionMismatch, e.dim, len(coord))
	}
	return nil
}

// Label returns the current label of coord and whether a live point
// exists at that coordinate. The caller (root package) is responsible for
// translating "not found" into NaN per the external label contract.
func (e *Engine) Label(coord []float64) (int64, bool) {
	p, ok := e.store.Get(coord)
	if !ok || !p.Exists() {
		return 0, false
	}
	return p.Label, true
}

// neighborPoints resolves the coordinates returned by an index query back
// into their Point objects.
func (e *Engine) neighborPoints(coord []float64) []*objectstore.Point {
	coords := e.index.Query(coord)
	out := make([]*objectstore.Point, 0, len(coords))
	for _, c := range coords {
		if q, ok := e.store.Get(c); ok {
			out = append(out, q)
		}
	}
	return out
}
