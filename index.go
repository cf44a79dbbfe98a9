package incdbscan

import (
	"fmt"
	"log"
	"math"

	"github.com/tugberkcapraz/incdbscan/internal/engine"
	"github.com/tugberkcapraz/incdbscan/internal/metric"
	"github.com/tugberkcapraz/incdbscan/internal/objectstore"
)

// Index is an incremental DBSCAN clustering index over a dynamic set of
// equal-dimension points. It is not safe for concurrent use: per §5, all
// mutating operations are serialized and callers must not observe it from
// more than one goroutine at a time.
type Index struct {
	cfg Config
	eng *engine.Engine
}

// New validates cfg and returns an empty Index. The dimension of the
// points it will accept is fixed by the first call to Insert.
func New(cfg Config) (*Index, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := metric.New(cfg.Order)
	return &Index{
		cfg: cfg,
		eng: engine.New(cfg.Eps, cfg.MinPts, m),
	}, nil
}

// SetLogger overrides the logger used for cluster lifecycle notices
// (creation, merge, split, destruction). Pass nil to silence it.
func (ix *Index) SetLogger(l *log.Logger) {
	ix.eng.SetLogger(l)
}

// Insert processes every row of points as a single coordinate insertion,
// in order, per §4.5.3: no reordering, no partial visibility of a
// half-applied batch to any other caller.
//
// The dimension of the first point ever accepted by this Index (across
// its whole lifetime, not just this call) fixes the dimension for every
// later Insert, Delete, and Labels call; a mismatched row returns an error
// satisfying errors.Is(err, engine.ErrDimensionMismatch) and leaves the
// Index unchanged for every row from that point on (strong exception
// safety, §7) — rows processed before the mismatch remain applied, since
// insertion is defined row-by-row with no rollback across the whole batch.
func (ix *Index) Insert(points [][]float64) error {
	for i, row := range points {
		coord := append([]float64(nil), row...)
		if err := ix.eng.Insert(coord); err != nil {
			return fmt.Errorf("incdbscan: insert row %d: %w", i, err)
		}
	}
	return nil
}

// Delete processes every row of points as a single coordinate deletion, in
// order, returning for each row whether a live point existed there and
// was decremented.
func (ix *Index) Delete(points [][]float64) ([]bool, error) {
	out := make([]bool, len(points))
	for i, row := range points {
		found, err := ix.eng.Delete(row)
		if err != nil {
			return nil, fmt.Errorf("incdbscan: delete row %d: %w", i, err)
		}
		out[i] = found
	}
	return out, nil
}

// Labels returns the current cluster label of every row of points: a
// nonnegative cluster identity, -1 for noise, or math.NaN() for a
// coordinate with no live point currently stored.
func (ix *Index) Labels(points [][]float64) ([]float64, error) {
	out := make([]float64, len(points))
	dim := ix.eng.Dim()
	for i, row := range points {
		if dim != 0 && len(row) != dim {
			return nil, fmt.Errorf("incdbscan: labels row %d: %w: expected %d dimensions, got %d",
				i, ErrDimensionMismatch, dim, len(row))
		}
		label, found := ix.eng.Label(row)
		switch {
		case !found:
			out[i] = math.NaN()
		case label == objectstore.Noise:
			out[i] = -1
		default:
			out[i] = float64(label)
		}
	}
	return out, nil
}
