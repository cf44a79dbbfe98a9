package incdbscan

import (
	"fmt"

	"github.com/tugberkcapraz/incdbscan/internal/metric"
)

// Order selects the Minkowski norm used for every distance computation
// this Index performs. It is fixed at construction and never changes
// (DESIGN NOTES, §9: the metric is the only polymorphic axis, implemented
// as a closed tagged variant, not an open extensibility point).
type Order = metric.Order

const (
	// L1 is the Manhattan distance: Σ|aᵢ - bᵢ|.
	L1 = metric.L1
	// L2 is the Euclidean distance: the default order.
	L2 = metric.L2
	// LInf is the Chebyshev distance: maxᵢ|aᵢ - bᵢ|.
	LInf = metric.LInf
)

// Config holds the parameters fixed at construction. In the teacher's
// style (internal/lidar/l3grid/config.go's BackgroundConfig), it is a
// plain builder-style struct with a Validate method, not a generic
// config-loading framework: this module has no configuration source
// beyond its constructor arguments.
type Config struct {
	// Eps is the neighborhood radius. Must be > 0.
	Eps float64
	// MinPts is the minimum neighbor weight (including self) for a point
	// to be core. Must be >= 1.
	MinPts int
	// Order selects the Minkowski distance order. Must be L1, L2, or
	// LInf.
	Order Order
}

// DefaultConfig returns a Config with commonly useful defaults: Euclidean
// distance, eps=1.0, min_pts=5 (the conventional DBSCAN default for
// low-dimensional data).
func DefaultConfig() Config {
	return Config{Eps: 1.0, MinPts: 5, Order: L2}
}

// Validate checks c's fields against the constructor contract (§6),
// returning ErrInvalidParameter wrapped with which field failed.
func (c Config) Validate() error {
	if c.Eps <= 0 {
		return fmt.Errorf("%w: eps must be > 0, got %v", ErrInvalidParameter, c.Eps)
	}
	if c.MinPts < 1 {
		return fmt.Errorf("%w: min_pts must be >= 1, got %d", ErrInvalidParameter, c.MinPts)
	}
	if !c.Order.Valid() {
		return fmt.Errorf("%w: order must be L1, L2, or LInf, got %v", ErrInvalidParameter, c.Order)
	}
	return nil
}
