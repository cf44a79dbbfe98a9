// Package metric computes distances between coordinate vectors under a
// fixed Minkowski order, chosen once when the index is constructed.
package metric

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch is returned when two coordinate vectors being
// compared do not have the same length.
var ErrDimensionMismatch = errors.New("metric: dimension mismatch")

// Order selects the Minkowski norm used for distance computation.
// It is a tagged variant over the three orders the system supports; there
// is no open extensibility point here by design (DESIGN NOTES, §9).
type Order int

const (
	// L1 is the Manhattan distance: sum of absolute differences.
	L1 Order = 1
	// L2 is the Euclidean distance: the default and most common order.
	L2 Order = 2
	// LInf is the Chebyshev distance: the maximum absolute difference.
	LInf Order = -1
)

// Valid reports whether o is one of the three supported orders.
func (o Order) Valid() bool {
	switch o {
	case L1, L2, LInf:
		return true
	default:
		return false
	}
}

func (o Order) String() string {
	switch o {
	case L1:
		return "L1"
	case L2:
		return "L2"
	case LInf:
		return "LInf"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// norm converts an Order to the exponent gonum's floats.Distance expects:
// math.Inf(1) for the Chebyshev case, 1 or 2 otherwise.
func (o Order) norm() float64 {
	if o == LInf {
		return math.Inf(1)
	}
	return float64(o)
}

// Metric computes distances under a single fixed Order.
type Metric struct {
	order Order
}

// New returns a Metric for the given order. The caller is expected to have
// already validated o with Order.Valid (construction-time validation is an
// external-interface concern, §6).
func New(o Order) Metric {
	return Metric{order: o}
}

// Order returns the Minkowski order this Metric was constructed with.
func (m Metric) Order() Order {
	return m.order
}

// Distance computes the distance between a and b under m's order. It
// returns ErrDimensionMismatch if the two vectors have different lengths.
func (m Metric) Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	return floats.Distance(a, b, m.norm()), nil
}

// Within reports whether the distance between a and b is at most eps,
// without requiring the caller to compute the exact distance first. It
// short-circuits axis-aligned bounding checks before falling back to the
// exact distance computation, which matters on hot query paths.
func (m Metric) Within(a, b []float64, eps float64) (bool, error) {
	if len(a) != len(b) {
		return false, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false, nil
		}
	}
	d, err := m.Distance(a, b)
	if err != nil {
		return false, err
	}
	return d <= eps, nil
}
