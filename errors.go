package incdbscan

import "errors"

// ErrInvalidParameter is returned from New when a constructor argument is
// out of range: a non-positive eps, a non-positive min_pts, or an
// unsupported metric order.
var ErrInvalidParameter = errors.New("incdbscan: invalid parameter")

// ErrDimensionMismatch is returned from Labels when a coordinate's width
// does not match the dimension fixed by the first point this Index ever
// accepted. Insert and Delete report the same condition with an error
// wrapping internal/engine's ErrDimensionMismatch instead of this one.
var ErrDimensionMismatch = errors.New("incdbscan: dimension mismatch")
