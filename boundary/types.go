package boundary

import (
	"errors"
	"fmt"

	"github.com/op/go-logging"

	"github.com/elombardi2/DGtal/kspace"
	"github.com/elombardi2/DGtal/space"
)

var log = logging.MustGetLogger("boundary")

// Progress is logged at DEBUG. Until the caller installs its own backend the
// package only reports warnings.
func init() { logging.SetLevel(logging.WARNING, "boundary") }

// Sentinel errors for bel search and tracking.
var (
	// ErrBelNotFound indicates a complete scan that met no bel.
	ErrBelNotFound = errors.New("boundary: no bel found")

	// ErrSearchExhausted indicates that a budget ran out before completion.
	ErrSearchExhausted = errors.New("boundary: search budget exhausted")

	// ErrNotABel indicates a seed surfel that is not a bel of the shape.
	ErrNotABel = errors.New("boundary: seed is not a bel of the shape")

	// ErrDimensionMismatch indicates an operation applied in the wrong dimension.
	ErrDimensionMismatch = errors.New("boundary: dimension mismatch")

	// ErrOptionViolation indicates an invalid tracking option.
	ErrOptionViolation = errors.New("boundary: invalid option supplied")
)

// Option configures TrackBoundary via functional arguments.
type Option func(*TrackOptions)

// TrackOptions holds the tracking parameters.
type TrackOptions struct {
	// MaxSurfels bounds the number of bels collected; 0 means unbounded.
	MaxSurfels int

	err error
}

// DefaultOptions returns unbounded TrackOptions.
func DefaultOptions() TrackOptions {
	return TrackOptions{}
}

// WithMaxSurfels bounds the number of collected bels. A negative value is
// recorded as ErrOptionViolation.
func WithMaxSurfels(n int) Option {
	return func(o *TrackOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSurfels must be >= 0, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxSurfels = n
	}
}

// member reports whether p, wrapped along periodic axes, is in the box and in the shape.
func member(ks *kspace.KSpace, pred space.PointPredicate, p space.Point) bool {
	p = ks.WrapPoint(p)
	return ks.IsPointInside(p) && pred.Test(p)
}

// checkBel verifies that seed is a surfel separating the shape from its outside.
func checkBel(ks *kspace.KSpace, pred space.PointPredicate, seed kspace.SCell) error {
	if seed.K.Dim() != ks.Dimension() {
		return fmt.Errorf("%w: seed %v in dimension %d", ErrDimensionMismatch, seed, ks.Dimension())
	}
	if !seed.IsSurfel() ||
		!member(ks, pred, ks.InnerSpel(seed).Coords()) ||
		member(ks, pred, ks.OuterSpel(seed).Coords()) {
		return fmt.Errorf("%w: %v", ErrNotABel, seed)
	}
	return nil
}
