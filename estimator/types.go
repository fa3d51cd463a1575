package estimator

import (
	"errors"
	"fmt"
	"math"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("estimator")

// Progress is logged at DEBUG. Until the caller installs its own backend the
// package only reports warnings.
func init() { logging.SetLevel(logging.WARNING, "estimator") }

// Sentinel errors for curvature estimation.
var (
	// ErrNotInitialized indicates an evaluation before Init.
	ErrNotInitialized = errors.New("estimator: not initialized")

	// ErrInvalidRadius indicates an unusable ball radius or grid step.
	ErrInvalidRadius = errors.New("estimator: invalid radius or grid step")

	// ErrDegenerateShape indicates an empty intersection of the ball and the shape.
	ErrDegenerateShape = errors.New("estimator: degenerate shape under kernel")

	// ErrDimensionMismatch indicates a quantity unavailable in this dimension.
	ErrDimensionMismatch = errors.New("estimator: dimension mismatch")

	// ErrNotASurfel indicates a cell that is not a surfel.
	ErrNotASurfel = errors.New("estimator: cell is not a surfel")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("estimator: invalid option supplied")
)

// Quantity selects what Eval computes.
type Quantity int

const (
	// Mean is the curvature in 2D and the mean curvature in 3D.
	Mean Quantity = iota
	// Gaussian is the Gaussian curvature (3D only).
	Gaussian
)

// String implements fmt.Stringer.
func (q Quantity) String() string {
	switch q {
	case Mean:
		return "mean"
	case Gaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("Quantity(%d)", int(q))
	}
}

// Option configures an IntegralInvariant via functional arguments.
type Option func(*Options)

// Options holds the estimator parameters. When both Radius and GridStep are
// set, New runs Init with them.
type Options struct {
	// Radius is the ball radius R, in the shape's units.
	Radius float64

	// GridStep is the digitization step h.
	GridStep float64

	err error
}

// DefaultOptions returns Options with no radius and no grid step.
func DefaultOptions() Options {
	return Options{}
}

// WithRadius sets the ball radius.
func WithRadius(r float64) Option {
	return func(o *Options) {
		if !validLength(r) {
			o.err = fmt.Errorf("%w: radius %v", ErrOptionViolation, r)
			return
		}
		o.Radius = r
	}
}

// WithGridStep sets the digitization step.
func WithGridStep(h float64) Option {
	return func(o *Options) {
		if !validLength(h) {
			o.err = fmt.Errorf("%w: grid step %v", ErrOptionViolation, h)
			return
		}
		o.GridStep = h
	}
}

func validLength(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
