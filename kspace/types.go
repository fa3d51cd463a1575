package kspace

import (
	"errors"
	"fmt"
)

// Sentinel errors for K-space construction and cell operations.
var (
	// ErrDimensionMismatch indicates bounds or cells of different dimensions.
	ErrDimensionMismatch = errors.New("kspace: dimension mismatch")

	// ErrInvalidBounds indicates a lower bound above the upper bound.
	ErrInvalidBounds = errors.New("kspace: lower bound above upper bound")

	// ErrOptionViolation indicates an invalid KSpace option.
	ErrOptionViolation = errors.New("kspace: invalid option supplied")

	// ErrNotAdjacent indicates points that differ by more than one unit step.
	ErrNotAdjacent = errors.New("kspace: points are not 1-adjacent")
)

// Option configures a KSpace via functional arguments.
type Option func(*Options)

// Options holds the topology parameters of a KSpace.
type Options struct {
	// Periodic lists the axes that wrap around. Other axes are closed.
	Periodic []int

	err error
}

// DefaultOptions returns Options with every axis closed.
func DefaultOptions() Options {
	return Options{}
}

// WithPeriodic marks axes as periodic. A negative axis is recorded as
// ErrOptionViolation; an axis beyond the dimension is rejected by New.
func WithPeriodic(axes ...int) Option {
	return func(o *Options) {
		for _, k := range axes {
			if k < 0 {
				o.err = fmt.Errorf("%w: periodic axis %d", ErrOptionViolation, k)
				return
			}
		}
		o.Periodic = append(o.Periodic, axes...)
	}
}

// Turn names the follower chosen when a bel is followed along a direction.
type Turn int

const (
	// Convex turns around the inner spel.
	Convex Turn = iota + 1
	// Straight continues in the same orthogonal direction.
	Straight
	// Concave turns around the outer spel.
	Concave
)

// String implements fmt.Stringer.
func (t Turn) String() string {
	switch t {
	case Convex:
		return "convex"
	case Straight:
		return "straight"
	case Concave:
		return "concave"
	}
	return fmt.Sprintf("Turn(%d)", int(t))
}
