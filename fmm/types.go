package fmm

import (
	"errors"
	"fmt"
	"math"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("fmm")

// Progress is logged at DEBUG. Until the caller installs its own backend the
// package only reports warnings.
func init() { logging.SetLevel(logging.WARNING, "fmm") }

// Sentinel errors for fast marching.
var (
	// ErrNoSeeds indicates an empty seed map.
	ErrNoSeeds = errors.New("fmm: no seed point")

	// ErrDimensionMismatch indicates a seed of the wrong dimension.
	ErrDimensionMismatch = errors.New("fmm: dimension mismatch")

	// ErrSeedOutOfDomain indicates a seed outside the domain.
	ErrSeedOutOfDomain = errors.New("fmm: seed outside the domain")

	// ErrInvalidSeed indicates a NaN or infinite seed value.
	ErrInvalidSeed = errors.New("fmm: invalid seed value")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("fmm: invalid option supplied")
)

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds the marching parameters.
type Options struct {
	// MaxDistance stops the front: points whose value would exceed it are
	// left out of the result. Default +Inf.
	MaxDistance float64

	// GridStep is the distance between two axis neighbors. Default 1.
	GridStep float64

	err error
}

// DefaultOptions returns an unbounded march on the unit grid.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1), GridStep: 1}
}

// WithMaxDistance bounds the march. d must not be NaN.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if math.IsNaN(d) {
			o.err = fmt.Errorf("%w: MaxDistance is NaN", ErrOptionViolation)
			return
		}
		o.MaxDistance = d
	}
}

// WithGridStep sets the grid step h > 0.
func WithGridStep(h float64) Option {
	return func(o *Options) {
		if !(h > 0) || math.IsInf(h, 0) {
			o.err = fmt.Errorf("%w: GridStep must be positive and finite, got %v", ErrOptionViolation, h)
			return
		}
		o.GridStep = h
	}
}
