package domain

import (
	"errors"
	"fmt"

	"github.com/elombardi2/DGtal/space"
)

// Sentinel errors for domain construction, ranges and digital sets.
var (
	// ErrDimensionMismatch indicates bounds or points of different dimensions.
	ErrDimensionMismatch = errors.New("domain: dimension mismatch")

	// ErrOptionViolation indicates an invalid Range option.
	ErrOptionViolation = errors.New("domain: invalid option supplied")

	// ErrOutOfDomain indicates a point outside the domain of a DigitalSet.
	ErrOutOfDomain = errors.New("domain: point outside domain")
)

// Option configures a Range via functional arguments.
type Option func(*RangeOptions)

// RangeOptions holds the iteration parameters of a Range.
type RangeOptions struct {
	// Order lists the iterated axes, fastest first. Nil means all axes in
	// ascending order. A strict subset of the axes yields a sub-domain.
	Order []int

	// Anchor provides the coordinates of the frozen axes. When unset the
	// lower bound of the domain is used.
	Anchor    space.Point
	hasAnchor bool

	err error
}

// DefaultOptions returns RangeOptions iterating every axis in ascending order.
func DefaultOptions() RangeOptions {
	return RangeOptions{}
}

// WithOrder sets the iterated axes, fastest first.
// An empty list, a duplicate or a negative axis is recorded as ErrOptionViolation.
func WithOrder(axes ...int) Option {
	return func(o *RangeOptions) {
		if len(axes) == 0 {
			o.err = fmt.Errorf("%w: empty axis order", ErrOptionViolation)
			return
		}
		seen := make(map[int]bool, len(axes))
		for _, k := range axes {
			if k < 0 || seen[k] {
				o.err = fmt.Errorf("%w: bad axis order %v", ErrOptionViolation, axes)
				return
			}
			seen[k] = true
		}
		o.Order = append([]int(nil), axes...)
	}
}

// WithAnchor fixes the coordinates of the axes not listed by WithOrder.
func WithAnchor(p space.Point) Option {
	return func(o *RangeOptions) {
		o.Anchor = p
		o.hasAnchor = true
	}
}
