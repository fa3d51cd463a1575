package domain

import (
	"fmt"
	"iter"

	"github.com/elombardi2/DGtal/space"
)

// HyperRect is the axis-aligned box [lower, upper] of a digital space.
// It is immutable once built. The zero value is an empty domain without
// dimension: it iterates to nothing and is not valid.
type HyperRect struct {
	lower, upper space.Point
	empty        bool
	full         *Range
}

// New builds the domain bounded by lower and upper (inclusive).
// Returns ErrDimensionMismatch when the bounds differ in dimension or are
// zero-dimensional. Inverted bounds on any axis yield an empty domain.
// Complexity: O(D).
func New(lower, upper space.Point) (*HyperRect, error) {
	if lower.Dim() == 0 || lower.Dim() != upper.Dim() {
		return nil, fmt.Errorf("%w: lower %v, upper %v", ErrDimensionMismatch, lower, upper)
	}
	d := &HyperRect{lower: lower, upper: upper, empty: !lower.IsLower(upper)}
	d.full = d.defaultRange()

	return d, nil
}

// Empty returns the empty domain of dimension dim (lower = 0, upper = -1).
func Empty(dim int) *HyperRect {
	d, _ := New(space.Zero(dim), space.Diagonal(dim, -1))
	return d
}

// Lower returns the lower bound.
func (d *HyperRect) Lower() space.Point { return d.lower }

// Upper returns the upper bound.
func (d *HyperRect) Upper() space.Point { return d.upper }

// Dimension returns the dimension of the domain.
func (d *HyperRect) Dimension() int { return d.lower.Dim() }

// IsEmpty reports whether the domain holds no point.
func (d *HyperRect) IsEmpty() bool { return d.empty || d.full == nil }

// Extent returns upper-lower+1 per axis.
func (d *HyperRect) Extent() space.Point {
	if d.Dimension() == 0 {
		return space.Point{}
	}
	return d.upper.Sub(d.lower).Add(space.Diagonal(d.Dimension(), 1))
}

// Size returns the number of points in the domain.
// Complexity: O(D).
func (d *HyperRect) Size() uint64 {
	if d.IsEmpty() {
		return 0
	}
	n := uint64(1)
	ext := d.Extent()
	for i := 0; i < d.Dimension(); i++ {
		n *= uint64(ext.At(i))
	}

	return n
}

// IsInside reports whether p lies in the domain.
// Points of another dimension are never inside.
func (d *HyperRect) IsInside(p space.Point) bool {
	if d.IsEmpty() || p.Dim() != d.Dimension() {
		return false
	}
	return d.lower.IsLower(p) && p.IsLower(d.upper)
}

// IsValid reports whether the bounds are consistent with the domain dimension.
func (d *HyperRect) IsValid() bool {
	return d != nil && d.lower.Dim() > 0 && d.lower.Dim() == d.upper.Dim() && d.full != nil
}

// Linear maps p to its rank in the default iteration order.
// The second result is false when p is outside the domain.
// Complexity: O(D).
func (d *HyperRect) Linear(p space.Point) (uint64, bool) {
	if !d.IsInside(p) {
		return 0, false
	}
	var idx, stride uint64 = 0, 1
	for i := 0; i < d.Dimension(); i++ {
		idx += uint64(p.At(i)-d.lower.At(i)) * stride
		stride *= uint64(d.upper.At(i) - d.lower.At(i) + 1)
	}

	return idx, true
}

// PointAt is the inverse of Linear for idx < Size().
func (d *HyperRect) PointAt(idx uint64) space.Point {
	p := d.lower
	for i := 0; i < d.Dimension(); i++ {
		ext := uint64(d.upper.At(i) - d.lower.At(i) + 1)
		p = p.Shift(i, int(idx%ext))
		idx /= ext
	}

	return p
}

// Predicate returns the membership view of d.
func (d *HyperRect) Predicate() Predicate { return Predicate{d: d} }

// Range returns an iteration view of d configured by opts.
// Returns ErrOptionViolation for an axis outside 0..D-1, an anchor of the
// wrong dimension, or an anchor outside the domain on a frozen axis.
func (d *HyperRect) Range(opts ...Option) (*Range, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	dim := d.Dimension()
	order := o.Order
	if order == nil {
		order = identityOrder(dim)
	}
	if len(order) > dim {
		return nil, fmt.Errorf("%w: %d axes for dimension %d", ErrOptionViolation, len(order), dim)
	}
	free := make([]bool, dim)
	for _, k := range order {
		if k >= dim {
			return nil, fmt.Errorf("%w: axis %d out of range", ErrOptionViolation, k)
		}
		free[k] = true
	}

	anchor := d.lower
	if o.hasAnchor {
		if o.Anchor.Dim() != dim {
			return nil, fmt.Errorf("%w: anchor %v", ErrOptionViolation, o.Anchor)
		}
		anchor = o.Anchor
	}

	r := &Range{dom: d, order: append([]int(nil), order...), lower: d.lower, upper: d.upper, empty: d.IsEmpty()}
	for k := 0; k < dim; k++ {
		if free[k] {
			continue
		}
		c := anchor.At(k)
		if !d.IsEmpty() && (c < d.lower.At(k) || c > d.upper.At(k)) {
			return nil, fmt.Errorf("%w: anchor %v outside domain on axis %d", ErrOptionViolation, anchor, k)
		}
		r.lower = r.lower.With(k, c)
		r.upper = r.upper.With(k, c)
	}

	return r, nil
}

// Begin returns an iterator on the first point in default order.
func (d *HyperRect) Begin() *Iterator { return d.rng().Begin() }

// BeginAt returns an iterator on p in default order (End if p is outside).
func (d *HyperRect) BeginAt(p space.Point) *Iterator { return d.rng().BeginAt(p) }

// End returns the past-the-end iterator in default order.
func (d *HyperRect) End() *Iterator { return d.rng().End() }

// All yields every point in default order.
func (d *HyperRect) All() iter.Seq[space.Point] { return d.rng().All() }

// Backward yields every point in reverse default order.
func (d *HyperRect) Backward() iter.Seq[space.Point] { return d.rng().Backward() }

// String implements fmt.Stringer.
func (d *HyperRect) String() string {
	return fmt.Sprintf("[HyperRect] %v-%v", d.lower, d.upper)
}

// dimensionless stands in for the default range of the zero HyperRect.
var dimensionless = &Range{empty: true}

func (d *HyperRect) rng() *Range {
	if d.full == nil {
		return dimensionless
	}
	return d.full
}

func (d *HyperRect) defaultRange() *Range {
	return &Range{
		dom:   d,
		order: identityOrder(d.Dimension()),
		lower: d.lower,
		upper: d.upper,
		empty: d.empty,
	}
}

func identityOrder(dim int) []int {
	order := make([]int, dim)
	for i := range order {
		order[i] = i
	}

	return order
}
