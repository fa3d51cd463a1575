package domain

import (
	"iter"

	"github.com/elombardi2/DGtal/space"
)

// Range is an iteration view of a HyperRect. Axes listed in the order vary,
// the first one fastest; every other axis stays at its anchor coordinate.
type Range struct {
	dom          *HyperRect
	order        []int
	lower, upper space.Point
	empty        bool
}

// iterator positions
const (
	posBeforeBegin int8 = -1
	posValid       int8 = 0
	posEnd         int8 = 1
)

// Iterator is a bidirectional cursor over a Range.
// Next past End and Prev before Begin are no-ops.
type Iterator struct {
	r   *Range
	cur space.Point
	pos int8
}

// Domain returns the domain the range iterates.
func (r *Range) Domain() *HyperRect { return r.dom }

// Order returns a copy of the iterated axes, fastest first.
func (r *Range) Order() []int { return append([]int(nil), r.order...) }

// Lower returns the first point of the range.
func (r *Range) Lower() space.Point { return r.lower }

// Upper returns the last point of the range.
func (r *Range) Upper() space.Point { return r.upper }

// Size returns the number of points the range yields.
func (r *Range) Size() uint64 {
	if r.empty {
		return 0
	}
	n := uint64(1)
	for _, k := range r.order {
		n *= uint64(r.upper.At(k) - r.lower.At(k) + 1)
	}

	return n
}

// Contains reports whether p is one of the points the range yields.
func (r *Range) Contains(p space.Point) bool {
	return !r.empty && p.Dim() == r.lower.Dim() && r.lower.IsLower(p) && p.IsLower(r.upper)
}

// Begin returns an iterator on the first point (End for an empty range).
func (r *Range) Begin() *Iterator {
	if r.empty {
		return r.End()
	}
	return &Iterator{r: r, cur: r.lower, pos: posValid}
}

// BeginAt returns an iterator on p, or End when p is not in the range.
func (r *Range) BeginAt(p space.Point) *Iterator {
	if !r.Contains(p) {
		return r.End()
	}
	return &Iterator{r: r, cur: p, pos: posValid}
}

// End returns the past-the-end iterator.
func (r *Range) End() *Iterator {
	return &Iterator{r: r, cur: r.upper, pos: posEnd}
}

// All yields the points of the range in order.
func (r *Range) All() iter.Seq[space.Point] {
	return func(yield func(space.Point) bool) {
		for it := r.Begin(); it.Valid(); it.Next() {
			if !yield(it.cur) {
				return
			}
		}
	}
}

// Backward yields the points of the range in reverse order.
func (r *Range) Backward() iter.Seq[space.Point] {
	return func(yield func(space.Point) bool) {
		it := r.End()
		for it.Prev() {
			if !yield(it.cur) {
				return
			}
		}
	}
}

// Points collects the range in order.
func (r *Range) Points() []space.Point {
	out := make([]space.Point, 0, r.Size())
	for p := range r.All() {
		out = append(out, p)
	}

	return out
}

// Valid reports whether the iterator designates a point.
func (it *Iterator) Valid() bool { return it.pos == posValid }

// Point returns the current point. Only meaningful when Valid.
func (it *Iterator) Point() space.Point { return it.cur }

// Equal reports whether both iterators walk the same range and stand at the same position.
func (it *Iterator) Equal(other *Iterator) bool {
	if it.r != other.r || it.pos != other.pos {
		return false
	}
	return it.pos != posValid || it.cur == other.cur
}

// Next advances to the following point and reports whether it is valid.
// From before-begin it moves to the first point.
// Complexity: O(1) amortized.
func (it *Iterator) Next() bool {
	switch it.pos {
	case posEnd:
		return false
	case posBeforeBegin:
		if it.r.empty {
			it.pos = posEnd
			return false
		}
		it.cur, it.pos = it.r.lower, posValid
		return true
	}

	for _, k := range it.r.order {
		if it.cur.At(k) < it.r.upper.At(k) {
			it.cur = it.cur.Shift(k, 1)
			return true
		}
		it.cur = it.cur.With(k, it.r.lower.At(k))
	}
	// every axis wrapped: past the last point
	it.cur, it.pos = it.r.upper, posEnd

	return false
}

// Prev moves back to the preceding point and reports whether it is valid.
// From End it moves to the last point.
// Complexity: O(1) amortized.
func (it *Iterator) Prev() bool {
	switch it.pos {
	case posBeforeBegin:
		return false
	case posEnd:
		if it.r.empty {
			it.pos = posBeforeBegin
			return false
		}
		it.cur, it.pos = it.r.upper, posValid
		return true
	}

	for _, k := range it.r.order {
		if it.cur.At(k) > it.r.lower.At(k) {
			it.cur = it.cur.Shift(k, -1)
			return true
		}
		it.cur = it.cur.With(k, it.r.upper.At(k))
	}
	it.cur, it.pos = it.r.lower, posBeforeBegin

	return false
}
