package domain

import (
	"fmt"
	"iter"

	"github.com/Workiva/go-datastructures/bitarray"

	"github.com/elombardi2/DGtal/space"
)

// DigitalSet is a set of points of one domain, stored as one bit per domain point.
// The zero value is not usable; build it with NewDigitalSet.
type DigitalSet struct {
	d    *HyperRect
	bits bitarray.BitArray
	size int
}

// NewDigitalSet returns an empty set over d.
// Memory: O(|d|/8) bytes.
func NewDigitalSet(d *HyperRect) *DigitalSet {
	return &DigitalSet{d: d, bits: bitarray.NewBitArray(d.Size())}
}

// Domain returns the domain of the set.
func (s *DigitalSet) Domain() *HyperRect { return s.d }

// Size returns the number of points in the set.
func (s *DigitalSet) Size() int { return s.size }

// Insert adds p. Returns ErrOutOfDomain when p is not in the domain.
func (s *DigitalSet) Insert(p space.Point) error {
	idx, ok := s.d.Linear(p)
	if !ok {
		return fmt.Errorf("%w: %v", ErrOutOfDomain, p)
	}
	if set, _ := s.bits.GetBit(idx); set {
		return nil
	}
	if err := s.bits.SetBit(idx); err != nil {
		return fmt.Errorf("domain: set bit %d: %w", idx, err)
	}
	s.size++

	return nil
}

// InsertAll adds every point of pts, stopping at the first error.
func (s *DigitalSet) InsertAll(pts iter.Seq[space.Point]) error {
	for p := range pts {
		if err := s.Insert(p); err != nil {
			return err
		}
	}

	return nil
}

// Erase removes p. Returns ErrOutOfDomain when p is not in the domain.
func (s *DigitalSet) Erase(p space.Point) error {
	idx, ok := s.d.Linear(p)
	if !ok {
		return fmt.Errorf("%w: %v", ErrOutOfDomain, p)
	}
	if set, _ := s.bits.GetBit(idx); !set {
		return nil
	}
	if err := s.bits.ClearBit(idx); err != nil {
		return fmt.Errorf("domain: clear bit %d: %w", idx, err)
	}
	s.size--

	return nil
}

// Contains reports whether p belongs to the set.
func (s *DigitalSet) Contains(p space.Point) bool {
	idx, ok := s.d.Linear(p)
	if !ok {
		return false
	}
	set, err := s.bits.GetBit(idx)

	return err == nil && set
}

// Test implements space.PointPredicate.
func (s *DigitalSet) Test(p space.Point) bool { return s.Contains(p) }

// All yields the points of the set in default domain order.
func (s *DigitalSet) All() iter.Seq[space.Point] {
	return func(yield func(space.Point) bool) {
		for p := range s.d.All() {
			if s.Contains(p) && !yield(p) {
				return
			}
		}
	}
}

// Points collects the set in default domain order.
func (s *DigitalSet) Points() []space.Point {
	out := make([]space.Point, 0, s.size)
	for p := range s.All() {
		out = append(out, p)
	}

	return out
}

// Complement returns the points of the domain missing from s.
func (s *DigitalSet) Complement() *DigitalSet {
	c := NewDigitalSet(s.d)
	for p := range s.d.All() {
		if !s.Contains(p) {
			_ = c.Insert(p)
		}
	}

	return c
}
