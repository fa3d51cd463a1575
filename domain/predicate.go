package domain

import "github.com/elombardi2/DGtal/space"

// Predicate answers whether a point lies in one domain.
// It references the domain; the domain must outlive the predicate.
type Predicate struct {
	d *HyperRect
}

// Test implements space.PointPredicate.
func (p Predicate) Test(pt space.Point) bool { return p.d.IsInside(pt) }

// Domain returns the referenced domain.
func (p Predicate) Domain() *HyperRect { return p.d }

// IsValid reports whether the predicate is bound to a valid domain.
func (p Predicate) IsValid() bool { return p.d.IsValid() }
