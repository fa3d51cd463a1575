package boundary

import (
	"golang.org/x/exp/slices"

	"github.com/elombardi2/DGtal/kspace"
	"github.com/elombardi2/DGtal/space"
)

// crossings indexes the bels orthogonal to axis 0 by the row they cut:
// the row key is the Khalimsky coordinates with axis 0 cleared.
type crossings map[space.Point][]int

func newCrossings(bels []kspace.SCell) crossings {
	rows := make(crossings)
	for _, b := range bels {
		if b.OrthDir() != 0 {
			continue
		}
		key := b.K.With(0, 0)
		rows[key] = append(rows[key], b.K.At(0))
	}
	for _, xs := range rows {
		slices.Sort(xs)
	}
	return rows
}

// inside reports whether an odd number of crossings lie above the spel of p on axis 0.
func (c crossings) inside(p space.Point) bool {
	k := p.Scale(2).Add(space.Diagonal(p.Dim(), 1))
	xs := c[k.With(0, 0)]
	if len(xs) == 0 {
		return false
	}
	i, _ := slices.BinarySearch(xs, k.At(0)+1)

	return (len(xs)-i)%2 == 1
}

// ContainsPoint reports whether p is enclosed by the closed boundary bels,
// counting the bels crossed by the ray from p toward +axis 0.
// Complexity: O(B) for B bels.
func ContainsPoint(bels []kspace.SCell, p space.Point) bool {
	return newCrossings(bels).inside(p)
}

// Interior returns the points of the box enclosed by the closed boundary
// bels, in default domain order. Applied to every bel of a shape that does
// not wrap around a periodic axis, it returns the points of the shape.
// Complexity: O(B log B + |box| · log B).
func Interior(ks *kspace.KSpace, bels []kspace.SCell) []space.Point {
	rows := newCrossings(bels)
	var out []space.Point
	for p := range ks.Domain().All() {
		if rows.inside(p) {
			out = append(out, p)
		}
	}

	return out
}
