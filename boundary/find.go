package boundary

import (
	"fmt"

	"github.com/elombardi2/DGtal/kspace"
	"github.com/elombardi2/DGtal/space"
)

// FindABel scans the box in default order and returns the first bel met.
// For every scanned point p and every axis k it examines p and p+e_k, then p
// and p-e_k. A budget > 0 bounds the number of scanned points.
//
// Returns ErrSearchExhausted when the budget runs out, ErrBelNotFound when
// the whole box was scanned without success.
// Complexity: O(|box| · D) membership tests.
func FindABel(ks *kspace.KSpace, pred space.PointPredicate, budget int) (kspace.SCell, error) {
	scanned := 0
	for p := range ks.Domain().All() {
		if budget > 0 && scanned >= budget {
			log.Warningf("bel search stopped after %d points", scanned)
			return kspace.SCell{}, fmt.Errorf("%w: %d points scanned", ErrSearchExhausted, scanned)
		}
		scanned++
		in := pred.Test(p)
		for k := 0; k < ks.Dimension(); k++ {
			for _, step := range [2]int{1, -1} {
				q := p.Shift(k, step)
				if member(ks, pred, q) == in {
					continue
				}
				if in {
					return ks.BelAlong(p, k, step == 1)
				}
				return ks.BelAlong(q, k, step != 1)
			}
		}
	}

	return kspace.SCell{}, ErrBelNotFound
}

// ExtractAllBels returns every bel of the shape, ordered by inner point in
// default domain order, then by axis, the upper side before the lower one.
// Complexity: O(|box| · D).
func ExtractAllBels(ks *kspace.KSpace, pred space.PointPredicate) []kspace.SCell {
	var out []kspace.SCell
	for p := range ks.Domain().All() {
		if !pred.Test(p) {
			continue
		}
		for k := 0; k < ks.Dimension(); k++ {
			for _, step := range [2]int{1, -1} {
				q := p.Shift(k, step)
				if member(ks, pred, q) {
					continue
				}
				if bel, err := ks.BelAlong(p, k, step == 1); err == nil {
					out = append(out, bel)
				}
			}
		}
	}

	return out
}
