package boundary

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/elombardi2/DGtal/kspace"
	"github.com/elombardi2/DGtal/space"
)

// ExtractAll2DSCellContours returns every closed contour of a 2D shape. Each
// bel belongs to exactly one contour; contours appear in the order of their
// first bel in ExtractAllBels.
// Complexity: O(|box| + B) for B bels.
func ExtractAll2DSCellContours(ks *kspace.KSpace, adj *kspace.SurfelAdjacency,
	pred space.PointPredicate) ([][]kspace.SCell, error) {
	if ks.Dimension() != 2 {
		return nil, fmt.Errorf("%w: 2D contours in dimension %d", ErrDimensionMismatch, ks.Dimension())
	}
	return extractComponents(ks, pred, func(seed kspace.SCell) ([]kspace.SCell, error) {
		return Track2DBoundary(ks, adj, pred, seed)
	})
}

// ExtractAllConnectedSCell returns every connected component of the boundary
// under bel adjacency, in any dimension. Components appear in the order of
// their first bel in ExtractAllBels, each in breadth-first order.
func ExtractAllConnectedSCell(ks *kspace.KSpace, adj *kspace.SurfelAdjacency,
	pred space.PointPredicate) ([][]kspace.SCell, error) {
	return extractComponents(ks, pred, func(seed kspace.SCell) ([]kspace.SCell, error) {
		return TrackBoundary(ks, adj, pred, seed)
	})
}

func extractComponents(ks *kspace.KSpace, pred space.PointPredicate,
	track func(kspace.SCell) ([]kspace.SCell, error)) ([][]kspace.SCell, error) {
	seen := mapset.NewThreadUnsafeSet[kspace.SCell]()
	var out [][]kspace.SCell
	for _, bel := range ExtractAllBels(ks, pred) {
		if seen.ContainsOne(bel) {
			continue
		}
		comp, err := track(bel)
		if err != nil {
			return nil, err
		}
		seen.Append(comp...)
		out = append(out, comp)
		log.Debugf("component %d: %d bels from %v", len(out), len(comp), bel)
	}

	return out, nil
}

// ExtractAllPointContours4C returns, per 2D contour, its sequence of pointels:
// the start pointel of each linel. The result is a closed 4-connected polygon
// of the dual grid.
func ExtractAllPointContours4C(ks *kspace.KSpace, adj *kspace.SurfelAdjacency,
	pred space.PointPredicate) ([][]space.Point, error) {
	contours, err := ExtractAll2DSCellContours(ks, adj, pred)
	if err != nil {
		return nil, err
	}
	out := make([][]space.Point, len(contours))
	for i, c := range contours {
		out[i] = ContourPointels(ks, c)
	}

	return out, nil
}

// ExtractAllInnerContours returns, per 2D contour, the inner points of its
// bels with consecutive duplicates (cyclically) collapsed.
func ExtractAllInnerContours(ks *kspace.KSpace, adj *kspace.SurfelAdjacency,
	pred space.PointPredicate) ([][]space.Point, error) {
	contours, err := ExtractAll2DSCellContours(ks, adj, pred)
	if err != nil {
		return nil, err
	}
	out := make([][]space.Point, len(contours))
	for i, c := range contours {
		out[i] = ContourInnerPoints(ks, c)
	}

	return out, nil
}

// ContourPointels maps an ordered 2D contour to the start pointel of each
// linel, in the same order.
func ContourPointels(ks *kspace.KSpace, contour []kspace.SCell) []space.Point {
	out := make([]space.Point, 0, len(contour))
	for _, s := range contour {
		t := s.Dirs()[0]
		step := 1
		if ks.SDirect(s, t) {
			step = -1
		}
		start := ks.SCellAt(s.K.Shift(t, step), true)
		out = append(out, start.Coords())
	}

	return out
}

// ContourInnerPoints maps an ordered contour to the points of its inner
// spels, dropping a point equal to its predecessor and a last point equal to
// the first.
func ContourInnerPoints(ks *kspace.KSpace, contour []kspace.SCell) []space.Point {
	out := make([]space.Point, 0, len(contour))
	for _, s := range contour {
		p := ks.InnerSpel(s).Coords()
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}

	return out
}
