package boundary

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/elombardi2/DGtal/kspace"
	"github.com/elombardi2/DGtal/space"
)

// TrackBoundary returns every bel connected to seed by bel adjacency, seed
// first, in breadth-first order. Around each bel the open axes are visited in
// ascending order, the direct orientation before the indirect one.
//
// Returns ErrNotABel for an invalid seed and ErrSearchExhausted when more
// than MaxSurfels bels would be collected.
// Complexity: O(B · D) for B collected bels.
func TrackBoundary(ks *kspace.KSpace, adj *kspace.SurfelAdjacency, pred space.PointPredicate,
	seed kspace.SCell, opts ...Option) ([]kspace.SCell, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := checkBel(ks, pred, seed); err != nil {
		return nil, err
	}

	nbh := kspace.NewSurfelNeighborhood(ks, adj)
	visited := mapset.NewThreadUnsafeSet[kspace.SCell](seed)
	queue := []kspace.SCell{seed}
	for qi := 0; qi < len(queue); qi++ {
		s := queue[qi]
		nbh.SetSurfel(s)
		for _, t := range s.Dirs() {
			direct := ks.SDirect(s, t)
			for _, pos := range [2]bool{direct, !direct} {
				next, _ := nbh.AdjacentOnPointPredicate(pred, t, pos)
				if !visited.Add(next) {
					continue
				}
				if o.MaxSurfels > 0 && len(queue) >= o.MaxSurfels {
					log.Warningf("tracking from %v stopped at %d bels", seed, len(queue))
					return nil, fmt.Errorf("%w: more than %d bels", ErrSearchExhausted, o.MaxSurfels)
				}
				queue = append(queue, next)
			}
		}
	}
	log.Debugf("tracked %d bels from %v", len(queue), seed)

	return queue, nil
}

// Track2DBoundary returns the closed contour of a 2D shape through seed, in
// the direct orientation of its bels, starting with seed.
// Returns ErrDimensionMismatch unless the space is 2D.
func Track2DBoundary(ks *kspace.KSpace, adj *kspace.SurfelAdjacency, pred space.PointPredicate,
	seed kspace.SCell) ([]kspace.SCell, error) {
	if ks.Dimension() != 2 {
		return nil, fmt.Errorf("%w: Track2DBoundary in dimension %d", ErrDimensionMismatch, ks.Dimension())
	}
	if err := checkBel(ks, pred, seed); err != nil {
		return nil, err
	}
	return trackSlice(ks, adj, pred, 1-seed.OrthDir(), seed)
}

// Track2DSliceBoundary returns the closed contour through seed in the plane
// spanned by axis k and the orthogonal axis of seed, in any dimension.
// Each step moves along the open axis of the current bel within the plane,
// in its direct orientation.
// Returns ErrDimensionMismatch when k is not an open axis of seed.
func Track2DSliceBoundary(ks *kspace.KSpace, adj *kspace.SurfelAdjacency, pred space.PointPredicate,
	k int, seed kspace.SCell) ([]kspace.SCell, error) {
	if err := checkBel(ks, pred, seed); err != nil {
		return nil, err
	}
	if k < 0 || k >= ks.Dimension() || k == seed.OrthDir() {
		return nil, fmt.Errorf("%w: slice axis %d for seed %v", ErrDimensionMismatch, k, seed)
	}
	return trackSlice(ks, adj, pred, k, seed)
}

func trackSlice(ks *kspace.KSpace, adj *kspace.SurfelAdjacency, pred space.PointPredicate,
	k int, seed kspace.SCell) ([]kspace.SCell, error) {
	n := seed.OrthDir()
	nbh := kspace.NewSurfelNeighborhood(ks, adj)
	contour := []kspace.SCell{seed}
	s := seed
	budget := ks.CellCount()
	for i := uint64(0); i < budget; i++ {
		t := k
		if s.OrthDir() == k {
			t = n
		}
		nbh.SetSurfel(s)
		next, _ := nbh.AdjacentOnPointPredicate(pred, t, ks.SDirect(s, t))
		if next == seed {
			return contour, nil
		}
		contour = append(contour, next)
		s = next
	}
	log.Warningf("contour from %v not closed after %d steps", seed, budget)

	return nil, fmt.Errorf("%w: contour from %v not closed", ErrSearchExhausted, seed)
}
