package kspace

import (
	"github.com/elombardi2/DGtal/space"
)

// SurfelAdjacency tells, for each ordered pair (tracking axis i, orthogonal
// axis j), whether bels connect through the interior or the exterior.
type SurfelAdjacency struct {
	dim      int
	interior [space.MaxDimension][space.MaxDimension]bool
}

// NewSurfelAdjacency returns a surfel adjacency of dimension dim with every
// pair set to interior (true) or exterior (false).
func NewSurfelAdjacency(dim int, interior bool) *SurfelAdjacency {
	if dim > space.MaxDimension {
		dim = space.MaxDimension
	}
	a := &SurfelAdjacency{dim: dim}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			a.interior[i][j] = interior
		}
	}
	return a
}

// Dimension returns the dimension the adjacency was built for.
func (a *SurfelAdjacency) Dimension() int { return a.dim }

// SetAdjacency sets the pair (i, j) to interior or exterior.
// Axes outside 0..dim-1 are ignored.
func (a *SurfelAdjacency) SetAdjacency(i, j int, interior bool) {
	if i < 0 || j < 0 || i >= a.dim || j >= a.dim {
		return
	}
	a.interior[i][j] = interior
}

// IsInterior reports whether pair (i, j) uses interior adjacency.
func (a *SurfelAdjacency) IsInterior(i, j int) bool {
	if i < 0 || j < 0 || i >= a.dim || j >= a.dim {
		return false
	}
	return a.interior[i][j]
}

// SurfelNeighborhood is the neighborhood of one surfel in a KSpace. Rebind it
// with SetSurfel to move along a boundary without allocating.
type SurfelNeighborhood struct {
	ks    *KSpace
	adj   *SurfelAdjacency
	s     SCell
	orth  int
	inner SCell
	outer SCell
}

// NewSurfelNeighborhood returns a neighborhood bound to ks and adj.
// Call SetSurfel before any query.
func NewSurfelNeighborhood(ks *KSpace, adj *SurfelAdjacency) *SurfelNeighborhood {
	return &SurfelNeighborhood{ks: ks, adj: adj, orth: -1}
}

// SetSurfel moves the neighborhood to s.
func (n *SurfelNeighborhood) SetSurfel(s SCell) {
	n.s = s
	n.orth = s.OrthDir()
	n.inner = n.ks.InnerSpel(s)
	n.outer = n.ks.OuterSpel(s)
}

// Surfel returns the current surfel.
func (n *SurfelNeighborhood) Surfel() SCell { return n.s }

// OrthDir returns the orthogonal axis of the current surfel.
func (n *SurfelNeighborhood) OrthDir() int { return n.orth }

// InnerSpel returns the spel on the direct side of the surfel.
func (n *SurfelNeighborhood) InnerSpel() SCell { return n.inner }

// OuterSpel returns the spel on the indirect side of the surfel.
func (n *SurfelNeighborhood) OuterSpel() SCell { return n.outer }

// Follower1 returns the bel turning around the inner spel along axis t:
// it separates the inner spel from its neighbor along t.
func (n *SurfelNeighborhood) Follower1(t int, pos bool) SCell {
	return n.ks.orientedBel(n.inner.K, t, pos)
}

// Follower2 returns the surfel next to the current one along axis t.
func (n *SurfelNeighborhood) Follower2(t int, pos bool) SCell {
	return n.ks.SAdjacent(n.s, t, pos)
}

// Follower3 returns the bel turning around the outer spel along axis t:
// it separates the neighbor along t of the outer spel from the outer spel.
func (n *SurfelNeighborhood) Follower3(t int, pos bool) SCell {
	step := -2
	if pos {
		step = 2
	}
	shifted := n.ks.wrapK(n.outer.K.Shift(t, step))
	return n.ks.orientedBel(shifted, t, !pos)
}

// AdjacentOnPointPredicate returns the bel following the current one along
// axis t (upward when pos) on the boundary of the shape given by pred, and
// the turn taken. Points outside the box are outside the shape.
//
// With interior adjacency the concave follower is tested first, then the
// straight one; with exterior adjacency the straight follower wins unless
// both shifted spels are inside. Otherwise the convex follower is returned.
// t must be an open axis of the surfel; for its orthogonal axis the surfel
// itself is returned with Turn 0.
func (n *SurfelNeighborhood) AdjacentOnPointPredicate(pred space.PointPredicate, t int, pos bool) (SCell, Turn) {
	if t == n.orth || n.orth < 0 {
		return n.s, 0
	}
	step := -1
	if pos {
		step = 1
	}
	a := n.inner.Coords()
	b := n.outer.Coords()
	aIn := n.inside(pred, n.ks.wrapPoint(a.Shift(t, step)))
	bIn := n.inside(pred, n.ks.wrapPoint(b.Shift(t, step)))

	if n.adj.IsInterior(t, n.orth) {
		switch {
		case bIn:
			return n.Follower3(t, pos), Concave
		case aIn:
			return n.Follower2(t, pos), Straight
		}
		return n.Follower1(t, pos), Convex
	}
	if aIn {
		if bIn {
			return n.Follower3(t, pos), Concave
		}
		return n.Follower2(t, pos), Straight
	}
	return n.Follower1(t, pos), Convex
}

func (n *SurfelNeighborhood) inside(pred space.PointPredicate, p space.Point) bool {
	return n.ks.IsPointInside(p) && (pred == nil || pred.Test(p))
}

// orientedBel returns the bel between the inside spel of Khalimsky
// coordinates spel and its neighbor along axis k (upward when up).
func (ks *KSpace) orientedBel(spel space.Point, k int, up bool) SCell {
	step := -1
	if up {
		step = 1
	}
	bel := spel.Shift(k, step)
	return SCell{K: ks.wrapK(bel), Positive: up == (openCount(bel, k)&1 == 1)}
}
