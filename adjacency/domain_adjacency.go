package adjacency

import (
	"fmt"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/space"
)

// DomainAdjacency restricts an Adjacency to the points of a domain.
// It references both the domain and the relation; neither is copied.
type DomainAdjacency struct {
	dom  *domain.HyperRect
	pred domain.Predicate
	adj  Adjacency
}

// NewDomainAdjacency binds adj to d.
// Returns ErrDimensionMismatch when their dimensions differ.
func NewDomainAdjacency(d *domain.HyperRect, adj Adjacency) (*DomainAdjacency, error) {
	if d.Dimension() != adj.Dimension() {
		return nil, fmt.Errorf("%w: domain %d, adjacency %d", ErrDimensionMismatch, d.Dimension(), adj.Dimension())
	}
	return &DomainAdjacency{dom: d, pred: d.Predicate(), adj: adj}, nil
}

// Domain returns the bounding domain.
func (a *DomainAdjacency) Domain() *domain.HyperRect { return a.dom }

// Predicate returns the membership view of the bounding domain.
func (a *DomainAdjacency) Predicate() domain.Predicate { return a.pred }

// Adjacency returns the underlying relation.
func (a *DomainAdjacency) Adjacency() Adjacency { return a.adj }

// IsValid reports whether domain and relation are set and agree on dimension.
func (a *DomainAdjacency) IsValid() bool {
	return a != nil && a.adj != nil && a.dom.IsValid() && a.dom.Dimension() == a.adj.Dimension()
}

// Dimension returns the dimension of the domain.
func (a *DomainAdjacency) Dimension() int { return a.dom.Dimension() }

// IsAdjacentTo reports whether both points lie in the domain and are adjacent.
func (a *DomainAdjacency) IsAdjacentTo(p1, p2 space.Point) bool {
	return a.dom.IsInside(p1) && a.dom.IsInside(p2) && a.adj.IsAdjacentTo(p1, p2)
}

// IsProperlyAdjacentTo reports IsAdjacentTo(p1, p2) with p1 != p2.
func (a *DomainAdjacency) IsProperlyAdjacentTo(p1, p2 space.Point) bool {
	return p1 != p2 && a.IsAdjacentTo(p1, p2)
}

// WriteNeighborhood appends the neighbors of p lying in the domain and accepted by pred.
func (a *DomainAdjacency) WriteNeighborhood(p space.Point, out []space.Point, pred space.PointPredicate) []space.Point {
	return a.adj.WriteNeighborhood(p, out, a.restrict(pred))
}

// WriteProperNeighborhood is WriteNeighborhood with p excluded.
func (a *DomainAdjacency) WriteProperNeighborhood(p space.Point, out []space.Point, pred space.PointPredicate) []space.Point {
	return a.adj.WriteProperNeighborhood(p, out, a.restrict(pred))
}

// WriteClosedNeighborhood writes p first when it lies in the domain and pred accepts it.
func (a *DomainAdjacency) WriteClosedNeighborhood(p space.Point, out []space.Point, pred space.PointPredicate) []space.Point {
	return a.adj.WriteClosedNeighborhood(p, out, a.restrict(pred))
}

func (a *DomainAdjacency) restrict(pred space.PointPredicate) space.PointPredicate {
	if pred == nil {
		return a.pred
	}
	return space.And(a.pred, pred)
}
