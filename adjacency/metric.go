package adjacency

import (
	"fmt"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/space"
)

// Metric is the adjacency where q is a neighbor of p iff every coordinate
// differs by at most one and at most maxNorm1 coordinates differ.
// It is immutable once built.
type Metric struct {
	dim      int
	maxNorm1 int
	offsets  []space.Point
}

// NewMetric builds the metric adjacency of dimension dim.
// Returns ErrInvalidAdjacency unless 1 <= dim <= space.MaxDimension and
// 1 <= maxNorm1 <= dim.
// Complexity: O(3^D · D).
func NewMetric(dim, maxNorm1 int) (*Metric, error) {
	if dim < 1 || dim > space.MaxDimension || maxNorm1 < 1 || maxNorm1 > dim {
		return nil, fmt.Errorf("%w: dimension %d, maxNorm1 %d", ErrInvalidAdjacency, dim, maxNorm1)
	}
	cube, err := domain.New(space.Diagonal(dim, -1), space.Diagonal(dim, 1))
	if err != nil {
		return nil, err
	}
	m := &Metric{dim: dim, maxNorm1: maxNorm1}
	for off := range cube.All() {
		if n := off.NormL1(); n > 0 && n <= maxNorm1 {
			m.offsets = append(m.offsets, off)
		}
	}

	return m, nil
}

func mustMetric(dim, maxNorm1 int) *Metric {
	m, err := NewMetric(dim, maxNorm1)
	if err != nil {
		panic(err)
	}
	return m
}

// Adj4 returns the 2D 4-adjacency.
func Adj4() *Metric { return mustMetric(2, 1) }

// Adj8 returns the 2D 8-adjacency.
func Adj8() *Metric { return mustMetric(2, 2) }

// Adj6 returns the 3D 6-adjacency.
func Adj6() *Metric { return mustMetric(3, 1) }

// Adj18 returns the 3D 18-adjacency.
func Adj18() *Metric { return mustMetric(3, 2) }

// Adj26 returns the 3D 26-adjacency.
func Adj26() *Metric { return mustMetric(3, 3) }

// Dimension returns the dimension of the related points.
func (m *Metric) Dimension() int { return m.dim }

// MaxNorm1 returns the L1 bound of the relation.
func (m *Metric) MaxNorm1() int { return m.maxNorm1 }

// Offsets returns a copy of the displacement vectors of a neighborhood.
func (m *Metric) Offsets() []space.Point { return append([]space.Point(nil), m.offsets...) }

// IsAdjacentTo reports whether p1 and p2 are distinct neighbors.
// Points of another dimension are never adjacent.
func (m *Metric) IsAdjacentTo(p1, p2 space.Point) bool {
	if p1.Dim() != m.dim || p2.Dim() != m.dim {
		return false
	}
	d := p1.Sub(p2)
	n1 := d.NormL1()

	return n1 > 0 && n1 <= m.maxNorm1 && d.NormInf() <= 1
}

// IsProperlyAdjacentTo reports IsAdjacentTo(p1, p2) with p1 != p2.
func (m *Metric) IsProperlyAdjacentTo(p1, p2 space.Point) bool {
	return p1 != p2 && m.IsAdjacentTo(p1, p2)
}

// WriteNeighborhood appends the neighbors of p accepted by pred.
func (m *Metric) WriteNeighborhood(p space.Point, out []space.Point, pred space.PointPredicate) []space.Point {
	if p.Dim() != m.dim {
		return out
	}
	for _, off := range m.offsets {
		if q := p.Add(off); accept(pred, q) {
			out = append(out, q)
		}
	}

	return out
}

// WriteProperNeighborhood appends the neighbors of p accepted by pred.
// The relation is irreflexive, so this is the same set as WriteNeighborhood.
func (m *Metric) WriteProperNeighborhood(p space.Point, out []space.Point, pred space.PointPredicate) []space.Point {
	return m.WriteNeighborhood(p, out, pred)
}

// WriteClosedNeighborhood appends p when pred accepts it, then its neighbors.
func (m *Metric) WriteClosedNeighborhood(p space.Point, out []space.Point, pred space.PointPredicate) []space.Point {
	if p.Dim() == m.dim && accept(pred, p) {
		out = append(out, p)
	}
	return m.WriteNeighborhood(p, out, pred)
}

// String implements fmt.Stringer, e.g. "Metric(2,1)" for 4-adjacency.
func (m *Metric) String() string {
	return fmt.Sprintf("Metric(%d,%d)", m.dim, m.maxNorm1)
}
