package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elombardi2/DGtal/adjacency"
	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/space"
)

func box(t *testing.T, lo, hi space.Point) *domain.HyperRect {
	t.Helper()
	d, err := domain.New(lo, hi)
	require.NoError(t, err)

	return d
}

func TestNewMetric_Invalid(t *testing.T) {
	cases := [][2]int{{0, 1}, {2, 0}, {2, 3}, {space.MaxDimension + 1, 1}, {-1, -1}}
	for _, c := range cases {
		_, err := adjacency.NewMetric(c[0], c[1])
		assert.ErrorIs(t, err, adjacency.ErrInvalidAdjacency, "NewMetric(%d,%d)", c[0], c[1])
	}
}

func TestMetric_NeighborhoodSizes(t *testing.T) {
	cases := []struct {
		name string
		adj  *adjacency.Metric
		dim  int
		want int
	}{
		{"4", adjacency.Adj4(), 2, 4},
		{"8", adjacency.Adj8(), 2, 8},
		{"6", adjacency.Adj6(), 3, 6},
		{"18", adjacency.Adj18(), 3, 18},
		{"26", adjacency.Adj26(), 3, 26},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := space.Diagonal(tc.dim, 3)
			nbrs := tc.adj.WriteNeighborhood(p, nil, nil)
			assert.Len(t, nbrs, tc.want)
			assert.Len(t, tc.adj.Offsets(), tc.want)
			assert.Equal(t, nbrs, tc.adj.WriteProperNeighborhood(p, nil, space.True))
			assert.NotContains(t, nbrs, p)

			closed := tc.adj.WriteClosedNeighborhood(p, nil, nil)
			require.Len(t, closed, tc.want+1)
			assert.Equal(t, p, closed[0])
		})
	}
}

func TestMetric_Order(t *testing.T) {
	got := adjacency.Adj4().WriteNeighborhood(space.MustPoint(0, 0), nil, nil)
	assert.Equal(t, []space.Point{
		space.MustPoint(0, -1),
		space.MustPoint(-1, 0),
		space.MustPoint(1, 0),
		space.MustPoint(0, 1),
	}, got)
	assert.Equal(t, "Metric(2,1)", adjacency.Adj4().String())
}

func TestMetric_SymmetricIrreflexive(t *testing.T) {
	rels := []*adjacency.Metric{adjacency.Adj6(), adjacency.Adj18(), adjacency.Adj26()}
	d := box(t, space.MustPoint(0, 0, 0), space.MustPoint(2, 2, 2))
	for _, adj := range rels {
		for p := range d.All() {
			assert.False(t, adj.IsAdjacentTo(p, p), "%v reflexive at %v", adj, p)
			for q := range d.All() {
				assert.Equal(t, adj.IsAdjacentTo(p, q), adj.IsAdjacentTo(q, p), "%v %v %v", adj, p, q)
				assert.Equal(t, adj.IsAdjacentTo(p, q), adj.IsProperlyAdjacentTo(p, q))
			}
		}
	}

	assert.False(t, adjacency.Adj4().IsAdjacentTo(space.MustPoint(0, 0), space.MustPoint(1, 1)))
	assert.True(t, adjacency.Adj8().IsAdjacentTo(space.MustPoint(0, 0), space.MustPoint(1, 1)))
	assert.False(t, adjacency.Adj8().IsAdjacentTo(space.MustPoint(0, 0), space.MustPoint(2, 0)))
	assert.False(t, adjacency.Adj8().IsAdjacentTo(space.MustPoint(0, 0), space.MustPoint(1, 0, 0)))
}

func TestMetric_NeighborhoodMatchesRelation(t *testing.T) {
	adj := adjacency.Adj18()
	p := space.MustPoint(1, 1, 1)
	nbrs := adj.WriteNeighborhood(p, nil, nil)
	seen := make(map[space.Point]bool, len(nbrs))
	for _, q := range nbrs {
		assert.True(t, adj.IsAdjacentTo(p, q))
		assert.False(t, seen[q], "duplicate %v", q)
		seen[q] = true
	}

	even := space.PredicateFunc(func(q space.Point) bool { return q.NormL1()%2 == 0 })
	for _, q := range adj.WriteNeighborhood(p, nil, even) {
		assert.True(t, even.Test(q))
	}
}

func TestDomainAdjacency(t *testing.T) {
	d := box(t, space.MustPoint(0, 0), space.MustPoint(4, 4))

	_, err := adjacency.NewDomainAdjacency(d, adjacency.Adj6())
	assert.ErrorIs(t, err, adjacency.ErrDimensionMismatch)

	da, err := adjacency.NewDomainAdjacency(d, adjacency.Adj8())
	require.NoError(t, err)
	assert.True(t, da.IsValid())
	assert.Same(t, d, da.Domain())
	assert.Equal(t, 2, da.Dimension())

	corner := da.WriteNeighborhood(space.MustPoint(0, 0), nil, nil)
	assert.ElementsMatch(t, []space.Point{
		space.MustPoint(1, 0), space.MustPoint(0, 1), space.MustPoint(1, 1),
	}, corner)

	for p := range d.All() {
		for _, q := range da.WriteProperNeighborhood(p, nil, nil) {
			assert.True(t, d.IsInside(q), "neighbor %v of %v outside", q, p)
			assert.True(t, da.IsAdjacentTo(p, q))
			assert.NotEqual(t, p, q)
		}
	}

	assert.False(t, da.IsAdjacentTo(space.MustPoint(4, 4), space.MustPoint(5, 5)))

	onlyX := space.PredicateFunc(func(q space.Point) bool { return q.At(1) == 0 })
	got := da.WriteClosedNeighborhood(space.MustPoint(0, 0), nil, onlyX)
	assert.Equal(t, []space.Point{space.MustPoint(0, 0), space.MustPoint(1, 0)}, got)
}

func TestComponents(t *testing.T) {
	d := box(t, space.MustPoint(0, 0), space.MustPoint(3, 3))
	diag := map[space.Point]bool{
		space.MustPoint(0, 0): true,
		space.MustPoint(1, 1): true,
		space.MustPoint(3, 0): true,
		space.MustPoint(3, 1): true,
	}
	pred := space.PredicateFunc(func(p space.Point) bool { return diag[p] })

	c4, err := adjacency.Components(d, adjacency.Adj4(), pred)
	require.NoError(t, err)
	assert.Equal(t, [][]space.Point{
		{space.MustPoint(0, 0)},
		{space.MustPoint(3, 0), space.MustPoint(3, 1)},
		{space.MustPoint(1, 1)},
	}, c4)

	c8, err := adjacency.Components(d, adjacency.Adj8(), pred)
	require.NoError(t, err)
	require.Len(t, c8, 2)
	assert.Equal(t, []space.Point{space.MustPoint(0, 0), space.MustPoint(1, 1)}, c8[0])

	_, err = adjacency.Components(d, adjacency.Adj26(), pred)
	assert.ErrorIs(t, err, adjacency.ErrDimensionMismatch)
}
