package kspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elombardi2/DGtal/kspace"
	"github.com/elombardi2/DGtal/space"
)

func setPredicate(pts ...space.Point) space.PointPredicate {
	m := make(map[space.Point]bool, len(pts))
	for _, p := range pts {
		m[p] = true
	}
	return space.PredicateFunc(func(p space.Point) bool { return m[p] })
}

// step follows a 2D bel along its only open axis in its direct orientation.
func step(ks *kspace.KSpace, n *kspace.SurfelNeighborhood, pred space.PointPredicate, s kspace.SCell) (kspace.SCell, kspace.Turn) {
	n.SetSurfel(s)
	t := s.Dirs()[0]
	return n.AdjacentOnPointPredicate(pred, t, ks.SDirect(s, t))
}

func TestAdjacentOnPointPredicate_Pixel(t *testing.T) {
	ks := mustKSpace(t, space.MustPoint(-2, -2), space.MustPoint(2, 2))
	n := kspace.NewSurfelNeighborhood(ks, kspace.NewSurfelAdjacency(2, true))
	pred := setPredicate(space.MustPoint(0, 0))

	start, err := ks.Bel(space.MustPoint(0, 0), space.MustPoint(1, 0))
	require.NoError(t, err)
	assert.Equal(t, kspace.SCell{K: space.MustPoint(2, 1), Positive: false}, start)

	want := []kspace.SCell{
		{K: space.MustPoint(1, 0), Positive: false},
		{K: space.MustPoint(0, 1), Positive: true},
		{K: space.MustPoint(1, 2), Positive: true},
		start,
	}
	s := start
	for i, w := range want {
		var turn kspace.Turn
		s, turn = step(ks, n, pred, s)
		assert.Equal(t, w, s, "step %d", i)
		assert.Equal(t, kspace.Convex, turn, "step %d", i)
		assert.Equal(t, space.MustPoint(0, 0), ks.InnerSpel(s).Coords())
	}
}

func TestAdjacentOnPointPredicate_Turns(t *testing.T) {
	ks := mustKSpace(t, space.MustPoint(-3, -3), space.MustPoint(3, 3))
	pred := setPredicate(space.MustPoint(0, 0), space.MustPoint(1, 0), space.MustPoint(1, 1))

	top, err := ks.Bel(space.MustPoint(0, 0), space.MustPoint(0, 1))
	require.NoError(t, err)

	interior := kspace.NewSurfelNeighborhood(ks, kspace.NewSurfelAdjacency(2, true))
	next, turn := step(ks, interior, pred, top)
	assert.Equal(t, kspace.Concave, turn)
	assert.Equal(t, kspace.SCell{K: space.MustPoint(2, 3), Positive: true}, next)
	assert.Equal(t, space.MustPoint(1, 1), ks.InnerSpel(next).Coords())
	assert.Equal(t, space.MustPoint(0, 1), ks.OuterSpel(next).Coords())

	bottom, err := ks.Bel(space.MustPoint(0, 0), space.MustPoint(0, -1))
	require.NoError(t, err)
	interior.SetSurfel(bottom)
	t0 := 0
	next, turn = interior.AdjacentOnPointPredicate(pred, t0, true)
	assert.Equal(t, kspace.Straight, turn)
	assert.Equal(t, space.MustPoint(1, 0), ks.InnerSpel(next).Coords())
	assert.Equal(t, interior.Follower2(t0, true), next)

	diag := setPredicate(space.MustPoint(0, 0), space.MustPoint(1, 1))
	exterior := kspace.NewSurfelNeighborhood(ks, kspace.NewSurfelAdjacency(2, false))
	exterior.SetSurfel(top)
	next, turn = exterior.AdjacentOnPointPredicate(diag, 0, true)
	assert.Equal(t, kspace.Convex, turn)
	assert.Equal(t, exterior.Follower1(0, true), next)

	interior.SetSurfel(top)
	next, turn = interior.AdjacentOnPointPredicate(diag, 0, true)
	assert.Equal(t, kspace.Concave, turn)
	assert.Equal(t, interior.Follower3(0, true), next)

	_, turn = interior.AdjacentOnPointPredicate(diag, 1, true)
	assert.Equal(t, kspace.Turn(0), turn, "orthogonal axis has no follower")
}

func TestSurfelNeighborhood_Accessors(t *testing.T) {
	ks := mustKSpace(t, space.MustPoint(0, 0, 0), space.MustPoint(3, 3, 3))
	n := kspace.NewSurfelNeighborhood(ks, kspace.NewSurfelAdjacency(3, true))
	bel, err := ks.Bel(space.MustPoint(1, 1, 1), space.MustPoint(1, 1, 2))
	require.NoError(t, err)

	n.SetSurfel(bel)
	assert.Equal(t, bel, n.Surfel())
	assert.Equal(t, 2, n.OrthDir())
	assert.Equal(t, space.MustPoint(1, 1, 1), n.InnerSpel().Coords())
	assert.Equal(t, space.MustPoint(1, 1, 2), n.OuterSpel().Coords())

	for _, dir := range []int{0, 1} {
		for _, pos := range []bool{false, true} {
			f1 := n.Follower1(dir, pos)
			f2 := n.Follower2(dir, pos)
			f3 := n.Follower3(dir, pos)
			assert.Equal(t, dir, f1.OrthDir())
			assert.Equal(t, 2, f2.OrthDir())
			assert.Equal(t, dir, f3.OrthDir())
			assert.Equal(t, space.MustPoint(1, 1, 1), ks.InnerSpel(f1).Coords())
			assert.Equal(t, space.MustPoint(1, 1, 2), ks.OuterSpel(f3).Coords())
		}
	}

	assert.Len(t, ks.Pointels(bel), 4)
	assert.ElementsMatch(t, []space.Point{
		space.MustPoint(1, 1, 2), space.MustPoint(2, 1, 2),
		space.MustPoint(1, 2, 2), space.MustPoint(2, 2, 2),
	}, ks.Pointels(bel))
}
