package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/space"
)

func forward(it *domain.Iterator) []space.Point {
	var out []space.Point
	for ; it.Valid(); it.Next() {
		out = append(out, it.Point())
	}
	return out
}

func backward(it *domain.Iterator) []space.Point {
	var out []space.Point
	for it.Prev() {
		out = append(out, it.Point())
	}
	return out
}

func reversed(pts []space.Point) []space.Point {
	out := make([]space.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func pointSet(pts []space.Point) map[space.Point]int {
	m := make(map[space.Point]int, len(pts))
	for _, p := range pts {
		m[p]++
	}
	return m
}

// TestIterator_2D checks the (1,1)-(5,5) box: 25 points from (1,1) to (5,5),
// axis 0 varying fastest.
func TestIterator_2D(t *testing.T) {
	d := mustDomain(t, space.MustPoint(1, 1), space.MustPoint(5, 5))

	pts := forward(d.Begin())
	require.Len(t, pts, 25)
	assert.Equal(t, space.MustPoint(1, 1), pts[0])
	assert.Equal(t, space.MustPoint(2, 1), pts[1])
	assert.Equal(t, space.MustPoint(1, 2), pts[5])
	assert.Equal(t, space.MustPoint(5, 5), pts[24])

	var seq []space.Point
	for p := range d.All() {
		seq = append(seq, p)
	}
	assert.Equal(t, pts, seq)
}

func TestIterator_CountMatchesExtents(t *testing.T) {
	cases := []struct {
		name   string
		lo, hi space.Point
	}{
		{"1D", space.MustPoint(-3), space.MustPoint(4)},
		{"2D", space.MustPoint(0, 0), space.MustPoint(3, 6)},
		{"3D", space.MustPoint(-1, 0, 2), space.MustPoint(1, 2, 3)},
		{"4D", space.MustPoint(1, 1, 1, 1), space.MustPoint(3, 3, 3, 3)},
		{"degenerate", space.MustPoint(2, 2, 2), space.MustPoint(2, 2, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := mustDomain(t, tc.lo, tc.hi)
			want := uint64(1)
			for i := 0; i < tc.lo.Dim(); i++ {
				want *= uint64(tc.hi.At(i) - tc.lo.At(i) + 1)
			}
			pts := forward(d.Begin())
			assert.Equal(t, want, uint64(len(pts)))
			assert.Equal(t, d.Size(), uint64(len(pts)))
			assert.Len(t, pointSet(pts), len(pts), "no point may repeat")

			assert.Equal(t, reversed(pts), backward(d.End()))

			var rev []space.Point
			for p := range d.Backward() {
				rev = append(rev, p)
			}
			assert.Equal(t, reversed(pts), rev)
		})
	}
}

func TestIterator_Permutations(t *testing.T) {
	d := mustDomain(t, space.MustPoint(1, 1, 1, 1), space.MustPoint(3, 3, 3, 3))
	ref := pointSet(forward(d.Begin()))

	orders := [][]int{{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 0, 3, 2}, {2, 0, 3, 1}}
	for _, order := range orders {
		r, err := d.Range(domain.WithOrder(order...))
		require.NoError(t, err)
		pts := forward(r.Begin())
		assert.Equal(t, ref, pointSet(pts), "order %v", order)
		assert.Equal(t, reversed(pts), backward(r.End()), "order %v", order)
		assert.Equal(t, d.Lower(), pts[0])
		assert.Equal(t, d.Upper(), pts[len(pts)-1])
	}

	r, err := d.Range(domain.WithOrder(3, 2, 1, 0))
	require.NoError(t, err)
	pts := r.Points()
	assert.Equal(t, space.MustPoint(1, 1, 1, 2), pts[1], "axis 3 must vary fastest")
	assert.Equal(t, space.MustPoint(1, 1, 2, 1), pts[3])
}

func TestIterator_SubDomain(t *testing.T) {
	d := mustDomain(t, space.MustPoint(1, 1, 1, 1), space.MustPoint(3, 3, 3, 3))

	r, err := d.Range(domain.WithOrder(1, 3))
	require.NoError(t, err)
	pts := r.Points()
	require.Len(t, pts, 9)
	assert.Equal(t, uint64(9), r.Size())
	for _, p := range pts {
		assert.Equal(t, 1, p.At(0))
		assert.Equal(t, 1, p.At(2))
	}
	assert.Equal(t, space.MustPoint(1, 2, 1, 1), pts[1])
	assert.Equal(t, space.MustPoint(1, 1, 1, 2), pts[3])
	assert.Equal(t, reversed(pts), backward(r.End()))

	anchored, err := d.Range(domain.WithOrder(1), domain.WithAnchor(space.MustPoint(2, 1, 3, 2)))
	require.NoError(t, err)
	assert.Equal(t, []space.Point{
		space.MustPoint(2, 1, 3, 2),
		space.MustPoint(2, 2, 3, 2),
		space.MustPoint(2, 3, 3, 2),
	}, anchored.Points())
}

func TestIterator_BeginAt(t *testing.T) {
	d := mustDomain(t, space.MustPoint(1, 1), space.MustPoint(5, 5))
	c := space.MustPoint(2, 2)

	pts := forward(d.BeginAt(c))
	assert.Len(t, pts, 19)
	assert.Equal(t, c, pts[0])

	r, err := d.Range(domain.WithOrder(1, 0))
	require.NoError(t, err)
	pts = forward(r.BeginAt(c))
	assert.Equal(t, space.MustPoint(2, 3), pts[1])
	assert.Len(t, pts, 19)

	assert.False(t, d.BeginAt(space.MustPoint(9, 9)).Valid())
}

func TestIterator_Misuse(t *testing.T) {
	d := mustDomain(t, space.MustPoint(0, 0), space.MustPoint(1, 1))

	end := d.End()
	assert.False(t, end.Next(), "Next at End stays at End")
	assert.True(t, end.Equal(d.End()))

	it := d.Begin()
	assert.False(t, it.Prev())
	assert.False(t, it.Prev(), "Prev before Begin is a no-op")
	assert.True(t, it.Next())
	assert.Equal(t, d.Lower(), it.Point())

	other := mustDomain(t, space.MustPoint(0, 0), space.MustPoint(1, 1))
	assert.False(t, d.Begin().Equal(other.Begin()), "iterators of distinct domains differ")
}

func TestRange_Options(t *testing.T) {
	d := mustDomain(t, space.MustPoint(0, 0, 0), space.MustPoint(2, 2, 2))

	bad := [][]domain.Option{
		{domain.WithOrder()},
		{domain.WithOrder(0, 0)},
		{domain.WithOrder(-1)},
		{domain.WithOrder(3)},
		{domain.WithOrder(0, 1, 2, 0)},
		{domain.WithAnchor(space.MustPoint(1, 1))},
		{domain.WithOrder(0), domain.WithAnchor(space.MustPoint(0, 7, 0))},
	}
	for i, opts := range bad {
		_, err := d.Range(opts...)
		assert.ErrorIs(t, err, domain.ErrOptionViolation, "case %d", i)
	}

	r, err := d.Range()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, r.Order())
	assert.Equal(t, d.Size(), r.Size())
	assert.Same(t, d, r.Domain())
}
