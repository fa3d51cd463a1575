package space_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elombardi2/DGtal/space"
)

func TestNewPoint_Arity(t *testing.T) {
	_, err := space.NewPoint()
	assert.ErrorIs(t, err, space.ErrBadDimension)

	_, err = space.NewPoint(1, 2, 3, 4, 5, 6, 7, 8, 9)
	assert.ErrorIs(t, err, space.ErrBadDimension)

	p, err := space.NewPoint(3, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Dim())
	assert.Equal(t, []int{3, -1}, p.Coords())
}

func TestSpace_Point(t *testing.T) {
	_, err := space.Z2.Point(1, 2, 3)
	assert.ErrorIs(t, err, space.ErrDimensionMismatch)

	p, err := space.Z3.Point(1, 2, 3)
	require.NoError(t, err)
	assert.True(t, space.Z3.Holds(p))
	assert.False(t, space.Z2.Holds(p))

	_, err = space.New(0)
	assert.ErrorIs(t, err, space.ErrBadDimension)
	s4, err := space.New(4)
	require.NoError(t, err)
	assert.Equal(t, "Z^4", s4.String())
}

func TestPoint_Arithmetic(t *testing.T) {
	p := space.MustPoint(1, 2, 3)
	q := space.MustPoint(-1, 5, 0)

	assert.Equal(t, space.MustPoint(0, 7, 3), p.Add(q))
	assert.Equal(t, space.MustPoint(2, -3, 3), p.Sub(q))
	assert.Equal(t, space.MustPoint(-1, -2, -3), p.Neg())
	assert.Equal(t, space.MustPoint(2, 4, 6), p.Scale(2))
	assert.Equal(t, space.MustPoint(-1, 2, 0), p.Inf(q))
	assert.Equal(t, space.MustPoint(1, 5, 3), p.Sup(q))
	assert.Equal(t, 6, q.NormL1())
	assert.Equal(t, 5, q.NormInf())
	assert.Equal(t, space.MustPoint(1, 9, 3), p.With(1, 9))
	assert.Equal(t, space.MustPoint(1, 2, 1), p.Shift(2, -2))
	assert.Equal(t, space.MustPoint(0, 0, 1), space.Unit(3, 2))

	assert.Panics(t, func() { p.Add(space.MustPoint(1, 1)) })
}

func TestPoint_Ordering(t *testing.T) {
	a := space.MustPoint(1, 5)
	b := space.MustPoint(2, 0)
	c := space.MustPoint(2, 3)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
	assert.Equal(t, 0, a.Compare(space.MustPoint(1, 5)))
	assert.True(t, b.IsLower(c))
	assert.False(t, a.IsLower(b))
	assert.True(t, c.IsUpper(b))

	pts := []space.Point{c, a, b}
	space.SortPoints(pts)
	assert.Equal(t, []space.Point{a, b, c}, pts)
	assert.Equal(t, "(2,3)", c.String())
}

func TestPredicates(t *testing.T) {
	pos := space.PredicateFunc(func(p space.Point) bool { return p.At(0) > 0 })
	even := space.PredicateFunc(func(p space.Point) bool { return p.At(0)%2 == 0 })
	p2 := space.MustPoint(2)
	p3 := space.MustPoint(3)
	m2 := space.MustPoint(-2)

	assert.True(t, space.And(pos, even).Test(p2))
	assert.False(t, space.And(pos, even).Test(p3))
	assert.True(t, space.Or(pos, even).Test(m2))
	assert.False(t, space.Or().Test(p2))
	assert.True(t, space.And().Test(p2))
	assert.True(t, space.Not(pos).Test(m2))
	assert.True(t, space.True.Test(p3))
	assert.False(t, space.False.Test(p3))
}
