package space

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// NewPoint builds a point from its coordinates.
// Returns ErrBadDimension when len(coords) is 0 or greater than MaxDimension.
func NewPoint(coords ...int) (Point, error) {
	if len(coords) == 0 || len(coords) > MaxDimension {
		return Point{}, fmt.Errorf("%w: %d coordinates", ErrBadDimension, len(coords))
	}
	var p Point
	p.dim = uint8(len(coords))
	copy(p.c[:], coords)

	return p, nil
}

// MustPoint is NewPoint for literals; it panics on an invalid arity.
func MustPoint(coords ...int) Point {
	p, err := NewPoint(coords...)
	if err != nil {
		panic(err)
	}

	return p
}

// Zero returns the origin of dimension dim.
func Zero(dim int) Point {
	return Diagonal(dim, 0)
}

// Diagonal returns the point of dimension dim whose coordinates all equal v.
func Diagonal(dim int, v int) Point {
	if dim < 1 || dim > MaxDimension {
		panic(fmt.Errorf("%w: %d", ErrBadDimension, dim))
	}
	var p Point
	p.dim = uint8(dim)
	for i := 0; i < dim; i++ {
		p.c[i] = v
	}

	return p
}

// Unit returns the basis vector e_k of dimension dim.
func Unit(dim, k int) Point {
	p := Zero(dim)
	p.c[k] = 1

	return p
}

// Dim returns the dimension of p.
func (p Point) Dim() int { return int(p.dim) }

// At returns coordinate i.
func (p Point) At(i int) int { return p.c[i] }

// With returns a copy of p whose coordinate i is v.
func (p Point) With(i, v int) Point {
	p.c[i] = v
	return p
}

// Shift returns a copy of p with delta added to coordinate i.
func (p Point) Shift(i, delta int) Point {
	p.c[i] += delta
	return p
}

// Coords returns a fresh slice holding the coordinates of p.
func (p Point) Coords() []int {
	out := make([]int, p.dim)
	copy(out, p.c[:p.dim])

	return out
}

// Add returns p+q. Both points must share a dimension.
func (p Point) Add(q Point) Point {
	mustSameDim(p, q)
	for i := 0; i < int(p.dim); i++ {
		p.c[i] += q.c[i]
	}

	return p
}

// Sub returns p-q. Both points must share a dimension.
func (p Point) Sub(q Point) Point {
	mustSameDim(p, q)
	for i := 0; i < int(p.dim); i++ {
		p.c[i] -= q.c[i]
	}

	return p
}

// Neg returns -p.
func (p Point) Neg() Point {
	for i := 0; i < int(p.dim); i++ {
		p.c[i] = -p.c[i]
	}

	return p
}

// Scale returns k*p.
func (p Point) Scale(k int) Point {
	for i := 0; i < int(p.dim); i++ {
		p.c[i] *= k
	}

	return p
}

// Inf returns the componentwise minimum of p and q.
func (p Point) Inf(q Point) Point {
	mustSameDim(p, q)
	for i := 0; i < int(p.dim); i++ {
		if q.c[i] < p.c[i] {
			p.c[i] = q.c[i]
		}
	}

	return p
}

// Sup returns the componentwise maximum of p and q.
func (p Point) Sup(q Point) Point {
	mustSameDim(p, q)
	for i := 0; i < int(p.dim); i++ {
		if q.c[i] > p.c[i] {
			p.c[i] = q.c[i]
		}
	}

	return p
}

// NormL1 returns the sum of absolute coordinates.
func (p Point) NormL1() int {
	n := 0
	for i := 0; i < int(p.dim); i++ {
		n += abs(p.c[i])
	}

	return n
}

// NormInf returns the largest absolute coordinate.
func (p Point) NormInf() int {
	n := 0
	for i := 0; i < int(p.dim); i++ {
		if a := abs(p.c[i]); a > n {
			n = a
		}
	}

	return n
}

// Equal reports whether p and q have the same dimension and coordinates.
func (p Point) Equal(q Point) bool { return p == q }

// Compare orders points lexicographically from axis 0.
// A point of lower dimension sorts first.
// Returns -1, 0 or +1.
func (p Point) Compare(q Point) int {
	if p.dim != q.dim {
		if p.dim < q.dim {
			return -1
		}
		return 1
	}
	for i := 0; i < int(p.dim); i++ {
		switch {
		case p.c[i] < q.c[i]:
			return -1
		case p.c[i] > q.c[i]:
			return 1
		}
	}

	return 0
}

// Less reports whether p sorts strictly before q.
func (p Point) Less(q Point) bool { return p.Compare(q) < 0 }

// IsLower reports whether p[i] <= q[i] for every axis.
func (p Point) IsLower(q Point) bool {
	if p.dim != q.dim {
		return false
	}
	for i := 0; i < int(p.dim); i++ {
		if p.c[i] > q.c[i] {
			return false
		}
	}

	return true
}

// IsUpper reports whether p[i] >= q[i] for every axis.
func (p Point) IsUpper(q Point) bool { return q.IsLower(p) }

// String formats p as "(x0,x1,...)".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < int(p.dim); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p.c[i]))
	}
	sb.WriteByte(')')

	return sb.String()
}

// SortPoints sorts pts in place by Compare.
func SortPoints(pts []Point) {
	slices.SortFunc(pts, func(a, b Point) int { return a.Compare(b) })
}

func mustSameDim(p, q Point) {
	if p.dim != q.dim {
		panic(fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, p.dim, q.dim))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
