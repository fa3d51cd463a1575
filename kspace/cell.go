package kspace

import (
	"fmt"

	"github.com/elombardi2/DGtal/space"
)

// Cell is an unsigned cell given by its Khalimsky coordinates.
// It is a comparable value type.
type Cell struct {
	K space.Point
}

// SCell is a signed (oriented) cell.
type SCell struct {
	K        space.Point
	Positive bool
}

// Dim returns the topological dimension of c: its number of odd coordinates.
func (c Cell) Dim() int { return openCount(c.K, c.K.Dim()) }

// Coords returns the digital point of c, floor(K/2) per axis.
func (c Cell) Coords() space.Point { return coords(c.K) }

// String implements fmt.Stringer.
func (c Cell) String() string { return c.K.String() }

// Dim returns the topological dimension of s.
func (s SCell) Dim() int { return openCount(s.K, s.K.Dim()) }

// IsSurfel reports whether s has exactly one even coordinate.
func (s SCell) IsSurfel() bool {
	return s.K.Dim() > 0 && s.Dim() == s.K.Dim()-1
}

// OrthDir returns the axis of the only even coordinate of a surfel, or -1.
func (s SCell) OrthDir() int {
	if !s.IsSurfel() {
		return -1
	}
	for i := 0; i < s.K.Dim(); i++ {
		if s.K.At(i)&1 == 0 {
			return i
		}
	}
	return -1
}

// Dirs returns the open axes of s in ascending order.
func (s SCell) Dirs() []int {
	var out []int
	for i := 0; i < s.K.Dim(); i++ {
		if s.K.At(i)&1 == 1 {
			out = append(out, i)
		}
	}
	return out
}

// Coords returns the digital point of s, floor(K/2) per axis.
func (s SCell) Coords() space.Point { return coords(s.K) }

// Unsigned drops the orientation of s.
func (s SCell) Unsigned() Cell { return Cell{K: s.K} }

// Opp returns s with the opposite orientation.
func (s SCell) Opp() SCell { return SCell{K: s.K, Positive: !s.Positive} }

// Signed returns c with the given orientation.
func (c Cell) Signed(positive bool) SCell { return SCell{K: c.K, Positive: positive} }

// String implements fmt.Stringer, e.g. "(3,4)+".
func (s SCell) String() string {
	sign := '-'
	if s.Positive {
		sign = '+'
	}
	return fmt.Sprintf("%v%c", s.K, sign)
}

// openCount counts the odd coordinates of k on axes below n.
func openCount(k space.Point, n int) int {
	c := 0
	for i := 0; i < n; i++ {
		c += k.At(i) & 1
	}
	return c
}

func coords(k space.Point) space.Point {
	p := k
	for i := 0; i < k.Dim(); i++ {
		p = p.With(i, k.At(i)>>1)
	}
	return p
}
