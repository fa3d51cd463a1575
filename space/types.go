package space

import (
	"errors"
	"fmt"
)

// MaxDimension is the largest supported lattice dimension.
const MaxDimension = 8

// Sentinel errors for point and space construction.
var (
	// ErrDimensionMismatch indicates a point whose dimension differs from the expected one.
	ErrDimensionMismatch = errors.New("space: dimension mismatch")

	// ErrBadDimension indicates a dimension outside 1..MaxDimension.
	ErrBadDimension = errors.New("space: dimension out of range")
)

// Point is an immutable tuple of integer coordinates.
// The zero Point has dimension 0 and is only useful as a sentinel.
type Point struct {
	c   [MaxDimension]int
	dim uint8
}

// Space fixes a lattice dimension and builds points of that dimension.
type Space struct {
	dim int
}

// Z2 and Z3 are the usual digital planes and spaces.
var (
	Z2 = Space{dim: 2}
	Z3 = Space{dim: 3}
)

// New returns the space of the given dimension.
func New(dim int) (Space, error) {
	if dim < 1 || dim > MaxDimension {
		return Space{}, fmt.Errorf("%w: %d", ErrBadDimension, dim)
	}

	return Space{dim: dim}, nil
}

// Dimension returns the dimension of s.
func (s Space) Dimension() int { return s.dim }

// Point builds a point of s from coords.
// Returns ErrDimensionMismatch when len(coords) differs from the space dimension.
func (s Space) Point(coords ...int) (Point, error) {
	if len(coords) != s.dim {
		return Point{}, fmt.Errorf("%w: space has dimension %d, got %d coordinates",
			ErrDimensionMismatch, s.dim, len(coords))
	}

	return NewPoint(coords...)
}

// Zero returns the origin of s.
func (s Space) Zero() Point { return Zero(s.dim) }

// Holds reports whether p has the dimension of s.
func (s Space) Holds(p Point) bool { return p.Dim() == s.dim }

// String implements fmt.Stringer.
func (s Space) String() string { return fmt.Sprintf("Z^%d", s.dim) }
