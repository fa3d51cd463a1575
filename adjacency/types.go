package adjacency

import (
	"errors"

	"github.com/elombardi2/DGtal/space"
)

// Sentinel errors for adjacency construction.
var (
	// ErrInvalidAdjacency indicates metric parameters outside their range.
	ErrInvalidAdjacency = errors.New("adjacency: invalid metric parameters")

	// ErrDimensionMismatch indicates a domain and a relation of different dimensions.
	ErrDimensionMismatch = errors.New("adjacency: dimension mismatch")
)

// Adjacency is a symmetric, irreflexive relation over the points of one dimension.
//
// Write methods append to out and return the extended slice. A nil pred
// accepts every point.
type Adjacency interface {
	Dimension() int
	IsAdjacentTo(p1, p2 space.Point) bool
	IsProperlyAdjacentTo(p1, p2 space.Point) bool
	WriteNeighborhood(p space.Point, out []space.Point, pred space.PointPredicate) []space.Point
	WriteProperNeighborhood(p space.Point, out []space.Point, pred space.PointPredicate) []space.Point
	WriteClosedNeighborhood(p space.Point, out []space.Point, pred space.PointPredicate) []space.Point
}

func accept(pred space.PointPredicate, p space.Point) bool {
	return pred == nil || pred.Test(p)
}
