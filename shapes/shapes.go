package shapes

import (
	"errors"
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/space"
)

// Sentinel errors for digitization.
var (
	// ErrInvalidGridStep indicates a non-positive or non-finite grid step.
	ErrInvalidGridStep = errors.New("shapes: grid step must be positive")

	// ErrDimensionMismatch indicates bounds or shapes of different dimensions.
	ErrDimensionMismatch = errors.New("shapes: dimension mismatch")
)

// Shape is a continuous region of R^D.
type Shape interface {
	Dimension() int
	Inside(x []float64) bool
}

// ImplicitFunc is the shape {x : F(x) <= 0} of dimension Dim.
type ImplicitFunc struct {
	Dim int
	F   func(x []float64) float64
}

// Dimension implements Shape.
func (f ImplicitFunc) Dimension() int { return f.Dim }

// Inside implements Shape.
func (f ImplicitFunc) Inside(x []float64) bool { return f.F(x) <= 0 }

// Ball returns the ball of the given center and radius.
func Ball(center []float64, radius float64) ImplicitFunc {
	c := append([]float64(nil), center...)
	return ImplicitFunc{Dim: len(c), F: func(x []float64) float64 {
		d2 := 0.0
		for i, ci := range c {
			d2 += (x[i] - ci) * (x[i] - ci)
		}
		return math.Sqrt(d2) - radius
	}}
}

// sdf2Shape adapts an sdfx 2D signed distance function.
type sdf2Shape struct{ s sdf.SDF2 }

// FromSDF2 adapts a 2D sdfx shape.
func FromSDF2(s sdf.SDF2) Shape { return sdf2Shape{s: s} }

func (a sdf2Shape) Dimension() int { return 2 }

func (a sdf2Shape) Inside(x []float64) bool {
	return a.s.Evaluate(v2.Vec{X: x[0], Y: x[1]}) <= 0
}

// sdf3Shape adapts an sdfx 3D signed distance function.
type sdf3Shape struct{ s sdf.SDF3 }

// FromSDF3 adapts a 3D sdfx shape.
func FromSDF3(s sdf.SDF3) Shape { return sdf3Shape{s: s} }

func (a sdf3Shape) Dimension() int { return 3 }

func (a sdf3Shape) Inside(x []float64) bool {
	return a.s.Evaluate(v3.Vec{X: x[0], Y: x[1], Z: x[2]}) <= 0
}

// GaussDigitizer samples a Shape on the grid of step h.
// It implements space.PointPredicate.
type GaussDigitizer struct {
	shape Shape
	h     float64
	dom   *domain.HyperRect
}

// New digitizes shape at step h over the continuous box [lower, upper].
// Returns ErrInvalidGridStep or ErrDimensionMismatch.
func New(shape Shape, lower, upper []float64, h float64) (*GaussDigitizer, error) {
	if !(h > 0) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGridStep, h)
	}
	dim := shape.Dimension()
	if len(lower) != dim || len(upper) != dim {
		return nil, fmt.Errorf("%w: shape %d, bounds %d/%d", ErrDimensionMismatch, dim, len(lower), len(upper))
	}
	lo := make([]int, dim)
	hi := make([]int, dim)
	for i := 0; i < dim; i++ {
		lo[i] = int(math.Floor(lower[i] / h))
		hi[i] = int(math.Ceil(upper[i] / h))
	}
	plo, err := space.NewPoint(lo...)
	if err != nil {
		return nil, err
	}
	dom, err := domain.New(plo, space.MustPoint(hi...))
	if err != nil {
		return nil, err
	}

	return &GaussDigitizer{shape: shape, h: h, dom: dom}, nil
}

// FromSDF2Bounds digitizes a 2D sdfx shape over its bounding box.
func FromSDF2Bounds(s sdf.SDF2, h float64) (*GaussDigitizer, error) {
	bb := s.BoundingBox()
	return New(FromSDF2(s), []float64{bb.Min.X, bb.Min.Y}, []float64{bb.Max.X, bb.Max.Y}, h)
}

// FromSDF3Bounds digitizes a 3D sdfx shape over its bounding box.
func FromSDF3Bounds(s sdf.SDF3, h float64) (*GaussDigitizer, error) {
	bb := s.BoundingBox()
	return New(FromSDF3(s),
		[]float64{bb.Min.X, bb.Min.Y, bb.Min.Z}, []float64{bb.Max.X, bb.Max.Y, bb.Max.Z}, h)
}

// Domain returns the digital domain covering the continuous bounds.
func (g *GaussDigitizer) Domain() *domain.HyperRect { return g.dom }

// Resolution returns the grid step.
func (g *GaussDigitizer) Resolution() float64 { return g.h }

// Shape returns the digitized shape.
func (g *GaussDigitizer) Shape() Shape { return g.shape }

// Embed maps a digital point to R^D.
func (g *GaussDigitizer) Embed(p space.Point) []float64 {
	x := make([]float64, p.Dim())
	for i := range x {
		x[i] = float64(p.At(i)) * g.h
	}
	return x
}

// Test reports whether the shape contains p·h.
func (g *GaussDigitizer) Test(p space.Point) bool {
	if p.Dim() != g.shape.Dimension() {
		return false
	}
	return g.shape.Inside(g.Embed(p))
}
