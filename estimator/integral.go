package estimator

import (
	"fmt"
	"iter"
	"math"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/eigen"
	"github.com/elombardi2/DGtal/kspace"
	"github.com/elombardi2/DGtal/space"
)

// kernelPoint is one lattice offset of a kernel and its displacement from
// the surfel center, in grid units.
type kernelPoint struct {
	off space.Point
	vec [3]float64
}

// IntegralInvariant estimates curvatures of the shape pred inside ks.
// It is immutable after Init and may be evaluated concurrently.
type IntegralInvariant struct {
	ks   *kspace.KSpace
	pred space.PointPredicate

	h, radius float64
	// kernels[k] serves surfels orthogonal to axis k
	kernels [][]kernelPoint
}

// New binds an estimator to a shape. The space must be 2D or 3D.
func New(ks *kspace.KSpace, pred space.PointPredicate, opts ...Option) (*IntegralInvariant, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if d := ks.Dimension(); d != 2 && d != 3 {
		return nil, fmt.Errorf("%w: integral invariants need 2D or 3D, got %d", ErrDimensionMismatch, d)
	}

	ii := &IntegralInvariant{ks: ks, pred: pred}
	if o.Radius > 0 && o.GridStep > 0 {
		if err := ii.Init(o.GridStep, o.Radius); err != nil {
			return nil, err
		}
	}

	return ii, nil
}

// Init sets the grid step h and the ball radius and rebuilds the kernels.
func (ii *IntegralInvariant) Init(h, radius float64) error {
	if !validLength(h) || !validLength(radius) || radius < h {
		return fmt.Errorf("%w: h=%v, R=%v", ErrInvalidRadius, h, radius)
	}
	dim := ii.ks.Dimension()
	r := radius / h
	c := int(math.Ceil(r)) + 1
	box, err := domain.New(space.Diagonal(dim, -c), space.Diagonal(dim, c))
	if err != nil {
		return err
	}

	kernels := make([][]kernelPoint, dim)
	for k := 0; k < dim; k++ {
		for d := range box.All() {
			var kp kernelPoint
			kp.off = d
			n2 := 0.0
			for i := 0; i < dim; i++ {
				v := float64(d.At(i))
				if i == k {
					v += 0.5
				}
				kp.vec[i] = v
				n2 += v * v
			}
			if n2 <= r*r {
				kernels[k] = append(kernels[k], kp)
			}
		}
	}
	ii.h, ii.radius, ii.kernels = h, radius, kernels
	log.Debugf("integral invariant kernels: h=%v R=%v, %d points per kernel", h, radius, len(kernels[0]))

	return nil
}

// Radius returns the ball radius, 0 before Init.
func (ii *IntegralInvariant) Radius() float64 { return ii.radius }

// GridStep returns the grid step, 0 before Init.
func (ii *IntegralInvariant) GridStep() float64 { return ii.h }

// KernelSize returns the number of lattice points of one kernel.
func (ii *IntegralInvariant) KernelSize() int {
	if ii.kernels == nil {
		return 0
	}
	return len(ii.kernels[0])
}

// MeanCurvature returns the curvature (2D) or mean curvature (3D) at s.
func (ii *IntegralInvariant) MeanCurvature(s kspace.SCell) (float64, error) {
	kernel, err := ii.kernelFor(s)
	if err != nil {
		return 0, err
	}
	base := s.Coords()
	n := 0
	for _, kp := range kernel {
		if ii.member(base.Add(kp.off)) {
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: surfel %v", ErrDegenerateShape, s)
	}

	R := ii.radius
	if ii.ks.Dimension() == 2 {
		area := float64(n) * ii.h * ii.h
		return 3*math.Pi/(2*R) - 3*area/(R*R*R), nil
	}
	vol := float64(n) * ii.h * ii.h * ii.h

	return 8/(3*R) - 4*vol/(math.Pi*R*R*R*R), nil
}

// PrincipalCurvatures returns the two principal curvature estimates at s
// (3D only), derived from the covariance matrix of the ball/shape
// intersection. k1 is built from the largest eigenvalue.
func (ii *IntegralInvariant) PrincipalCurvatures(s kspace.SCell) (k1, k2 float64, err error) {
	if ii.ks.Dimension() != 3 {
		return 0, 0, fmt.Errorf("%w: principal curvatures need 3D, got %d", ErrDimensionMismatch, ii.ks.Dimension())
	}
	kernel, err := ii.kernelFor(s)
	if err != nil {
		return 0, 0, err
	}

	base := s.Coords()
	n := 0
	var m1 [3]float64
	var m2 [3][3]float64
	for _, kp := range kernel {
		if !ii.member(base.Add(kp.off)) {
			continue
		}
		n++
		for i := 0; i < 3; i++ {
			xi := kp.vec[i] * ii.h
			m1[i] += xi
			for j := 0; j < 3; j++ {
				m2[i][j] += xi * kp.vec[j] * ii.h
			}
		}
	}
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: surfel %v", ErrDegenerateShape, s)
	}

	dv := ii.h * ii.h * ii.h
	var cov [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cov[i][j] = dv * (m2[i][j] - m1[i]*m1[j]/float64(n))
		}
	}
	values, _, err := eigen.Symmetric3(cov)
	if err != nil {
		return 0, 0, fmt.Errorf("estimator: covariance at %v: %w", s, err)
	}

	R := ii.radius
	c := 6 / (math.Pi * math.Pow(R, 6))
	l1, l2 := values[2], values[1]
	k1 = c*(l2-3*l1) + 8/(5*R)
	k2 = c*(l1-3*l2) + 8/(5*R)

	return k1, k2, nil
}

// GaussianCurvature returns the Gaussian curvature estimate at s (3D only).
func (ii *IntegralInvariant) GaussianCurvature(s kspace.SCell) (float64, error) {
	k1, k2, err := ii.PrincipalCurvatures(s)
	if err != nil {
		return 0, err
	}
	return k1 * k2, nil
}

// Eval computes q on every surfel of seq, in order. It stops at the first error.
func (ii *IntegralInvariant) Eval(seq iter.Seq[kspace.SCell], q Quantity) ([]float64, error) {
	var eval func(kspace.SCell) (float64, error)
	switch q {
	case Mean:
		eval = ii.MeanCurvature
	case Gaussian:
		eval = ii.GaussianCurvature
	default:
		return nil, fmt.Errorf("%w: unknown quantity %v", ErrOptionViolation, q)
	}

	var out []float64
	for s := range seq {
		v, err := eval(s)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}

	return out, nil
}

func (ii *IntegralInvariant) kernelFor(s kspace.SCell) ([]kernelPoint, error) {
	if ii.kernels == nil {
		return nil, ErrNotInitialized
	}
	if s.K.Dim() != ii.ks.Dimension() {
		return nil, fmt.Errorf("%w: surfel %v in dimension %d", ErrDimensionMismatch, s, ii.ks.Dimension())
	}
	if !s.IsSurfel() {
		return nil, fmt.Errorf("%w: %v", ErrNotASurfel, s)
	}
	return ii.kernels[s.OrthDir()], nil
}

func (ii *IntegralInvariant) member(p space.Point) bool {
	p = ii.ks.WrapPoint(p)
	return ii.ks.IsPointInside(p) && ii.pred.Test(p)
}
