package eigen

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the decomposition.
var (
	// ErrNotSymmetric indicates an input that is not symmetric within tolerance.
	ErrNotSymmetric = errors.New("eigen: matrix is not symmetric")

	// ErrNotConverged indicates that the rotations did not diagonalize the input.
	ErrNotConverged = errors.New("eigen: Jacobi rotations did not converge")

	// ErrNotFinite indicates a NaN or infinite entry.
	ErrNotFinite = errors.New("eigen: matrix has a non-finite entry")
)

// MaxRotations caps the number of Jacobi rotations.
const MaxRotations = 100

// Relative tolerances, scaled by the Frobenius norm of the input.
const (
	symmetryTol    = 1e-9
	convergenceTol = 1e-14
)

// Symmetric3 diagonalizes the symmetric matrix m.
// values are ascending; vectors[k] is the unit eigenvector of values[k].
func Symmetric3(m [3][3]float64) (values [3]float64, vectors [3][3]float64, err error) {
	scale := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0) {
				return values, vectors, fmt.Errorf("%w: m[%d][%d] = %v", ErrNotFinite, i, j, m[i][j])
			}
			scale += m[i][j] * m[i][j]
		}
	}
	scale = math.Sqrt(scale)
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if math.Abs(m[i][j]-m[j][i]) > symmetryTol*(1+scale) {
				return values, vectors, fmt.Errorf("%w: m[%d][%d]=%v, m[%d][%d]=%v",
					ErrNotSymmetric, i, j, m[i][j], j, i, m[j][i])
			}
		}
	}

	a := m
	var q [3][3]float64
	for i := 0; i < 3; i++ {
		q[i][i] = 1
	}
	tol := convergenceTol * scale

	for iter := 0; iter < MaxRotations; iter++ {
		// pivot (p,r) maximizing |a[p][r]|
		p, r, maxOff := 0, 1, 0.0
		for i := 0; i < 3; i++ {
			for j := i + 1; j < 3; j++ {
				if off := math.Abs(a[i][j]); off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff <= tol {
			break
		}

		app, arr, apr := a[p][p], a[r][r], a[p][r]
		theta := (arr - app) / (2 * apr)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < 3; i++ {
			if i == p || i == r {
				continue
			}
			aip, air := a[i][p], a[i][r]
			a[i][p], a[p][i] = c*aip-s*air, c*aip-s*air
			a[i][r], a[r][i] = s*aip+c*air, s*aip+c*air
		}
		a[p][p] = c*c*app - 2*c*s*apr + s*s*arr
		a[r][r] = s*s*app + 2*c*s*apr + c*c*arr
		a[p][r], a[r][p] = 0, 0

		for i := 0; i < 3; i++ {
			qip, qir := q[i][p], q[i][r]
			q[i][p] = c*qip - s*qir
			q[i][r] = s*qip + c*qir
		}
	}

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if math.Abs(a[i][j]) > tol {
				return values, vectors, fmt.Errorf("%w: residual %v", ErrNotConverged, a[i][j])
			}
		}
	}

	// sort ascending, columns of q follow
	order := [3]int{0, 1, 2}
	for i := 1; i < 3; i++ {
		for j := i; j > 0 && a[order[j]][order[j]] < a[order[j-1]][order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	for k, col := range order {
		values[k] = a[col][col]
		for i := 0; i < 3; i++ {
			vectors[k][i] = q[i][col]
		}
	}

	return values, vectors, nil
}
