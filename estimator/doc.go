// Package estimator computes integral-invariant curvature estimates on the
// boundary surfels of a digitized shape.
//
// What:
//
//   - For each surfel, a Euclidean ball of radius R is centered on the surfel
//     center and intersected with the digital shape.
//   - 2D: curvature κ = 3π/(2R) − 3A/R³, A the intersection area.
//   - 3D: mean curvature H = 8/(3R) − 4V/(πR⁴), V the intersection volume.
//   - 3D: principal curvatures from the covariance matrix of the
//     intersection, Gaussian curvature as their product.
//
// How:
//
//   - Init(h, R) precomputes one digital kernel per surfel orientation: the
//     lattice offsets whose centers fall in the ball around a surfel center.
//   - Each evaluation walks its kernel and tests the predicate.
//
// Complexity:
//
//   - Init: O(D·(R/h)^D).
//   - Per surfel: O((R/h)^D) predicate tests.
//
// Errors:
//
//   - ErrNotInitialized:    evaluation before a successful Init.
//   - ErrInvalidRadius:     R or h not positive and finite, or R < h.
//   - ErrDegenerateShape:   the ball meets no shape point.
//   - ErrDimensionMismatch: space not 2D/3D, Gaussian curvature outside 3D,
//     or a surfel of another dimension.
//   - ErrNotASurfel:        evaluated cell is not a surfel.
//   - ErrOptionViolation:   invalid functional option.
package estimator
