// Package eigen computes the eigen decomposition of symmetric 3x3 matrices
// by cyclic Jacobi rotations, the numeric primitive behind covariance-based
// curvature estimation.
//
// What:
//
//   - Symmetric3 returns eigenvalues in ascending order and the matching
//     unit eigenvectors.
//
// Determinism:
//
//   - The pivot is the largest off-diagonal entry, scanned in i→j order.
//     Equal inputs give bit-identical outputs.
//
// Complexity:
//
//   - O(sweeps) with at most MaxRotations rotations of O(1) each.
//
// Errors:
//
//   - ErrNotSymmetric: |m[i][j]-m[j][i]| above tolerance.
//   - ErrNotConverged: off-diagonal mass above tolerance after MaxRotations.
//   - ErrNotFinite:    NaN or infinite entry.
package eigen
