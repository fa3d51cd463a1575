// Package fmm computes Euclidean distance maps on a digital domain by fast
// marching.
//
// A front starts from seed points carrying initial values and moves outward
// through the points accepted by a predicate. Every point is accepted once,
// in increasing order of its value; the value of a candidate comes from a
// first-order local solver over its already accepted axis neighbors.
//
// Local solver (grid step h):
//
//   - Take, per axis, the smallest accepted neighbor value a_k.
//   - Sort them; with the n smallest, solve Σ (d - a_i)² = h².
//   - n grows while the solution exceeds the next a_i.
//
// Complexity:
//
//   - Time:  O(N·D·log N) for N accepted points.
//   - Space: O(N) for the value map and the lazy heap.
//
// Errors:
//
//   - ErrNoSeeds:           empty seed map.
//   - ErrDimensionMismatch: seed of another dimension than the domain.
//   - ErrSeedOutOfDomain:   seed outside the domain.
//   - ErrInvalidSeed:       NaN or infinite seed value.
//   - ErrOptionViolation:   invalid option.
package fmm
