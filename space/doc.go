// Package space provides the integer lattice every other package works on:
// fixed-dimension points, the Space that produces them, and point predicates.
//
// What:
//
//   - Point is an immutable value of dimension 1..MaxDimension. It is
//     comparable, so it can be used directly as a map key or set element.
//   - Space fixes a dimension and validates point construction against it.
//   - PointPredicate is the membership contract consumed by domains,
//     adjacencies, boundary tracking and estimators.
//
// Ordering:
//
//   - Compare is lexicographic starting at axis 0.
//   - IsLower / IsUpper give the componentwise partial order.
//
// Errors:
//
//   - ErrDimensionMismatch: a point of the wrong dimension was supplied.
//   - ErrBadDimension:      dimension outside 1..MaxDimension.
package space
