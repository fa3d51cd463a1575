// Package domain implements axis-aligned hyper-rectangular domains over the
// integer lattice, their iteration orders, and point sets bound to a domain.
//
// What:
//
//   - HyperRect is the box [lower, upper] (inclusive per axis). A box with any
//     lower[i] > upper[i] is a valid empty domain.
//   - Range is an iteration view of a HyperRect: default order (axis 0 varies
//     fastest), any permutation of the axes, or a sub-domain spanning a
//     subset of axes with the others frozen at an anchor point.
//   - Iterator walks a Range forward (Next) and backward (Prev). Walking
//     backward from End yields exactly the reverse of the forward sequence.
//   - Predicate is the membership view of one domain.
//   - DigitalSet is a dense point set over a domain.
//
// Complexity:
//
//   - Iterator.Next / Iterator.Prev: O(1) amortized, no allocation.
//   - HyperRect.IsInside:            O(D).
//   - DigitalSet.Insert / Contains:  O(D).
//
// Errors:
//
//   - ErrDimensionMismatch: bounds or points of different dimensions.
//   - ErrOptionViolation:   invalid Range option (bad axis list, anchor outside).
//   - ErrOutOfDomain:       DigitalSet update outside its domain.
package domain
