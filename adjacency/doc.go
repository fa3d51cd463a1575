// Package adjacency defines neighborhood relations between lattice points and
// their restriction to a bounded domain.
//
// What:
//
//   - Adjacency is the relation contract: symmetric, irreflexive, enumerable.
//   - Metric is the (∞,1)-norm adjacency: q is adjacent to p iff
//     ‖p-q‖∞ <= 1 and ‖p-q‖₁ <= maxNorm1. Adj4/Adj8 in 2D and Adj6/Adj18/Adj26
//     in 3D are the classic instances.
//   - DomainAdjacency restricts a relation to the points of a HyperRect. Every
//     neighbor it writes lies in the domain.
//   - Components splits the points of a domain satisfying a predicate into
//     connected components.
//
// Neighborhoods:
//
//   - WriteNeighborhood appends each neighbor accepted by the predicate once,
//     in the order of the offsets of [-1,1]^D (axis 0 fastest).
//   - WriteProperNeighborhood appends the same set; p itself is never written.
//   - WriteClosedNeighborhood writes p first when the predicate accepts it.
//
// Complexity:
//
//   - IsAdjacentTo: O(D).
//   - WriteNeighborhood: O(3^D · D).
//   - Components: O(|domain| · 3^D).
//
// Errors:
//
//   - ErrInvalidAdjacency:  bad dimension or norm bound for NewMetric.
//   - ErrDimensionMismatch: domain and relation disagree on dimension.
package adjacency
