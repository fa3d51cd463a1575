// Package kspace implements the cellular grid space (Khalimsky space) of a
// bounded digital domain: cells at doubled resolution, their orientation and
// incidence, bels, and the surfel neighborhoods used by boundary tracking.
//
// What:
//
//   - A digital point p maps to the spel of Khalimsky coordinates 2p+1. A
//     coordinate is odd along the open directions of a cell and even along
//     its closed ones. Pointels have every coordinate even.
//   - A surfel is a signed cell with exactly one even coordinate; that axis is
//     its orthogonal direction. A bel is a surfel separating a point inside a
//     shape from an adjacent point outside it.
//   - KSpace bounds the cells. Every axis is closed (it owns the border
//     pointels) unless WithPeriodic makes it wrap around.
//   - SurfelAdjacency chooses, per (tracking, orthogonal) axis pair, whether
//     bels connect through the interior or the exterior of the shape.
//   - SurfelNeighborhood computes the three possible followers of a bel along
//     a tracking direction and picks the one the shape predicate selects.
//
// Orientation:
//
//   - SDirect(c, k) is the sign of c flipped once per open axis below k.
//   - The bel of (in, out) is oriented so that SDirectIncident(bel, orth) is
//     the positive spel of in.
//
// Errors:
//
//   - ErrDimensionMismatch: bounds or cells of different dimensions.
//   - ErrInvalidBounds:     lower bound above the upper bound.
//   - ErrOptionViolation:   invalid periodic axis.
//   - ErrNotAdjacent:       Bel called on points that are not 1-adjacent.
package kspace
