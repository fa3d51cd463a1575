// Package surface models the boundary of a digital shape as a graph of
// surfels and walks it.
//
// What:
//
//   - DigitalSurface is an immutable graph: its nodes are surfels, its edges
//     the bel adjacencies restricted to the surface. FromSeed tracks the
//     connected boundary through a seed bel; FromSurfels takes an explicit
//     surfel set.
//   - Visitor walks a DigitalSurface from a seed, depth-first (default) or
//     breadth-first, emitting each reachable surfel exactly once. It owns
//     its visit states and frontier, so one Visitor serves one traversal.
//
// Options:
//
//   - WithStrategy:       DepthFirst or BreadthFirst.
//   - WithMaxDepth:       stop exploring beyond a depth (0 = unlimited).
//   - WithFilterNeighbor: skip edges curr→neighbor.
//   - WithOnEnqueue:      hook called when a surfel joins the frontier.
//   - WithOnVisit:        hook called when a surfel is emitted; an error stops the walk.
//
// Complexity:
//
//   - FromSeed / FromSurfels: O(S · D) for S surfels.
//   - A full traversal:       O(S · D).
//
// Errors:
//
//   - ErrSurfelNotFound:    the seed is not a node of the surface.
//   - ErrNotASurfel:        a cell with other than one even coordinate.
//   - ErrDimensionMismatch: a surfel of another dimension than the space.
//   - ErrOptionViolation:   invalid visitor option.
package surface
