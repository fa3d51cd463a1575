// Package dgtal is a digital topology toolkit: integer lattices, digital
// domains, adjacencies, cellular (Khalimsky) spaces, boundary tracking and
// digital surface traversal, in plain Go.
//
// 🚀 What is in the box?
//
//	• Lattice primitives: D-dimensional points and predicates (space)
//	• Rectangular domains with bidirectional, axis-permuted iteration (domain)
//	• Metric adjacencies 4/8, 6/18/26 and domain-restricted ones (adjacency)
//	• Cubical cell spaces, signed cells, incidence and bels (kspace)
//	• Bel search, contour tracking, surface extraction (boundary)
//	• Digital surfaces with depth/breadth-first visitors (surface)
//	• Freeman chain codes, Gauss digitization of implicit shapes (freeman, shapes)
//	• Integral-invariant curvature estimation (estimator, eigen)
//	• Fast-marching distance maps (fmm)
//
// ✨ Design notes
//
//   - Points are comparable values: usable as map keys, copied freely.
//   - Functional options everywhere an operation has knobs; bad values surface
//     as ErrOptionViolation when the operation runs.
//   - Sentinel errors per package, wrapped with context, tested with errors.Is.
//   - Everything is synchronous; immutable structures may be shared between
//     goroutines, visitors may not.
//
// Layout:
//
//	space/       Point, Space, PointPredicate
//	domain/      HyperRect, Range/Iterator, DigitalSet, image thresholding
//	adjacency/   Metric, DomainAdjacency, Components
//	kspace/      KSpace, Cell/SCell, SurfelAdjacency, SurfelNeighborhood
//	boundary/    FindABel, TrackBoundary, contour extraction, Interior
//	surface/     DigitalSurface, Visitor
//	freeman/     Chain
//	shapes/      GaussDigitizer, sdfx adapters
//	eigen/       Symmetric3
//	estimator/   IntegralInvariant
//	fmm/         Compute
//	cmd/dgtrack  command line front-end for text grids
//
// Quick ASCII example:
//
//	. . . . .        the 2x2 block on the left has one contour of 8
//	. # # . .        linels; its pointels form a closed 4-connected
//	. # # . .        polygon whose Freeman code is "0 0 00112233"
//	. . . . .        up to the starting point and orientation.
//
//	go get github.com/elombardi2/DGtal
package dgtal
