// Package boundary finds, tracks and extracts the boundary of a digital shape
// given as a point predicate inside a KSpace.
//
// What:
//
//   - FindABel scans the box for a first bel, under an optional budget.
//   - TrackBoundary collects every bel connected to a seed bel, in any
//     dimension. Track2DBoundary and Track2DSliceBoundary follow a closed
//     contour in a plane and return it in order.
//   - ExtractAllBels, ExtractAll2DSCellContours, ExtractAllPointContours4C,
//     ExtractAllInnerContours and ExtractAllConnectedSCell enumerate the
//     whole boundary, contour by contour or component by component.
//   - Interior and ContainsPoint rebuild the enclosed points of a closed
//     boundary by ray parity along axis 0.
//
// Determinism:
//
//   - Scans follow the default domain order (axis 0 fastest), axes ascending,
//     the upper neighbor of a point before the lower one.
//   - Contours and components appear in the order of their first bel.
//
// Points outside the box are outside the shape. Tracking never leaves the box
// along a closed axis and wraps along a periodic one.
//
// Errors:
//
//   - ErrBelNotFound:       the shape has no boundary in the box.
//   - ErrSearchExhausted:   a scan or tracking budget ran out.
//   - ErrNotABel:           the seed does not separate inside from outside.
//   - ErrDimensionMismatch: wrong dimension for a 2D operation or a seed.
//   - ErrOptionViolation:   invalid tracking option.
package boundary
