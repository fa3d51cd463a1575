package surface

import (
	"errors"
	"fmt"

	"github.com/op/go-logging"

	"github.com/elombardi2/DGtal/kspace"
)

var log = logging.MustGetLogger("surface")

// Progress is logged at DEBUG. Until the caller installs its own backend the
// package only reports warnings.
func init() { logging.SetLevel(logging.WARNING, "surface") }

// Sentinel errors for surface construction and traversal.
var (
	// ErrSurfelNotFound indicates a surfel absent from the surface.
	ErrSurfelNotFound = errors.New("surface: surfel not found")

	// ErrNotASurfel indicates a cell that is not a surfel.
	ErrNotASurfel = errors.New("surface: cell is not a surfel")

	// ErrDimensionMismatch indicates a surfel of the wrong dimension.
	ErrDimensionMismatch = errors.New("surface: dimension mismatch")

	// ErrOptionViolation indicates an invalid visitor option.
	ErrOptionViolation = errors.New("surface: invalid option supplied")
)

// Strategy selects the frontier discipline of a Visitor.
type Strategy int

const (
	// DepthFirst uses a stack frontier.
	DepthFirst Strategy = iota
	// BreadthFirst uses a queue frontier; surfels come by increasing depth.
	BreadthFirst
)

// VisitState is the state of a surfel during a traversal.
type VisitState uint8

const (
	// Unvisited surfels have not been reached yet.
	Unvisited VisitState = iota
	// Frontier surfels are reached but not yet emitted.
	Frontier
	// Visited surfels have been emitted.
	Visited
)

// Option configures a Visitor via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by NewVisitor.
type Option func(*VisitorOptions)

// VisitorOptions holds the parameters and hooks of a traversal.
type VisitorOptions struct {
	// Strategy selects depth-first or breadth-first order.
	Strategy Strategy

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor kspace.SCell) bool

	// OnEnqueue is called when a surfel joins the frontier.
	OnEnqueue func(s kspace.SCell, depth int)

	// OnVisit is called when a surfel is emitted. A non-nil error stops the traversal.
	OnVisit func(s kspace.SCell, depth int) error

	err error
}

// DefaultOptions returns depth-first VisitorOptions without limit, filter or hooks.
func DefaultOptions() VisitorOptions {
	return VisitorOptions{
		Strategy:       DepthFirst,
		FilterNeighbor: func(_, _ kspace.SCell) bool { return true },
		OnEnqueue:      func(kspace.SCell, int) {},
		OnVisit:        func(kspace.SCell, int) error { return nil },
	}
}

// WithStrategy selects the traversal order.
func WithStrategy(s Strategy) Option {
	return func(o *VisitorOptions) {
		if s != DepthFirst && s != BreadthFirst {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithMaxDepth stops the traversal beyond depth d.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *VisitorOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor kspace.SCell) bool) Option {
	return func(o *VisitorOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithOnEnqueue registers a callback run when a surfel joins the frontier.
func WithOnEnqueue(fn func(s kspace.SCell, depth int)) Option {
	return func(o *VisitorOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run when a surfel is emitted.
func WithOnVisit(fn func(s kspace.SCell, depth int) error) Option {
	return func(o *VisitorOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
