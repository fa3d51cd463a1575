package surface

import (
	"fmt"
	"iter"

	"github.com/elombardi2/DGtal/kspace"
)

// frontierItem pairs a surfel index with its depth from the seed.
type frontierItem struct {
	idx   int
	depth int
}

// Visitor walks a DigitalSurface from a seed. Each surfel reachable from the
// seed is emitted once; the sequence is finite and not restartable.
// A Visitor is not safe for concurrent use.
type Visitor struct {
	ds       *DigitalSurface
	opts     VisitorOptions
	state    []VisitState
	frontier []frontierItem
	depth    int
	closed   bool
	err      error
}

// NewVisitor prepares a traversal of ds from seed.
// Returns ErrSurfelNotFound when seed is not a node of ds, or
// ErrOptionViolation for an invalid option.
func NewVisitor(ds *DigitalSurface, seed kspace.SCell, opts ...Option) (*Visitor, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	i, ok := ds.index[seed]
	if !ok {
		return nil, fmt.Errorf("%w: seed %v", ErrSurfelNotFound, seed)
	}

	v := &Visitor{
		ds:       ds,
		opts:     o,
		state:    make([]VisitState, len(ds.surfels)),
		frontier: make([]frontierItem, 0, len(ds.surfels)),
	}
	v.push(i, 0)

	return v, nil
}

// push marks idx as frontier at depth d and calls OnEnqueue.
func (v *Visitor) push(idx, d int) {
	v.state[idx] = Frontier
	v.opts.OnEnqueue(v.ds.surfels[idx], d)
	v.frontier = append(v.frontier, frontierItem{idx: idx, depth: d})
}

// pop removes the next item: the last one depth-first, the first one breadth-first.
func (v *Visitor) pop() frontierItem {
	var item frontierItem
	if v.opts.Strategy == BreadthFirst {
		item = v.frontier[0]
		v.frontier = v.frontier[1:]
	} else {
		last := len(v.frontier) - 1
		item = v.frontier[last]
		v.frontier = v.frontier[:last]
	}
	return item
}

// Next emits the following surfel. It returns false once the traversal is
// finished, closed, or stopped by an OnVisit error (see Err).
func (v *Visitor) Next() (kspace.SCell, bool) {
	if v.closed || v.err != nil || len(v.frontier) == 0 {
		return kspace.SCell{}, false
	}
	item := v.pop()
	s := v.ds.surfels[item.idx]
	v.state[item.idx] = Visited
	v.depth = item.depth
	if err := v.opts.OnVisit(s, item.depth); err != nil {
		v.err = fmt.Errorf("surface: OnVisit error at %v: %w", s, err)
		return kspace.SCell{}, false
	}

	nd := item.depth + 1
	if v.opts.MaxDepth > 0 && nd > v.opts.MaxDepth {
		return s, true
	}
	nbrs := v.ds.nbrs[item.idx]
	if v.opts.Strategy == BreadthFirst {
		for _, j := range nbrs {
			v.consider(s, j, nd)
		}
	} else {
		// reverse push: the first neighbor is popped first
		for k := len(nbrs) - 1; k >= 0; k-- {
			v.consider(s, nbrs[k], nd)
		}
	}

	return s, true
}

func (v *Visitor) consider(curr kspace.SCell, j, depth int) {
	if v.state[j] != Unvisited || !v.opts.FilterNeighbor(curr, v.ds.surfels[j]) {
		return
	}
	v.push(j, depth)
}

// Depth returns the depth of the last emitted surfel.
func (v *Visitor) Depth() int { return v.depth }

// State returns the visit state of s; surfels outside the surface and any
// surfel after Close are Unvisited.
func (v *Visitor) State(s kspace.SCell) VisitState {
	i, ok := v.ds.index[s]
	if !ok || v.closed {
		return Unvisited
	}
	return v.state[i]
}

// Err returns the error that stopped the traversal, if any.
func (v *Visitor) Err() error { return v.err }

// Finished reports whether no surfel remains to emit.
func (v *Visitor) Finished() bool {
	return v.closed || v.err != nil || len(v.frontier) == 0
}

// All yields the remaining surfels.
func (v *Visitor) All() iter.Seq[kspace.SCell] {
	return func(yield func(kspace.SCell) bool) {
		for {
			s, ok := v.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Collect drains the visitor into a slice.
func (v *Visitor) Collect() []kspace.SCell {
	var out []kspace.SCell
	for s := range v.All() {
		out = append(out, s)
	}
	return out
}

// Close releases the visit states and the frontier. Further calls to Next return false.
func (v *Visitor) Close() {
	v.closed = true
	v.state = nil
	v.frontier = nil
}

// Walk runs fn on every surfel reachable from seed and releases the visitor
// before returning. The first error of fn stops the walk and is returned.
func (ds *DigitalSurface) Walk(seed kspace.SCell, fn func(s kspace.SCell, depth int) error, opts ...Option) error {
	v, err := NewVisitor(ds, seed, append(opts[:len(opts):len(opts)], WithOnVisit(fn))...)
	if err != nil {
		return err
	}
	defer v.Close()
	for {
		if _, ok := v.Next(); !ok {
			return v.Err()
		}
	}
}
