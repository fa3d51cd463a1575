package fmm

import (
	"container/heap"
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/space"
)

// Compute marches from seeds over the points of d accepted by pred and
// returns the value of every reached point, seeds included. Seeds need not
// satisfy pred. A nil pred accepts the whole domain.
func Compute(d *domain.HyperRect, seeds map[space.Point]float64, pred space.PointPredicate, opts ...Option) (map[space.Point]float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if pred == nil {
		pred = space.True
	}

	// seeds in a fixed order so runs are reproducible
	points := make([]space.Point, 0, len(seeds))
	for p := range seeds {
		points = append(points, p)
	}
	slices.SortFunc(points, func(a, b space.Point) int { return a.Compare(b) })

	r := &runner{
		dom:       d,
		pred:      pred,
		options:   o,
		accepted:  make(map[space.Point]float64, len(seeds)),
		tentative: make(map[space.Point]float64),
	}
	for _, p := range points {
		if p.Dim() != d.Dimension() {
			return nil, fmt.Errorf("%w: seed %v in dimension %d", ErrDimensionMismatch, p, d.Dimension())
		}
		if !d.IsInside(p) {
			return nil, fmt.Errorf("%w: %v not in %v", ErrSeedOutOfDomain, p, d)
		}
		v := seeds[p]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v at %v", ErrInvalidSeed, v, p)
		}
		r.accepted[p] = v
	}

	heap.Init(&r.pq)
	for _, p := range points {
		r.pushNeighbors(p)
	}
	r.process()
	log.Debugf("fast marching: %d seeds, %d points accepted", len(points), len(r.accepted))

	return r.accepted, nil
}

// runner holds the mutable state of one march.
type runner struct {
	dom       *domain.HyperRect
	pred      space.PointPredicate
	options   Options
	accepted  map[space.Point]float64
	tentative map[space.Point]float64
	pq        pointPQ
}

// process accepts candidates by increasing value until the heap is empty or
// the next value exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pointItem)
		if _, done := r.accepted[item.p]; done {
			continue
		}
		if item.value > r.options.MaxDistance {
			break
		}
		r.accepted[item.p] = item.value
		delete(r.tentative, item.p)
		r.pushNeighbors(item.p)
	}
}

// pushNeighbors updates the axis neighbors of p that are still open.
func (r *runner) pushNeighbors(p space.Point) {
	for k := 0; k < p.Dim(); k++ {
		for _, step := range [2]int{1, -1} {
			q := p.Shift(k, step)
			if !r.dom.IsInside(q) || !r.pred.Test(q) {
				continue
			}
			if _, done := r.accepted[q]; done {
				continue
			}
			v := r.solve(q)
			if old, ok := r.tentative[q]; ok && old <= v {
				continue
			}
			r.tentative[q] = v
			heap.Push(&r.pq, &pointItem{p: q, value: v})
		}
	}
}

// solve returns the first-order Euclidean update of q from its accepted neighbors.
func (r *runner) solve(q space.Point) float64 {
	var buf [space.MaxDimension]float64
	a := buf[:0]
	for k := 0; k < q.Dim(); k++ {
		best, found := 0.0, false
		for _, step := range [2]int{1, -1} {
			if v, ok := r.accepted[q.Shift(k, step)]; ok && (!found || v < best) {
				best, found = v, true
			}
		}
		if found {
			a = append(a, best)
		}
	}
	slices.Sort(a)

	h := r.options.GridStep
	d := a[0] + h
	sum, sum2 := a[0], a[0]*a[0]
	for n := 2; n <= len(a); n++ {
		next := a[n-1]
		if d <= next {
			break
		}
		sum += next
		sum2 += next * next
		fn := float64(n)
		disc := sum*sum - fn*(sum2-h*h)
		if disc < 0 {
			break
		}
		d = (sum + math.Sqrt(disc)) / fn
	}

	return d
}

// pointItem is a candidate point with its tentative value.
type pointItem struct {
	p     space.Point
	value float64
}

// pointPQ is a min-heap of candidates. Improved candidates are pushed again;
// stale entries are skipped on pop.
type pointPQ []*pointItem

func (pq pointPQ) Len() int { return len(pq) }

func (pq pointPQ) Less(i, j int) bool {
	if pq[i].value != pq[j].value {
		return pq[i].value < pq[j].value
	}
	return pq[i].p.Compare(pq[j].p) < 0
}

func (pq pointPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pointPQ) Push(x interface{}) { *pq = append(*pq, x.(*pointItem)) }

func (pq *pointPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
