package adjacency

import (
	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/space"
)

// Components finds the connected components of {p in d : pred(p)} under adj.
// Components are ordered by their first point in default domain order; each
// component lists its points in breadth-first order from that point.
//
// Time:   O(|d| · 3^D).
// Memory: O(|d|) for visited flags and output.
func Components(d *domain.HyperRect, adj Adjacency, pred space.PointPredicate) ([][]space.Point, error) {
	da, err := NewDomainAdjacency(d, adj)
	if err != nil {
		return nil, err
	}
	seen := make([]bool, d.Size())
	var comps [][]space.Point
	var nbrs []space.Point

	for p := range d.All() {
		i0, _ := d.Linear(p)
		if seen[i0] || !accept(pred, p) {
			continue
		}
		// BFS to collect component
		seen[i0] = true
		queue := []space.Point{p}
		for qi := 0; qi < len(queue); qi++ {
			nbrs = da.WriteNeighborhood(queue[qi], nbrs[:0], pred)
			for _, q := range nbrs {
				j, _ := d.Linear(q)
				if !seen[j] {
					seen[j] = true
					queue = append(queue, q)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps, nil
}
