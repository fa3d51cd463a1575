package surface

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/elombardi2/DGtal/boundary"
	"github.com/elombardi2/DGtal/kspace"
	"github.com/elombardi2/DGtal/space"
)

// DigitalSurface is an immutable graph of surfels joined by bel adjacency.
// It may be read concurrently.
type DigitalSurface struct {
	ks      *kspace.KSpace
	adj     *kspace.SurfelAdjacency
	surfels []kspace.SCell
	index   map[kspace.SCell]int
	nbrs    [][]int
}

// FromSeed builds the surface of every bel of pred connected to seed.
// Errors of boundary.TrackBoundary are returned as is.
func FromSeed(ks *kspace.KSpace, adj *kspace.SurfelAdjacency, pred space.PointPredicate,
	seed kspace.SCell) (*DigitalSurface, error) {
	bels, err := boundary.TrackBoundary(ks, adj, pred, seed)
	if err != nil {
		return nil, err
	}
	return build(ks, adj, pred, bels), nil
}

// FromSurfels builds the surface over an explicit surfel set. Two surfels
// are joined when one follows the other on the boundary of pred; followers
// outside the set are dropped. Duplicates are ignored.
// Returns ErrNotASurfel or ErrDimensionMismatch for an invalid cell.
func FromSurfels(ks *kspace.KSpace, adj *kspace.SurfelAdjacency, pred space.PointPredicate,
	surfels []kspace.SCell) (*DigitalSurface, error) {
	set := mapset.NewThreadUnsafeSetWithSize[kspace.SCell](len(surfels))
	uniq := make([]kspace.SCell, 0, len(surfels))
	for _, s := range surfels {
		if s.K.Dim() != ks.Dimension() {
			return nil, fmt.Errorf("%w: %v in dimension %d", ErrDimensionMismatch, s, ks.Dimension())
		}
		if !s.IsSurfel() {
			return nil, fmt.Errorf("%w: %v", ErrNotASurfel, s)
		}
		if set.Add(s) {
			uniq = append(uniq, s)
		}
	}
	return build(ks, adj, pred, uniq), nil
}

func build(ks *kspace.KSpace, adj *kspace.SurfelAdjacency, pred space.PointPredicate,
	surfels []kspace.SCell) *DigitalSurface {
	ds := &DigitalSurface{
		ks:      ks,
		adj:     adj,
		surfels: surfels,
		index:   make(map[kspace.SCell]int, len(surfels)),
		nbrs:    make([][]int, len(surfels)),
	}
	for i, s := range surfels {
		ds.index[s] = i
	}

	nbh := kspace.NewSurfelNeighborhood(ks, adj)
	for i, s := range surfels {
		nbh.SetSurfel(s)
		for _, t := range s.Dirs() {
			direct := ks.SDirect(s, t)
			for _, pos := range [2]bool{direct, !direct} {
				next, _ := nbh.AdjacentOnPointPredicate(pred, t, pos)
				j, ok := ds.index[next]
				if !ok || j == i || containsIndex(ds.nbrs[i], j) {
					continue
				}
				ds.nbrs[i] = append(ds.nbrs[i], j)
			}
		}
	}
	log.Debugf("digital surface: %d surfels", len(surfels))

	return ds
}

func containsIndex(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// Space returns the K-space of the surface.
func (ds *DigitalSurface) Space() *kspace.KSpace { return ds.ks }

// Adjacency returns the surfel adjacency of the surface.
func (ds *DigitalSurface) Adjacency() *kspace.SurfelAdjacency { return ds.adj }

// Size returns the number of surfels.
func (ds *DigitalSurface) Size() int { return len(ds.surfels) }

// Surfels returns a copy of the surfels in construction order.
func (ds *DigitalSurface) Surfels() []kspace.SCell {
	return append([]kspace.SCell(nil), ds.surfels...)
}

// Contains reports whether s is a node of the surface.
func (ds *DigitalSurface) Contains(s kspace.SCell) bool {
	_, ok := ds.index[s]
	return ok
}

// Neighbors returns the surfels adjacent to s, or nil when s is not a node.
func (ds *DigitalSurface) Neighbors(s kspace.SCell) []kspace.SCell {
	i, ok := ds.index[s]
	if !ok {
		return nil
	}
	out := make([]kspace.SCell, len(ds.nbrs[i]))
	for k, j := range ds.nbrs[i] {
		out[k] = ds.surfels[j]
	}
	return out
}

// Degree returns the number of neighbors of s, or -1 when s is not a node.
func (ds *DigitalSurface) Degree(s kspace.SCell) int {
	i, ok := ds.index[s]
	if !ok {
		return -1
	}
	return len(ds.nbrs[i])
}

// IsValid reports whether the surface is bound to a space and every edge is symmetric.
func (ds *DigitalSurface) IsValid() bool {
	if ds == nil || ds.ks == nil || ds.adj == nil {
		return false
	}
	for i, ns := range ds.nbrs {
		for _, j := range ns {
			if !containsIndex(ds.nbrs[j], i) {
				return false
			}
		}
	}
	return true
}

// Components returns the connected components of the surface, each in
// breadth-first order from its first surfel in construction order.
func (ds *DigitalSurface) Components() [][]kspace.SCell {
	seen := make([]bool, len(ds.surfels))
	var comps [][]kspace.SCell
	for i0 := range ds.surfels {
		if seen[i0] {
			continue
		}
		seen[i0] = true
		queue := []int{i0}
		comp := make([]kspace.SCell, 0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, ds.surfels[u])
			for _, v := range ds.nbrs[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
