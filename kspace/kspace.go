package kspace

import (
	"fmt"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/space"
)

// KSpace is the cellular grid space over the digital box [lower, upper].
// Along a closed axis k the Khalimsky coordinates range over
// [2·lower[k], 2·upper[k]+2]; along a periodic axis the last pointel is the
// first one, so they range over [2·lower[k], 2·upper[k]+1].
// A KSpace is immutable and safe for concurrent reads.
type KSpace struct {
	dom      *domain.HyperRect
	periodic [space.MaxDimension]bool
	klower   space.Point
	kupper   space.Point
}

// New builds the K-space of the digital box [lower, upper].
// Returns ErrDimensionMismatch, ErrInvalidBounds or ErrOptionViolation.
// Complexity: O(D).
func New(lower, upper space.Point, opts ...Option) (*KSpace, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if lower.Dim() == 0 || lower.Dim() != upper.Dim() {
		return nil, fmt.Errorf("%w: lower %v, upper %v", ErrDimensionMismatch, lower, upper)
	}
	if !lower.IsLower(upper) {
		return nil, fmt.Errorf("%w: %v > %v", ErrInvalidBounds, lower, upper)
	}
	dom, err := domain.New(lower, upper)
	if err != nil {
		return nil, err
	}

	dim := lower.Dim()
	ks := &KSpace{dom: dom, klower: lower.Scale(2), kupper: upper.Scale(2)}
	for _, k := range o.Periodic {
		if k >= dim {
			return nil, fmt.Errorf("%w: periodic axis %d in dimension %d", ErrOptionViolation, k, dim)
		}
		ks.periodic[k] = true
	}
	for k := 0; k < dim; k++ {
		if ks.periodic[k] {
			ks.kupper = ks.kupper.Shift(k, 1)
		} else {
			ks.kupper = ks.kupper.Shift(k, 2)
		}
	}

	return ks, nil
}

// Dimension returns the dimension of the space.
func (ks *KSpace) Dimension() int { return ks.dom.Dimension() }

// Lower returns the lower digital bound.
func (ks *KSpace) Lower() space.Point { return ks.dom.Lower() }

// Upper returns the upper digital bound.
func (ks *KSpace) Upper() space.Point { return ks.dom.Upper() }

// Domain returns the digital box of the space.
func (ks *KSpace) Domain() *domain.HyperRect { return ks.dom }

// IsPeriodic reports whether axis k wraps around.
func (ks *KSpace) IsPeriodic(k int) bool {
	return k >= 0 && k < ks.Dimension() && ks.periodic[k]
}

// KLower returns the lowest Khalimsky coordinates.
func (ks *KSpace) KLower() space.Point { return ks.klower }

// KUpper returns the highest Khalimsky coordinates.
func (ks *KSpace) KUpper() space.Point { return ks.kupper }

// CellCount returns the number of cells of the space.
func (ks *KSpace) CellCount() uint64 {
	n := uint64(1)
	for k := 0; k < ks.Dimension(); k++ {
		n *= uint64(ks.kupper.At(k) - ks.klower.At(k) + 1)
	}
	return n
}

// IsInside reports whether the cell lies in the space.
func (ks *KSpace) IsInside(c Cell) bool { return ks.isKInside(c.K) }

// IsSInside reports whether the signed cell lies in the space.
func (ks *KSpace) IsSInside(s SCell) bool { return ks.isKInside(s.K) }

// IsPointInside reports whether the digital point lies in the box.
func (ks *KSpace) IsPointInside(p space.Point) bool { return ks.dom.IsInside(p) }

func (ks *KSpace) isKInside(k space.Point) bool {
	return k.Dim() == ks.Dimension() && ks.klower.IsLower(k) && k.IsLower(ks.kupper)
}

// Spel returns the unsigned spel of p.
func (ks *KSpace) Spel(p space.Point) Cell { return Cell{K: spelK(p)} }

// SSpel returns the spel of p with the given orientation.
func (ks *KSpace) SSpel(p space.Point, positive bool) SCell {
	return SCell{K: spelK(p), Positive: positive}
}

// SPointel returns the pointel of p with the given orientation.
func (ks *KSpace) SPointel(p space.Point, positive bool) SCell {
	return SCell{K: p.Scale(2), Positive: positive}
}

// SCellAt returns the signed cell of Khalimsky coordinates k, wrapped along
// periodic axes.
func (ks *KSpace) SCellAt(k space.Point, positive bool) SCell {
	return SCell{K: ks.wrapK(k), Positive: positive}
}

// SDirect returns the direct orientation of c along axis k: the sign of c
// flipped once per odd coordinate on the axes below k.
func (ks *KSpace) SDirect(c SCell, k int) bool {
	return c.Positive != (openCount(c.K, k)&1 == 1)
}

// SIncident returns the cell incident to c along axis k, one Khalimsky step
// up or down. Periodic coordinates are wrapped; closed ones are left as is,
// so the result may lie outside the space.
func (ks *KSpace) SIncident(c SCell, k int, up bool) SCell {
	sign := up == c.Positive
	if openCount(c.K, k)&1 == 1 {
		sign = !sign
	}
	step := -1
	if up {
		step = 1
	}

	return SCell{K: ks.wrapK(c.K.Shift(k, step)), Positive: sign}
}

// SDirectIncident returns the incident cell along k in the direct orientation.
func (ks *KSpace) SDirectIncident(c SCell, k int) SCell {
	return ks.SIncident(c, k, ks.SDirect(c, k))
}

// SIndirectIncident returns the incident cell along k in the indirect orientation.
func (ks *KSpace) SIndirectIncident(c SCell, k int) SCell {
	return ks.SIncident(c, k, !ks.SDirect(c, k))
}

// SAdjacent returns the cell of the same type next to c along axis k.
func (ks *KSpace) SAdjacent(c SCell, k int, up bool) SCell {
	step := -2
	if up {
		step = 2
	}
	return SCell{K: ks.wrapK(c.K.Shift(k, step)), Positive: c.Positive}
}

// Bel returns the surfel separating in (inside) from out (outside), oriented
// so that SDirectIncident(bel, orth) is the positive spel of in.
// Returns ErrNotAdjacent unless in and out differ by one along one axis.
func (ks *KSpace) Bel(in, out space.Point) (SCell, error) {
	if in.Dim() != ks.Dimension() || out.Dim() != ks.Dimension() {
		return SCell{}, fmt.Errorf("%w: %v, %v", ErrDimensionMismatch, in, out)
	}
	d := ks.wrapPoint(out).Sub(ks.wrapPoint(in))
	n, up := -1, false
	for k := 0; k < d.Dim(); k++ {
		v := d.At(k)
		if v == 0 {
			continue
		}
		if ks.periodic[k] {
			v = ks.periodicStep(k, v)
		}
		if n >= 0 || (v != 1 && v != -1) {
			return SCell{}, fmt.Errorf("%w: %v, %v", ErrNotAdjacent, in, out)
		}
		n, up = k, v == 1
	}
	if n < 0 {
		return SCell{}, fmt.Errorf("%w: %v, %v", ErrNotAdjacent, in, out)
	}

	return ks.orientedBel(spelK(ks.wrapPoint(in)), n, up), nil
}

// BelAlong returns the surfel between in (inside) and its neighbor along
// axis k, upward when up, oriented like Bel. Unlike Bel it keeps the step
// direction on a periodic axis of width 2, where both neighbors coincide.
func (ks *KSpace) BelAlong(in space.Point, k int, up bool) (SCell, error) {
	if in.Dim() != ks.Dimension() || k < 0 || k >= ks.Dimension() {
		return SCell{}, fmt.Errorf("%w: %v along axis %d", ErrDimensionMismatch, in, k)
	}
	return ks.orientedBel(spelK(ks.wrapPoint(in)), k, up), nil
}

// InnerSpel returns the spel on the direct side of a surfel: the inside
// spel of a bel.
func (ks *KSpace) InnerSpel(s SCell) SCell {
	return ks.SDirectIncident(s, s.OrthDir())
}

// OuterSpel returns the spel on the indirect side of a surfel.
func (ks *KSpace) OuterSpel(s SCell) SCell {
	return ks.SIndirectIncident(s, s.OrthDir())
}

// Pointels returns the 2^(D-1) pointels of a surfel, as points of the
// Khalimsky grid divided by two, in default order of their offsets.
func (ks *KSpace) Pointels(s SCell) []space.Point {
	dirs := s.Dirs()
	out := make([]space.Point, 0, 1<<len(dirs))
	base := s.K
	for _, k := range dirs {
		base = base.Shift(k, -1)
	}
	for mask := 0; mask < 1<<len(dirs); mask++ {
		k := base
		for i, axis := range dirs {
			if mask&(1<<i) != 0 {
				k = k.Shift(axis, 2)
			}
		}
		out = append(out, coords(ks.wrapK(k)))
	}
	return out
}

// WrapPoint maps p into the box along periodic axes.
func (ks *KSpace) WrapPoint(p space.Point) space.Point { return ks.wrapPoint(p) }

func spelK(p space.Point) space.Point {
	return p.Scale(2).Add(space.Diagonal(p.Dim(), 1))
}

func (ks *KSpace) wrapK(k space.Point) space.Point {
	for i := 0; i < ks.Dimension() && i < k.Dim(); i++ {
		if !ks.periodic[i] {
			continue
		}
		lo := ks.klower.At(i)
		period := ks.kupper.At(i) - lo + 1
		k = k.With(i, lo+mod(k.At(i)-lo, period))
	}
	return k
}

func (ks *KSpace) wrapPoint(p space.Point) space.Point {
	lower, upper := ks.dom.Lower(), ks.dom.Upper()
	for i := 0; i < ks.Dimension() && i < p.Dim(); i++ {
		if !ks.periodic[i] {
			continue
		}
		lo := lower.At(i)
		period := upper.At(i) - lo + 1
		p = p.With(i, lo+mod(p.At(i)-lo, period))
	}
	return p
}

// periodicStep folds a wrapped coordinate difference into (-period/2, period/2].
func (ks *KSpace) periodicStep(k, v int) int {
	period := ks.dom.Upper().At(k) - ks.dom.Lower().At(k) + 1
	v = mod(v, period)
	if 2*v > period {
		v -= period
	}
	return v
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
