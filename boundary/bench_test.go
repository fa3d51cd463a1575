package boundary_test

import (
	"testing"

	"github.com/elombardi2/DGtal/boundary"
	"github.com/elombardi2/DGtal/kspace"
	"github.com/elombardi2/DGtal/space"
)

func BenchmarkExtractAll2DSCellContours(b *testing.B) {
	ks := mustKSpace(b, space.MustPoint(-64, -64), space.MustPoint(64, 64))
	disk := space.PredicateFunc(func(p space.Point) bool {
		x, y := p.At(0), p.At(1)
		return x*x+y*y <= 50*50
	})
	adj := kspace.NewSurfelAdjacency(2, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := boundary.ExtractAll2DSCellContours(ks, adj, disk); err != nil {
			b.Fatal(err)
		}
	}
}
