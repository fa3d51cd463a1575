package domain_test

import (
	"testing"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/space"
)

func BenchmarkHyperRect_All3D(b *testing.B) {
	d := mustDomain(b, space.MustPoint(0, 0, 0), space.MustPoint(63, 63, 63))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range d.All() {
			n++
		}
	}
}

func BenchmarkDigitalSet_Insert(b *testing.B) {
	d := mustDomain(b, space.MustPoint(0, 0), space.MustPoint(255, 255))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := domain.NewDigitalSet(d)
		_ = s.InsertAll(d.All())
	}
}
