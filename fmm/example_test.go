package fmm_test

import (
	"fmt"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/fmm"
	"github.com/elombardi2/DGtal/space"
)

// ExampleCompute marches along a segment from its left end.
func ExampleCompute() {
	d, _ := domain.New(space.MustPoint(0), space.MustPoint(4))
	dist, err := fmm.Compute(d, map[space.Point]float64{space.MustPoint(0): 0}, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	for p := range d.All() {
		fmt.Print(dist[p], " ")
	}
	fmt.Println()
	// Output: 0 1 2 3 4
}
