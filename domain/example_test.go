package domain_test

import (
	"fmt"

	"github.com/elombardi2/DGtal/domain"
	"github.com/elombardi2/DGtal/space"
)

// ExampleHyperRect_Range walks a 2x3 box with axis 1 varying fastest.
func ExampleHyperRect_Range() {
	d, _ := domain.New(space.MustPoint(0, 0), space.MustPoint(1, 2))
	r, _ := d.Range(domain.WithOrder(1, 0))
	for p := range r.All() {
		fmt.Print(p, " ")
	}
	fmt.Println()
	// Output: (0,0) (0,1) (0,2) (1,0) (1,1) (1,2)
}

func ExampleIterator_Prev() {
	d, _ := domain.New(space.MustPoint(0, 0), space.MustPoint(1, 1))
	it := d.End()
	for it.Prev() {
		fmt.Print(it.Point(), " ")
	}
	fmt.Println()
	// Output: (1,1) (0,1) (1,0) (0,0)
}
