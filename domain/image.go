package domain

import (
	"fmt"
	"image"
	"image/color"

	"github.com/elombardi2/DGtal/space"
)

// SetFromImage thresholds img into a 2D DigitalSet: pixel (x,y) becomes
// point (x,y) when min < gray(x,y) <= max. The domain is img.Bounds().
// Returns ErrOutOfDomain for an image with empty bounds.
// Complexity: O(W·H).
func SetFromImage(img image.Image, min, max uint8) (*DigitalSet, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image bounds %v", ErrOutOfDomain, b)
	}
	d, err := New(space.MustPoint(b.Min.X, b.Min.Y), space.MustPoint(b.Max.X-1, b.Max.Y-1))
	if err != nil {
		return nil, err
	}
	set := NewDigitalSet(d)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			if g > min && g <= max {
				if err = set.Insert(space.MustPoint(x, y)); err != nil {
					return nil, err
				}
			}
		}
	}

	return set, nil
}
