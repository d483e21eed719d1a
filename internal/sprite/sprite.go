package sprite

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
)

// Glow returns a size×size white sprite with a soft round falloff: a solid disc of half the
// sprite's radius blurred by blurRadius pixels. Alpha carries the shape so the sprite can be tinted.
func Glow(size int, blurRadius float64) *image.RGBA {
	if size < 1 {
		size = 1
	}
	disc := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	r := float64(size) / 4
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			if dx*dx+dy*dy <= r*r {
				disc.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	if blurRadius <= 0 {
		return disc
	}
	return blur.Gaussian(disc, blurRadius)
}
