package layout

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// GoldenAngle is π(3-√5), about 137.5°. Successive ornaments step by it so no two neighbours share a sector.
const GoldenAngle = math.Pi * (3 - sqrt5)

const sqrt5 = 2.23606797749978969640917366873127623544061835961152572427089

// Tree extents shared by the ornament spiral and the light helix (world units, Y up).
// Ornament height is (y+1)*ornamentSpan for y in [-1, 1]; the radius reaches zero at ornamentTaperTop.
const (
	ornamentSpan      = 2.5
	ornamentTaperTop  = 6
	ornamentBaseR     = 2
	ornamentYOffset   = -3.5
	ornamentScaleMin  = 0.10
	ornamentScaleSpan = 0.15

	lightTurns  = 6
	lightBottom = -3
	lightHeight = 6
	lightBaseR  = 2.2
)

var (
	ErrTooFewOrnaments = errors.New("ornament count must be at least 2")
	ErrTooFewLights    = errors.New("light count must be at least 1")
)

// CheckCounts reports whether Ornaments(ornaments, ...) and Lights(lights) would both succeed.
func CheckCounts(ornaments, lights int) error {
	if ornaments < 2 {
		return fmt.Errorf("ornaments(%d): %w", ornaments, ErrTooFewOrnaments)
	}
	if lights < 1 {
		return fmt.Errorf("lights(%d): %w", lights, ErrTooFewLights)
	}
	return nil
}

// OrnamentPlacement is one ornament: center and uniform scale.
type OrnamentPlacement struct {
	Position [3]float32
	Scale    float32
}

// LightPlacement is one bulb on the light strand.
type LightPlacement struct {
	Position [3]float32
}

// Ornaments spreads count ornaments over the cone on a golden-angle spiral, top to bottom.
// Shape is deterministic; each scale is drawn from rng in [0.10, 0.25).
// count below 2 is a caller error: the spiral parameter divides by count-1.
func Ornaments(count int, rng *rand.Rand) ([]OrnamentPlacement, error) {
	if count < 2 {
		return nil, fmt.Errorf("ornaments(%d): %w", count, ErrTooFewOrnaments)
	}
	out := make([]OrnamentPlacement, count)
	last := float32(count - 1)
	for i := range out {
		y := 1 - float32(i)/last*2
		height := (y + 1) * ornamentSpan
		radius := (1 - height/ornamentTaperTop) * ornamentBaseR
		theta := GoldenAngle * float32(i)
		out[i] = OrnamentPlacement{
			Position: [3]float32{
				math32.Cos(theta) * radius,
				height + ornamentYOffset,
				math32.Sin(theta) * radius,
			},
			Scale: ornamentScaleMin + rng.Float32()*ornamentScaleSpan,
		}
	}
	return out, nil
}

// Lights winds count bulbs six times around the tree, widest at the base and narrowing with the cone. No randomness.
func Lights(count int) ([]LightPlacement, error) {
	if count < 1 {
		return nil, fmt.Errorf("lights(%d): %w", count, ErrTooFewLights)
	}
	out := make([]LightPlacement, count)
	for i := range out {
		t := float32(i) / float32(count)
		angle := t * math32.Pi * 2 * lightTurns
		height := t*lightHeight + lightBottom
		radius := (1 - t) * lightBaseR
		out[i] = LightPlacement{
			Position: [3]float32{math32.Cos(angle) * radius, height, math32.Sin(angle) * radius},
		}
	}
	return out, nil
}
