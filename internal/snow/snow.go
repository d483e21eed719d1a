package snow

import (
	"math/rand/v2"
)

const (
	// N is the fixed number of flakes. The buffer never grows or shrinks.
	N = 300
	// FallSpeed is the descent rate in units per second.
	FallSpeed = 0.8

	HalfExtent = 10
	SpawnLow   = -5
	SpawnHigh  = 15
	Floor      = -6
	ResetY     = 12
)

// Field is a fixed buffer of falling snowflakes. Flakes that fall through the floor are recycled
// at the top with new horizontal coordinates, so the visible count stays constant forever.
type Field struct {
	points [N][3]float32
	rng    *rand.Rand
}

// New scatters N flakes in the box x,z in [-10, 10), y in [-5, 15).
func New(rng *rand.Rand) *Field {
	f := &Field{rng: rng}
	for i := range f.points {
		f.points[i] = [3]float32{
			f.horizontal(),
			SpawnLow + rng.Float32()*(SpawnHigh-SpawnLow),
			f.horizontal(),
		}
	}
	return f
}

func (f *Field) horizontal() float32 {
	return (f.rng.Float32() - 0.5) * 2 * HalfExtent
}

// Tick moves every flake down by delta*FallSpeed. A flake at or below the floor after the move
// is put back at ResetY with fresh x and z. Negative or NaN deltas move nothing.
func (f *Field) Tick(delta float32) {
	if !(delta > 0) {
		return
	}
	step := delta * FallSpeed
	for i := range f.points {
		p := &f.points[i]
		p[1] -= step
		if p[1] <= Floor {
			p[0] = f.horizontal()
			p[1] = ResetY
			p[2] = f.horizontal()
		}
	}
}

// Len is always N.
func (f *Field) Len() int {
	return len(f.points)
}

// At returns flake i.
func (f *Field) At(i int) [3]float32 {
	return f.points[i]
}

// Each calls fn for every flake in buffer order.
func (f *Field) Each(fn func(i int, p [3]float32)) {
	for i, p := range f.points {
		fn(i, p)
	}
}

// Points returns a copy of the buffer.
func (f *Field) Points() [][3]float32 {
	out := make([][3]float32, len(f.points))
	copy(out, f.points[:])
	return out
}
