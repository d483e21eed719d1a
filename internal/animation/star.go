package animation

import "math"

const (
	// StarSpinPerTick is added to the star's yaw on every tick regardless of frame time.
	StarSpinPerTick = 0.01
	// StarTiltAmplitude scales sin(elapsed) into the star's roll.
	StarTiltAmplitude = 0.1
	StarRadius        = 0.4
)

// StarPosition is where the star sits above the top cone, in group space.
var StarPosition = [3]float32{0, 3.2, 0}

// Star is the octahedron on top of the tree. It spins on its own and rocks side to side.
type Star struct {
	spin float32
	tilt float32
}

// Tick advances the spin by one step and sets the tilt from the elapsed wall time in seconds.
func (s *Star) Tick(elapsed float64) {
	s.spin = wrap(s.spin + StarSpinPerTick)
	s.tilt = float32(math.Sin(elapsed) * StarTiltAmplitude)
}

// Spin is the star's yaw in radians, in [0, 2π).
func (s *Star) Spin() float32 { return s.spin }

// Tilt is the star's roll in radians, within ±StarTiltAmplitude.
func (s *Star) Tilt() float32 { return s.tilt }

// Vertices returns the octahedron corners in star space: ±X, ±Y, ±Z at StarRadius.
func Vertices() [6][3]float32 {
	const r = StarRadius
	return [6][3]float32{
		{r, 0, 0}, {-r, 0, 0},
		{0, r, 0}, {0, -r, 0},
		{0, 0, r}, {0, 0, -r},
	}
}

// Faces lists the eight triangles as indices into Vertices, wound counter-clockwise seen from outside.
func Faces() [8][3]int {
	return [8][3]int{
		{0, 2, 4}, {4, 2, 1}, {1, 2, 5}, {5, 2, 0},
		{4, 3, 0}, {1, 3, 4}, {5, 3, 1}, {0, 3, 5},
	}
}
