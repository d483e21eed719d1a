package animation

import "github.com/chewxy/math32"

// Float makes the decorated tree hover: a slow bob on Y and a small wobble on all three axes.
type Float struct {
	Speed             float32
	RotationIntensity float32
	FloatIntensity    float32
}

// Pose is the float offset applied inside the rotating group.
type Pose struct {
	OffsetY float32
	Tilt    [3]float32
}

// DefaultFloat is the hover used for the tree: speed 2, rotation intensity 0.2, float intensity 0.5.
func DefaultFloat() Float {
	return Float{Speed: 2, RotationIntensity: 0.2, FloatIntensity: 0.5}
}

// Sample returns the pose at elapsed seconds. It has no state, so any frame can be recomputed.
func (f Float) Sample(elapsed float64) Pose {
	t := float32(elapsed) / 4 * f.Speed
	s, c := math32.Sin(t), math32.Cos(t)
	return Pose{
		OffsetY: s / 10 * f.FloatIntensity,
		Tilt: [3]float32{
			c / 8 * f.RotationIntensity,
			s / 8 * f.RotationIntensity,
			s / 20 * f.RotationIntensity,
		},
	}
}
