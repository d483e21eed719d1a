package orbit

import "github.com/chewxy/math32"

// Limits bound the orbit. Polar angles are measured from +Y (0 looks straight down).
type Limits struct {
	MinPolar, MaxPolar       float32
	MinDistance, MaxDistance float32
}

// DefaultLimits keeps the camera between 45° and 100° from vertical and 5 to 12 units from the target.
func DefaultLimits() Limits {
	return Limits{
		MinPolar:    math32.Pi / 4,
		MaxPolar:    math32.Pi / 1.8,
		MinDistance: 5,
		MaxDistance: 12,
	}
}

// Orbit is a camera circling a target. Panning is not supported; the target is fixed.
type Orbit struct {
	Target   [3]float32
	Azimuth  float32
	Polar    float32
	Distance float32
	Limits   Limits
}

// FromPosition builds an orbit around target that starts at pos, clamped to limits.
func FromPosition(pos, target [3]float32, limits Limits) Orbit {
	dx, dy, dz := pos[0]-target[0], pos[1]-target[1], pos[2]-target[2]
	dist := math32.Sqrt(dx*dx + dy*dy + dz*dz)
	o := Orbit{Target: target, Distance: dist, Limits: limits}
	if dist > 0 {
		o.Polar = math32.Acos(dy / dist)
		o.Azimuth = math32.Atan2(dx, dz)
	}
	o.clamp()
	return o
}

// Rotate turns the camera by dAzimuth around the vertical axis and tilts it by dPolar, within limits.
func (o *Orbit) Rotate(dAzimuth, dPolar float32) {
	o.Azimuth += dAzimuth
	o.Polar += dPolar
	o.clamp()
}

// Zoom scales the distance by factor (below 1 moves closer), within limits.
func (o *Orbit) Zoom(factor float32) {
	if !(factor > 0) {
		return
	}
	o.Distance *= factor
	o.clamp()
}

func (o *Orbit) clamp() {
	o.Polar = clamp(o.Polar, o.Limits.MinPolar, o.Limits.MaxPolar)
	o.Distance = clamp(o.Distance, o.Limits.MinDistance, o.Limits.MaxDistance)
	o.Azimuth = math32.Mod(o.Azimuth, 2*math32.Pi)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Position returns the camera position in world space.
func (o Orbit) Position() [3]float32 {
	sp, cp := math32.Sin(o.Polar), math32.Cos(o.Polar)
	sa, ca := math32.Sin(o.Azimuth), math32.Cos(o.Azimuth)
	return [3]float32{
		o.Target[0] + o.Distance*sp*sa,
		o.Target[1] + o.Distance*cp,
		o.Target[2] + o.Distance*sp*ca,
	}
}
