package animation

import "github.com/chewxy/math32"

// BaseAngularSpeed is the group's spin rate in rad/s at rotation speed 1.
const BaseAngularSpeed = 0.2

const twoPi = 2 * math32.Pi

// Rotation is the tree group's yaw. The angle is kept in [0, 2π).
type Rotation struct {
	angle float32
}

// Advance turns the group by delta*BaseAngularSpeed*speed radians. A zero speed leaves the angle untouched.
func (r *Rotation) Advance(delta, speed float32) {
	if !(delta > 0) || !(speed > 0) {
		return
	}
	r.angle = wrap(r.angle + delta*BaseAngularSpeed*speed)
}

// Angle returns the current yaw in radians.
func (r *Rotation) Angle() float32 {
	return r.angle
}

func wrap(a float32) float32 {
	a = math32.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
