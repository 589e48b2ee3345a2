package physics

import (
	"math"

	"github.com/ZenXLab/cropxoninnovations-sub001/vmath"
)

// Body is a point mass integrated in world units per reference frame
type Body struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// SpringForce returns the velocity delta pulling pos toward target
// k: spring constant per frame, scale: elapsed reference frames
func SpringForce(pos, target vmath.Vec2, k, scale float64) vmath.Vec2 {
	return target.Sub(pos).Scale(k * scale)
}

// Damp applies exponential decay; damping is the per-frame multiplier in (0,1)
// Fractional frames use damping^scale so split ticks decay the same as whole ones
func Damp(vel vmath.Vec2, damping, scale float64) vmath.Vec2 {
	if scale == 1 {
		return vel.Scale(damping)
	}
	return vel.Scale(math.Pow(damping, scale))
}

// Advance moves the body by its velocity over scale frames
func Advance(b *Body, scale float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(scale))
}

// SpringStep performs one semi-implicit spring-damper step toward target:
// v += k*(target-p); v *= damping; p += v
func SpringStep(b *Body, target vmath.Vec2, k, damping, scale float64) {
	b.Vel = b.Vel.Add(SpringForce(b.Pos, target, k, scale))
	b.Vel = Damp(b.Vel, damping, scale)
	Advance(b, scale)
}

// ClampSpeed limits velocity magnitude while keeping direction
func ClampSpeed(vel vmath.Vec2, max float64) vmath.Vec2 {
	dir, l := vel.Normalize()
	if l <= max {
		return vel
	}
	return dir.Scale(max)
}
