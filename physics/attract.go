package physics

import (
	"github.com/ZenXLab/cropxoninnovations-sub001/vmath"
)

// Attraction returns an impulse pulling pos toward the pointer
// Magnitude falls off linearly: force * (radius - d) / radius
// Returns zero outside radius or when d is below vmath.Epsilon (direction undefined)
func Attraction(pos, pointer vmath.Vec2, radius, force, scale float64) vmath.Vec2 {
	if radius <= 0 {
		return vmath.Vec2{}
	}
	dir, d := pointer.Sub(pos).Normalize()
	if d < vmath.Epsilon || d >= radius {
		return vmath.Vec2{}
	}
	strength := force * (radius - d) / radius
	return dir.Scale(strength * scale)
}
