package vmath

import (
	"math"
)

// Epsilon is the distance below which a direction is treated as undefined
const Epsilon = 1e-6

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

func (a Vec2) LenSq() float64 { return a.X*a.X + a.Y*a.Y }

func (a Vec2) Len() float64 { return math.Sqrt(a.LenSq()) }

// Dist returns euclidean distance between a and b
func (a Vec2) Dist(b Vec2) float64 { return a.Sub(b).Len() }

// Normalize returns the unit vector and the original length
// Returns zero vector when length is below Epsilon
func (a Vec2) Normalize() (Vec2, float64) {
	l := a.Len()
	if l < Epsilon {
		return Vec2{}, l
	}
	inv := 1.0 / l
	return Vec2{a.X * inv, a.Y * inv}, l
}

// Finite reports whether both components are neither NaN nor Inf
func (a Vec2) Finite() bool {
	return !math.IsNaN(a.X) && !math.IsNaN(a.Y) && !math.IsInf(a.X, 0) && !math.IsInf(a.Y, 0)
}

// Polar returns center + radius * (cos, sin)(angle)
func Polar(center Vec2, radius, angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{center.X + radius*c, center.Y + radius*s}
}

// SlotAngle returns the fixed angle of slot i among n evenly spaced slots
func SlotAngle(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return 2 * math.Pi * float64(i) / float64(n)
}

// WrapIndex maps any integer into [0, n)
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
