package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the z component of the 3D cross product
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

func (a Vec2) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// Normalize returns the unit vector, zero-safe
func (a Vec2) Normalize() Vec2 {
	mag := a.Len()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{a.X * inv, a.Y * inv}
}

// Perp returns the vector rotated 90 degrees counter-clockwise
func (a Vec2) Perp() Vec2 {
	return Vec2{-a.Y, a.X}
}

// Angle returns the direction angle in radians
func (a Vec2) Angle() float64 {
	return math.Atan2(a.Y, a.X)
}

// Rotate rotates the vector by angle radians
func (a Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{a.X*cos - a.Y*sin, a.X*sin + a.Y*cos}
}

// Distance returns the euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Midpoint returns the point halfway between a and b
func Midpoint(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) * 0.5, (a.Y + b.Y) * 0.5}
}

// FromAngle returns the unit vector pointing at angle radians
func FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos, sin}
}

// Reflect returns direction reflected off surface with given unit normal
// d' = d - 2 * dot(d, n) * n
func Reflect(d, n Vec2) Vec2 {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}

// ApproxEqual compares two vectors within tolerance per axis
func ApproxEqual(a, b Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
