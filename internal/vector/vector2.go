// Package vector implements the 2D/3D vector arithmetic and orientation
// primitives the rest of the renderer builds on: add/subtract, scale, dot,
// magnitude, normalize, projection and rotation.
package vector

import "math"

// Vector2 is a two-component real-valued vector.
type Vector2 struct {
	X, Y float64
}

// New2 constructs a Vector2.
func New2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

func (v Vector2) AddScalar(s float64) Vector2 {
	return Vector2{v.X + s, v.Y + s}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

func (v Vector2) SubScalar(s float64) Vector2 {
	return Vector2{v.X - s, v.Y - s}
}

func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vector2) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// Normalize returns v scaled to unit length. It is a no-op on the zero
// vector rather than producing NaNs.
func (v Vector2) Normalize() Vector2 {
	m := v.Magnitude()
	if m == 0 {
		return v
	}
	return v.Scale(1 / m)
}

// SetMagnitude returns v rescaled to the given magnitude, leaving the zero
// vector untouched.
func (v Vector2) SetMagnitude(m float64) Vector2 {
	return v.Normalize().Scale(m)
}

func (v Vector2) DistanceSquared(o Vector2) float64 {
	return v.Sub(o).MagnitudeSquared()
}

// Project returns the projection of v onto onto.
func (v Vector2) Project(onto Vector2) Vector2 {
	denom := onto.MagnitudeSquared()
	if denom == 0 {
		return Vector2{}
	}
	return onto.Scale(v.Dot(onto) / denom)
}

// Rotate rotates v by theta radians about the implicit z axis.
func (v Vector2) Rotate(theta float64) Vector2 {
	sin, cos := math.Sincos(theta)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perpendicular returns the vector rotated 90 degrees counter-clockwise,
// i.e. (-y, x) — used to derive a camera plane from a direction.
func (v Vector2) Perpendicular() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}
