package core

import "math"

// Vector2 is a 2D point or direction in world coordinates (pixels, y grows down).
// All methods return new values; a Vector2 is never mutated in place.
type Vector2 struct {
	X, Y float64
}

// Vec creates a vector from its components.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Rotate returns v rotated by the given angle in degrees.
// With y pointing down, positive angles turn clockwise on screen.
func (v Vector2) Rotate(degrees float64) Vector2 {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vector2) DistanceTo(o Vector2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}
