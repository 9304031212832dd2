// Package game implements the gameplay screen: the player's ship, its
// bullets, the asteroid field and the rules tying them together.
//
// All motion happens in world units (the configured screen size, 1400x900 by
// default). Time is passed in as seconds; timers are deadlines compared
// against the current time rather than countdowns.
package game

import "github.com/vovakirdan/space-miner/internal/core"

// Body is the physical state shared by every entity on the field.
type Body struct {
	Pos    core.Vector2
	Vel    core.Vector2
	Angle  float64 // degrees, 0 points up, grows clockwise
	Radius float64
	Alive  bool
}

// Move integrates velocity over dt and wraps the position to the opposite
// edge on each axis that left the field.
func (b *Body) Move(dt float64, bounds core.Size) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Pos.X = wrap(b.Pos.X, bounds.W)
	b.Pos.Y = wrap(b.Pos.Y, bounds.H)
}

// wrap maps v<0 to limit and v>=limit to 0.
func wrap(v, limit float64) float64 {
	switch {
	case v < 0:
		return limit
	case v >= limit:
		return 0
	default:
		return v
	}
}

// CollidesWith reports whether two circles overlap.
func (b Body) CollidesWith(other Body) bool {
	return b.Pos.DistanceTo(other.Pos) < b.Radius+other.Radius
}

// transform rotates local points by the body's angle and moves them to its
// position.
func (b Body) transform(local []core.Vector2) []core.Vector2 {
	out := make([]core.Vector2, len(local))
	for i, p := range local {
		out[i] = p.Rotate(b.Angle).Add(b.Pos)
	}
	return out
}
