package game

import "github.com/vovakirdan/space-miner/internal/core"

// Bullet is a projectile fired by the ship. It does not wrap: leaving the
// field kills it.
type Bullet struct {
	Body
}

// NewBullet creates a live bullet.
func NewBullet(pos, vel core.Vector2, radius float64) *Bullet {
	return &Bullet{Body: Body{Pos: pos, Vel: vel, Radius: radius, Alive: true}}
}

// Update moves the bullet and kills it outside [0,W]x[0,H].
func (b *Bullet) Update(dt float64, bounds core.Size) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Pos.X < 0 || b.Pos.X > bounds.W {
		b.Alive = false
	}
	if b.Pos.Y < 0 || b.Pos.Y > bounds.H {
		b.Alive = false
	}
}
