package game

import (
	"math/rand"

	"github.com/vovakirdan/space-miner/internal/config"
	"github.com/vovakirdan/space-miner/internal/core"
)

// Asteroid is a rotating rock with a fixed jagged outline.
type Asteroid struct {
	Body
	Size          int
	RotationSpeed float64 // degrees per second

	vertices []core.Vector2 // outline relative to the center, fixed at creation
	cfg      config.AsteroidConfig
}

// NewAsteroid creates an asteroid of the given size with random spin,
// heading, speed and outline.
func NewAsteroid(rng *rand.Rand, pos core.Vector2, size int, cfg config.AsteroidConfig) *Asteroid {
	radius := float64(size) * cfg.RadiusPerSize

	speed := uniform(rng, cfg.MinSpeed, cfg.MaxSpeed)
	heading := uniform(rng, 0, 360)

	a := &Asteroid{
		Body: Body{
			Pos:    pos,
			Vel:    core.Vec(speed, 0).Rotate(heading),
			Radius: radius,
			Alive:  true,
		},
		Size:          size,
		RotationSpeed: uniform(rng, -cfg.MaxRotation, cfg.MaxRotation),
		cfg:           cfg,
	}

	n := cfg.Vertices
	a.vertices = make([]core.Vector2, n)
	for i := range n {
		r := radius * uniform(rng, cfg.JitterMin, cfg.JitterMax)
		a.vertices[i] = core.Vec(r, 0).Rotate(360 / float64(n) * float64(i))
	}

	return a
}

// Update moves the asteroid with wrapping and advances its spin.
func (a *Asteroid) Update(dt float64, bounds core.Size) {
	a.Move(dt, bounds)
	a.Angle += a.RotationSpeed * dt
}

// Split breaks the asteroid into two fragments one size smaller at the same
// position. Each fragment keeps the parent's velocity plus a random kick.
// Size 1 asteroids leave nothing behind.
func (a *Asteroid) Split(rng *rand.Rand) []*Asteroid {
	if a.Size <= 1 {
		return nil
	}

	kick := a.cfg.SplitKick
	fragments := make([]*Asteroid, 0, 2)
	for range 2 {
		f := NewAsteroid(rng, a.Pos, a.Size-1, a.cfg)
		f.Vel = a.Vel.Add(core.Vec(uniform(rng, -kick, kick), uniform(rng, -kick, kick)))
		fragments = append(fragments, f)
	}
	return fragments
}

// Credits returns the reward for destroying the asteroid.
// Smaller rocks are worth more.
func (a *Asteroid) Credits() int {
	return (4 - a.Size) * 100
}

// Outline returns the polygon in world coordinates.
func (a *Asteroid) Outline() []core.Vector2 {
	return a.transform(a.vertices)
}

// uniform returns a random float in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
