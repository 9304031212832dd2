package game

import (
	"math"

	"github.com/vovakirdan/space-miner/internal/config"
	"github.com/vovakirdan/space-miner/internal/core"
	"github.com/vovakirdan/space-miner/internal/session"
)

// forward is the ship's nose direction at angle 0.
var forward = core.Vec(0, -1)

// Ship is the player's ship. It owns the bullets it fired.
type Ship struct {
	Body
	Thrust        float64
	RotationSpeed float64 // degrees per second
	CurBullets    int

	bullets    []*Bullet
	lastShot   float64
	lastReload float64
	reloading  bool
	now        float64

	stats *session.Stats
	cfg   config.ShipConfig
}

// NewShip creates a ship at rest with a full magazine sized by the current
// max bullets stat.
func NewShip(pos core.Vector2, stats *session.Stats, cfg config.ShipConfig) *Ship {
	return &Ship{
		Body:       Body{Pos: pos, Radius: cfg.Radius, Alive: true},
		CurBullets: stats.MaxBullets,
		lastShot:   math.Inf(-1), // never fired
		stats:      stats,
		cfg:        cfg,
	}
}

// Update turns, thrusts, damps and moves the ship, advances its bullets and
// finishes a reload whose time is up.
func (s *Ship) Update(dt, now float64, bounds core.Size) {
	s.now = now
	s.Angle += s.RotationSpeed * dt

	if s.Thrust > 0 {
		s.Vel = s.Vel.Add(forward.Scale(s.Thrust).Rotate(s.Angle).Scale(dt))
	}
	// Applied per frame, so drag depends on frame rate.
	s.Vel = s.Vel.Scale(s.cfg.Damping)

	s.Move(dt, bounds)

	for _, b := range s.bullets {
		b.Update(dt, bounds)
	}
	s.removeDeadBullets()

	if s.reloading && s.now > s.lastReload+s.cfg.ReloadTime {
		s.EndReloading()
	}
}

// CanShoot reports whether a shot is allowed right now and, if so, starts
// the cooldown.
func (s *Ship) CanShoot() bool {
	if s.now-s.lastShot >= s.cfg.ShotCooldown && s.CurBullets > 0 && !s.reloading {
		s.lastShot = s.now
		return true
	}
	return false
}

// Shoot fires a bullet from the ship's position if CanShoot allows it.
// The bullet inherits the ship's velocity.
func (s *Ship) Shoot() {
	if !s.CanShoot() {
		return
	}

	vel := forward.Scale(s.cfg.BulletSpeed).Rotate(s.Angle).Add(s.Vel)
	s.bullets = append(s.bullets, NewBullet(s.Pos, vel, s.cfg.BulletRadius))
	s.CurBullets--
}

// StartReloading begins a reload. Does nothing while already reloading.
func (s *Ship) StartReloading() {
	if s.reloading {
		return
	}
	s.lastReload = s.now
	s.reloading = true
}

// EndReloading refills the magazine to the current max bullets stat, so an
// upgrade bought mid-reload counts.
func (s *Ship) EndReloading() {
	s.CurBullets = s.stats.MaxBullets
	s.reloading = false
}

// Reloading reports whether a reload is in progress.
func (s *Ship) Reloading() bool {
	return s.reloading
}

// Bullets returns the live bullets fired by the ship.
func (s *Ship) Bullets() []*Bullet {
	return s.bullets
}

// removeDeadBullets drops bullets that left the field or hit something.
func (s *Ship) removeDeadBullets() {
	alive := s.bullets[:0]
	for _, b := range s.bullets {
		if b.Alive {
			alive = append(alive, b)
		}
	}
	clear(s.bullets[len(alive):])
	s.bullets = alive
}

// Outline returns the ship's triangle in world coordinates.
func (s *Ship) Outline() []core.Vector2 {
	r := s.Radius
	return s.transform([]core.Vector2{
		core.Vec(0, -r),
		core.Vec(-r/2, r),
		core.Vec(r/2, r),
	})
}
