package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0,
		"screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)

	check(c.Field.StartAsteroids >= 0, "field.start_asteroids must not be negative")
	check(c.Field.AsteroidsPerLevel >= 0, "field.asteroids_per_level must not be negative")
	check(c.Field.SafeDistance >= 0, "field.safe_distance must not be negative")
	check(c.Field.SpawnAttempts > 0, "field.spawn_attempts must be positive")
	// The ship spawns at the center, so a safe zone reaching the corners
	// leaves no valid spawn point.
	halfDiagonal := math.Hypot(c.Screen.Width, c.Screen.Height) / 2
	check(c.Field.SafeDistance < halfDiagonal,
		"field.safe_distance %v covers the whole screen", c.Field.SafeDistance)

	check(c.Ship.Radius > 0, "ship.radius must be positive")
	check(c.Ship.Damping > 0 && c.Ship.Damping <= 1, "ship.damping must be in (0, 1]")
	check(c.Ship.BulletRadius > 0, "ship.bullet_radius must be positive")
	check(c.Ship.ShotCooldown >= 0, "ship.shot_cooldown must not be negative")
	check(c.Ship.ReloadTime >= 0, "ship.reload_time must not be negative")
	check(c.Ship.Invulnerability >= 0, "ship.invulnerability must not be negative")

	check(c.Asteroid.DefaultSize >= 1, "asteroid.default_size must be at least 1")
	check(c.Asteroid.RadiusPerSize > 0, "asteroid.radius_per_size must be positive")
	check(c.Asteroid.MinSpeed >= 0 && c.Asteroid.MinSpeed <= c.Asteroid.MaxSpeed,
		"asteroid speed range [%v, %v] is invalid", c.Asteroid.MinSpeed, c.Asteroid.MaxSpeed)
	check(c.Asteroid.Vertices >= 3, "asteroid.vertices must be at least 3")
	check(c.Asteroid.JitterMin > 0 && c.Asteroid.JitterMin <= c.Asteroid.JitterMax,
		"asteroid jitter range [%v, %v] is invalid", c.Asteroid.JitterMin, c.Asteroid.JitterMax)
	check(c.Asteroid.SplitKick >= 0, "asteroid.split_kick must not be negative")

	check(c.Prices.Bullets >= 0 && c.Prices.Lives >= 0, "prices must not be negative")

	check(c.Defaults.Level >= 1, "defaults.level must be at least 1")
	check(c.Defaults.Credits >= 0, "defaults.credits must not be negative")
	check(c.Defaults.Lives >= 1, "defaults.lives must be at least 1")
	check(c.Defaults.MaxBullets >= 1, "defaults.max_bullets must be at least 1")

	if len(errs) > 0 {
		return fmt.Errorf("config: %w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
