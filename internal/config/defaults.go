package config

import (
	_ "embed"
)

//go:embed defaults/spaceminer.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/spaceminer.yaml and is used when the embedded file
// cannot be parsed.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  1400,
			Height: 900,
		},
		Field: FieldConfig{
			StartAsteroids:    2,
			AsteroidsPerLevel: 2,
			SafeDistance:      100,
			SpawnAttempts:     1000,
		},
		Ship: ShipConfig{
			Radius:          10,
			Thrust:          200,
			RotationSpeed:   180,
			Damping:         0.99,
			BulletSpeed:     300,
			BulletRadius:    2,
			ShotCooldown:    0.1,
			ReloadTime:      3.0,
			Invulnerability: 2.0,
		},
		Asteroid: AsteroidConfig{
			DefaultSize:   3,
			RadiusPerSize: 10,
			MinSpeed:      50,
			MaxSpeed:      150,
			MaxRotation:   180,
			Vertices:      8,
			JitterMin:     0.8,
			JitterMax:     1.2,
			SplitKick:     100,
		},
		Prices: PricesConfig{
			Bullets: 2000,
			Lives:   10000,
		},
		Upgrades: UpgradesConfig{
			Bullets: 5,
			Lives:   1,
		},
		Defaults: StatsConfig{
			Level:      1,
			Credits:    0,
			Lives:      3,
			MaxBullets: 21,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
