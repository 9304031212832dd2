// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

// Config contains every tunable of the game.
type Config struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Field    FieldConfig    `yaml:"field"`
	Ship     ShipConfig     `yaml:"ship"`
	Asteroid AsteroidConfig `yaml:"asteroid"`
	Prices   PricesConfig   `yaml:"prices"`
	Upgrades UpgradesConfig `yaml:"upgrades"`
	Defaults StatsConfig    `yaml:"defaults"`
}

// ScreenConfig defines the logical play area in pixels.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FieldConfig defines how asteroid fields are generated.
type FieldConfig struct {
	StartAsteroids    int     `yaml:"start_asteroids"`
	AsteroidsPerLevel int     `yaml:"asteroids_per_level"` // target = per_level * level
	SafeDistance      float64 `yaml:"safe_distance"`       // no spawns this close to the ship
	SpawnAttempts     int     `yaml:"spawn_attempts"`      // placement retries per asteroid
}

// ShipConfig defines the player ship's physics and weapon timings.
type ShipConfig struct {
	Radius          float64 `yaml:"radius"`
	Thrust          float64 `yaml:"thrust"`
	RotationSpeed   float64 `yaml:"rotation_speed"` // degrees per second
	Damping         float64 `yaml:"damping"`        // velocity factor applied every frame
	BulletSpeed     float64 `yaml:"bullet_speed"`
	BulletRadius    float64 `yaml:"bullet_radius"`
	ShotCooldown    float64 `yaml:"shot_cooldown"`   // seconds
	ReloadTime      float64 `yaml:"reload_time"`     // seconds
	Invulnerability float64 `yaml:"invulnerability"` // seconds after (re)spawn
}

// AsteroidConfig defines asteroid shape and motion.
type AsteroidConfig struct {
	DefaultSize   int     `yaml:"default_size"`
	RadiusPerSize float64 `yaml:"radius_per_size"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MaxRotation   float64 `yaml:"max_rotation"` // degrees per second, both directions
	Vertices      int     `yaml:"vertices"`
	JitterMin     float64 `yaml:"jitter_min"`
	JitterMax     float64 `yaml:"jitter_max"`
	SplitKick     float64 `yaml:"split_kick"` // max per-axis velocity added to fragments
}

// PricesConfig defines shop prices in credits.
type PricesConfig struct {
	Bullets int `yaml:"bullets"`
	Lives   int `yaml:"lives"`
}

// UpgradesConfig defines what each shop purchase adds.
type UpgradesConfig struct {
	Bullets int `yaml:"bullets"`
	Lives   int `yaml:"lives"`
}

// StatsConfig defines the session stats a new game starts with.
type StatsConfig struct {
	Level      int `yaml:"level"`
	Credits    int `yaml:"credits"`
	Lives      int `yaml:"lives"`
	MaxBullets int `yaml:"max_bullets"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
// Unknown and empty values yield "" which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
