package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() differ:\nyaml=%+v\ndefault=%+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("prices:\n  bullets: 500\nfield:\n  asteroids_per_level: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Prices.Bullets != 500 {
		t.Errorf("Prices.Bullets = %d, expected 500", cfg.Prices.Bullets)
	}
	if cfg.Field.AsteroidsPerLevel != 3 {
		t.Errorf("Field.AsteroidsPerLevel = %d, expected 3", cfg.Field.AsteroidsPerLevel)
	}
	// Keys missing from the file keep their defaults
	if cfg.Prices.Lives != 10000 {
		t.Errorf("Prices.Lives = %d, expected default 10000", cfg.Prices.Lives)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() of missing file should fail")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("screen:\n  width: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero screen", func(c *Config) { c.Screen.Height = 0 }},
		{"negative price", func(c *Config) { c.Prices.Lives = -1 }},
		{"safe zone covers screen", func(c *Config) { c.Field.SafeDistance = 5000 }},
		{"no spawn attempts", func(c *Config) { c.Field.SpawnAttempts = 0 }},
		{"inverted speed range", func(c *Config) { c.Asteroid.MinSpeed = 200 }},
		{"too few vertices", func(c *Config) { c.Asteroid.Vertices = 2 }},
		{"zero lives", func(c *Config) { c.Defaults.Lives = 0 }},
		{"damping above one", func(c *Config) { c.Ship.Damping = 1.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Defaults.Lives != 5 || easy.Field.AsteroidsPerLevel != 1 {
		t.Errorf("easy preset: lives=%d per_level=%d", easy.Defaults.Lives, easy.Field.AsteroidsPerLevel)
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Defaults.Lives != 2 || hard.Field.AsteroidsPerLevel != 3 {
		t.Errorf("hard preset: lives=%d per_level=%d", hard.Defaults.Lives, hard.Field.AsteroidsPerLevel)
	}

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != Default() {
		t.Error("normal preset should keep defaults")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"hard", DifficultyHard},
		{"normal", DifficultyNormal},
		{"", ""},
		{"insane", ""},
	}
	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != Default() {
		t.Error("Marshal output should parse back to the same config")
	}
}
