// Package session holds the player's stats for the current run.
// A single *Stats is created at startup and handed to every screen that reads
// or changes it; nothing in the program keeps it in a global.
package session

import "github.com/vovakirdan/space-miner/internal/config"

// Stats is the player's progress carried across screens until a game over.
type Stats struct {
	Level      int
	Credits    int
	Lives      int
	MaxBullets int

	defaults config.StatsConfig
}

// New creates session stats initialized to the configured defaults.
func New(defaults config.StatsConfig) *Stats {
	s := &Stats{defaults: defaults}
	s.Reset()
	return s
}

// Reset restores the default stats. Called on game over.
func (s *Stats) Reset() {
	s.Level = s.defaults.Level
	s.Credits = s.defaults.Credits
	s.Lives = s.defaults.Lives
	s.MaxBullets = s.defaults.MaxBullets
}

// AddCredits awards credits.
func (s *Stats) AddCredits(n int) {
	s.Credits += n
}

// CanAfford reports whether a purchase of the given price leaves a
// non-negative balance.
func (s *Stats) CanAfford(price int) bool {
	return s.Credits-price >= 0
}

// Spend deducts price if affordable and reports whether it did.
func (s *Stats) Spend(price int) bool {
	if !s.CanAfford(price) {
		return false
	}
	s.Credits -= price
	return true
}

// LoseLife removes one life, never going below zero.
// Returns true when no lives are left.
func (s *Stats) LoseLife() bool {
	if s.Lives > 0 {
		s.Lives--
	}
	return s.Lives < 1
}
