package session

import (
	"testing"

	"github.com/vovakirdan/space-miner/internal/config"
)

func testDefaults() config.StatsConfig {
	return config.StatsConfig{Level: 1, Credits: 0, Lives: 3, MaxBullets: 21}
}

func TestNewUsesDefaults(t *testing.T) {
	s := New(testDefaults())

	if s.Level != 1 || s.Credits != 0 || s.Lives != 3 || s.MaxBullets != 21 {
		t.Errorf("New() = %+v, expected defaults", *s)
	}
}

func TestReset(t *testing.T) {
	s := New(testDefaults())
	s.Level = 7
	s.Credits = 12345
	s.Lives = 0
	s.MaxBullets = 41

	s.Reset()

	if s.Level != 1 || s.Credits != 0 || s.Lives != 3 || s.MaxBullets != 21 {
		t.Errorf("after Reset() = %+v, expected defaults", *s)
	}
}

func TestSpend(t *testing.T) {
	tests := []struct {
		name     string
		credits  int
		price    int
		wantOK   bool
		wantLeft int
	}{
		{"insufficient", 1999, 2000, false, 1999},
		{"exact", 2000, 2000, true, 0},
		{"surplus", 2500, 2000, true, 500},
		{"free", 0, 0, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(testDefaults())
			s.Credits = tc.credits

			if got := s.Spend(tc.price); got != tc.wantOK {
				t.Errorf("Spend(%d) = %v, expected %v", tc.price, got, tc.wantOK)
			}
			if s.Credits != tc.wantLeft {
				t.Errorf("Credits = %d, expected %d", s.Credits, tc.wantLeft)
			}
		})
	}
}

func TestLoseLife(t *testing.T) {
	s := New(testDefaults())

	if s.LoseLife() {
		t.Error("LoseLife() reported no lives left with 2 remaining")
	}
	s.LoseLife()
	if !s.LoseLife() {
		t.Error("LoseLife() should report no lives left at 0")
	}
	// Never underflows
	s.LoseLife()
	if s.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", s.Lives)
	}
}
