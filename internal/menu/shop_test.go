package menu

import (
	"testing"

	"github.com/vovakirdan/space-miner/internal/config"
	"github.com/vovakirdan/space-miner/internal/core"
)

func TestShopLabels(t *testing.T) {
	s := NewShop(testStats(), config.Default(), nil)

	want := []string{
		"Buy gun upgrade (2000 cr.)",
		"Buy additional live (10000 cr.)",
		"Start next level",
	}
	for i, w := range want {
		if got := s.Items()[i].Label; got != w {
			t.Errorf("item %d = %q, expected %q", i, got, w)
		}
	}
}

func TestShopBuyBullets(t *testing.T) {
	tests := []struct {
		name        string
		credits     int
		wantOK      bool
		wantCredits int
		wantBullets int
	}{
		{"insufficient", 1999, false, 1999, 21},
		{"exact", 2000, true, 0, 26},
		{"surplus", 5000, true, 3000, 26},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stats := testStats()
			stats.Credits = tc.credits
			s := NewShop(stats, config.Default(), nil)

			if got := s.BuyBullets(); got != tc.wantOK {
				t.Errorf("BuyBullets() = %v, expected %v", got, tc.wantOK)
			}
			if stats.Credits != tc.wantCredits {
				t.Errorf("Credits = %d, expected %d", stats.Credits, tc.wantCredits)
			}
			if stats.MaxBullets != tc.wantBullets {
				t.Errorf("MaxBullets = %d, expected %d", stats.MaxBullets, tc.wantBullets)
			}
		})
	}
}

func TestShopBuyLife(t *testing.T) {
	tests := []struct {
		name        string
		credits     int
		wantOK      bool
		wantCredits int
		wantLives   int
	}{
		{"insufficient", 9999, false, 9999, 3},
		{"exact", 10000, true, 0, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stats := testStats()
			stats.Credits = tc.credits
			s := NewShop(stats, config.Default(), nil)

			if got := s.BuyLife(); got != tc.wantOK {
				t.Errorf("BuyLife() = %v, expected %v", got, tc.wantOK)
			}
			if stats.Credits != tc.wantCredits {
				t.Errorf("Credits = %d, expected %d", stats.Credits, tc.wantCredits)
			}
			if stats.Lives != tc.wantLives {
				t.Errorf("Lives = %d, expected %d", stats.Lives, tc.wantLives)
			}
		})
	}
}

func TestShopPurchaseThroughMenu(t *testing.T) {
	stats := testStats()
	stats.Credits = 2500
	s := NewShop(stats, config.Default(), nil)

	s.HandleInput(press(core.KeyEnter))

	if stats.MaxBullets != 26 || stats.Credits != 500 {
		t.Errorf("stats = %+v, expected 26 bullets and 500 credits", *stats)
	}
	if ev := s.TakeEvent(); ev != core.EventNone {
		t.Errorf("TakeEvent() = %v, expected none after a purchase", ev)
	}
}

func TestShopNextLevel(t *testing.T) {
	stats := testStats()
	s := NewShop(stats, config.Default(), nil)
	s.SelectPrev() // wraps to "Start next level"

	s.HandleInput(press(core.KeyEnter))

	if stats.Level != 2 {
		t.Errorf("Level = %d, expected 2", stats.Level)
	}
	if ev := s.TakeEvent(); ev != core.EventGoToGame {
		t.Errorf("TakeEvent() = %v, expected game", ev)
	}
}
