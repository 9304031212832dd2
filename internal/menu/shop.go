package menu

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-miner/internal/config"
	"github.com/vovakirdan/space-miner/internal/core"
	"github.com/vovakirdan/space-miner/internal/session"
)

// Shop is the menu shown between levels. Purchases spend session credits.
type Shop struct {
	*Menu
	prices   config.PricesConfig
	upgrades config.UpgradesConfig
}

// NewShop creates the shop menu.
func NewShop(stats *session.Stats, cfg config.Config, logger *log.Logger) *Shop {
	s := &Shop{
		Menu:     newMenu("Shop", stats, logger),
		prices:   cfg.Prices,
		upgrades: cfg.Upgrades,
	}
	s.itemWidth = 500
	s.showStats = true
	s.items = []Item{
		{Label: fmt.Sprintf("Buy gun upgrade (%d cr.)", s.prices.Bullets), Action: func() { s.BuyBullets() }},
		{Label: fmt.Sprintf("Buy additional live (%d cr.)", s.prices.Lives), Action: func() { s.BuyLife() }},
		{Label: "Start next level", Action: s.NextLevel},
	}
	return s
}

// BuyBullets raises the magazine size if the player can pay for it.
// Reports whether the purchase went through.
func (s *Shop) BuyBullets() bool {
	if !s.stats.Spend(s.prices.Bullets) {
		s.log.Info("purchase rejected", "item", "bullets", "price", s.prices.Bullets, "credits", s.stats.Credits)
		return false
	}
	s.stats.MaxBullets += s.upgrades.Bullets
	s.log.Info("purchase", "item", "bullets", "max_bullets", s.stats.MaxBullets, "credits", s.stats.Credits)
	return true
}

// BuyLife adds a life if the player can pay for it.
// Reports whether the purchase went through.
func (s *Shop) BuyLife() bool {
	if !s.stats.Spend(s.prices.Lives) {
		s.log.Info("purchase rejected", "item", "life", "price", s.prices.Lives, "credits", s.stats.Credits)
		return false
	}
	s.stats.Lives += s.upgrades.Lives
	s.log.Info("purchase", "item", "life", "lives", s.stats.Lives, "credits", s.stats.Credits)
	return true
}

// NextLevel advances the level and returns to the game, which builds the new
// field on its next update.
func (s *Shop) NextLevel() {
	s.stats.Level++
	s.event = core.EventGoToGame
}
