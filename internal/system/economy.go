// internal/system/economy.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
)

// EconomySystem accrues passive income and is the single place player gold
// is mutated, so every change produces a GoldChanged event.
type EconomySystem struct {
	state      *component.GameState
	cfg        *config.Config
	dispatcher *event.Dispatcher
}

func NewEconomySystem(state *component.GameState, cfg *config.Config, dispatcher *event.Dispatcher) *EconomySystem {
	return &EconomySystem{
		state:      state,
		cfg:        cfg,
		dispatcher: dispatcher,
	}
}

// Update advances each alive player's income timer and pays out once per
// elapsed interval.
func (s *EconomySystem) Update(deltaTime float64) {
	for _, player := range s.state.Players {
		if !player.Alive {
			continue
		}
		player.IncomeTimer += deltaTime
		for player.IncomeTimer >= s.cfg.IncomeInterval {
			player.IncomeTimer -= s.cfg.IncomeInterval
			s.award(player, s.cfg.IncomeAmount, true)
		}
	}
}

// AwardGold credits a player and publishes the change.
func (s *EconomySystem) AwardGold(player *component.PlayerState, amount int) {
	s.award(player, amount, false)
}

// SpendGold debits a player if the balance covers it, reporting success.
func (s *EconomySystem) SpendGold(player *component.PlayerState, amount int) bool {
	if player.Inventory.Gold < amount {
		return false
	}
	s.award(player, -amount, false)
	return true
}

func (s *EconomySystem) award(player *component.PlayerState, amount int, passive bool) {
	player.Inventory.Gold += amount
	s.dispatcher.Dispatch(event.Event{Type: event.GoldChanged, Data: event.GoldChangedPayload{
		PlayerID:  player.ID,
		Amount:    amount,
		Total:     player.Inventory.Gold,
		IsPassive: passive,
	}})
}
