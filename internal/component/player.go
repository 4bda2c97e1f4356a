// internal/component/player.go
package component

import (
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/worldmap"
)

// Statue is a player's defended structure; its health is the player's life
// total. Health never goes below zero.
type Statue struct {
	Health    int
	MaxHealth int
	Position  worldmap.Point
}

// Inventory holds a player's owned units and currency.
type Inventory struct {
	Units     []*CharacterInstance
	Gold      int
	FreeRolls int
}

// UnitByInstanceID returns the owned unit with the given instance id, or nil.
func (inv *Inventory) UnitByInstanceID(id types.EntityID) *CharacterInstance {
	for _, u := range inv.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// RemoveUnit drops a unit from the inventory by instance id and reports
// whether it was present.
func (inv *Inventory) RemoveUnit(id types.EntityID) bool {
	for i, u := range inv.Units {
		if u.ID == id {
			inv.Units = append(inv.Units[:i], inv.Units[i+1:]...)
			return true
		}
	}
	return false
}

// PlayerState is one player's slice of the match. Owned exclusively by the
// GameState.
type PlayerState struct {
	ID     types.PlayerID
	Zone   types.Zone
	Statue Statue
	// Hero points at the inventory unit under direct control, or nil.
	// Selecting a hero does not remove it from the inventory.
	Hero      *CharacterInstance
	Inventory Inventory
	Alive     bool
	// IncomeTimer accumulates simulated time toward the next passive payout.
	IncomeTimer float64
}
