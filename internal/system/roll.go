// internal/system/roll.go
package system

import (
	"sort"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/worldmap"
)

// RollSystem turns currency or free-roll tokens into weighted-random units.
type RollSystem struct {
	state      *component.GameState
	lib        *defs.Library
	cfg        *config.Config
	worldMap   *worldmap.Map
	economy    *EconomySystem
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewRollSystem(state *component.GameState, lib *defs.Library, cfg *config.Config, worldMap *worldmap.Map, economy *EconomySystem, rng *utils.PRNGService, dispatcher *event.Dispatcher) *RollSystem {
	return &RollSystem{
		state:      state,
		lib:        lib,
		cfg:        cfg,
		worldMap:   worldMap,
		economy:    economy,
		rng:        rng,
		dispatcher: dispatcher,
	}
}

// Roll draws a unit for the player. It consumes a free roll preferentially,
// otherwise deducts the roll cost. Returns nil when the player cannot pay
// or no candidate unit exists; nothing is charged on failure.
func (s *RollSystem) Roll(player *component.PlayerState) *component.CharacterInstance {
	if player == nil || !player.Alive {
		return nil
	}
	if player.Inventory.FreeRolls <= 0 && player.Inventory.Gold < s.state.RollCost {
		return nil
	}

	rarity := defs.Rarity(s.rng.ChooseWeighted(s.lib.RarityWeights))
	faction := defs.Faction(s.rng.ChooseWeighted(s.lib.FactionWeights))
	def, ok := s.pickCandidate(faction, rarity)
	if !ok {
		return nil
	}

	if player.Inventory.FreeRolls > 0 {
		player.Inventory.FreeRolls--
	} else if !s.economy.SpendGold(player, s.state.RollCost) {
		return nil
	}

	pos := s.worldMap.RandomPointInZone(player.Zone.Index, s.rng.Float64)
	unit := entity.NewCharacterInstance(def, s.cfg.TierScale(string(def.Rarity)), pos)
	unit.Deployed = true
	player.Inventory.Units = append(player.Inventory.Units, unit)

	s.dispatcher.Dispatch(event.Event{Type: event.Roll, Data: event.RollPayload{
		PlayerID:  player.ID,
		Character: unit,
	}})
	return unit
}

// pickCandidate resolves the candidate pool with the fallback chain:
// rollable units of (faction, rarity), then any unit of (faction, rarity),
// then any unit of (faction, lowest rarity); the final pick is uniform.
func (s *RollSystem) pickCandidate(faction defs.Faction, rarity defs.Rarity) (defs.UnitDefinition, bool) {
	candidates := s.lib.UnitsBy(faction, rarity, true)
	if len(candidates) == 0 {
		candidates = s.lib.UnitsBy(faction, rarity, false)
	}
	if len(candidates) == 0 {
		candidates = s.lib.UnitsBy(faction, defs.RarityOrder[0], false)
	}
	if len(candidates) == 0 {
		return defs.UnitDefinition{}, false
	}

	// Map iteration order leaks into UnitsBy; sort so the uniform pick is
	// reproducible under a seeded rng.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})
	return candidates[s.rng.Intn(len(candidates))], true
}
