// internal/defs/library.go
package defs

import "fmt"

// Library bundles every static definition table the engine consumes. It is
// built once, validated, and treated as read-only afterwards.
type Library struct {
	Creatures map[string]CreatureDefinition
	Units     map[string]UnitDefinition
	Skills    map[string]SkillDefinition
	Waves     map[int]WaveDefinition
	Recipes   []Recipe
	// Pools maps a pool name to the unit ids a pool recipe can produce.
	Pools map[string][]string
	// BossCreatureID names the creature spawned as the central boss.
	BossCreatureID string
	RarityWeights  []WeightEntry
	FactionWeights []WeightEntry
}

// Validate checks the library for the inconsistencies the engine treats as
// fatal: a scheduler-starving spawn interval, zero-sum weight tables, and
// dangling id references.
func (l *Library) Validate() error {
	if len(l.Waves) == 0 {
		return fmt.Errorf("wave table is empty")
	}
	for number, wave := range l.Waves {
		if wave.SpawnInterval <= 0 {
			return fmt.Errorf("wave %d: spawn interval must be positive, got %v", number, wave.SpawnInterval)
		}
		if len(wave.Entries) == 0 {
			return fmt.Errorf("wave %d: no spawn entries", number)
		}
		for _, entry := range wave.Entries {
			if entry.Count <= 0 {
				return fmt.Errorf("wave %d: creature %s has count %d", number, entry.CreatureID, entry.Count)
			}
			if _, ok := l.Creatures[entry.CreatureID]; !ok {
				return fmt.Errorf("wave %d: unknown creature %q", number, entry.CreatureID)
			}
		}
	}

	if _, ok := l.Creatures[l.BossCreatureID]; !ok {
		return fmt.Errorf("boss creature %q is not defined", l.BossCreatureID)
	}

	if err := validateWeights("rarity", l.RarityWeights); err != nil {
		return err
	}
	if err := validateWeights("faction", l.FactionWeights); err != nil {
		return err
	}

	for i, recipe := range l.Recipes {
		if len(recipe.Materials) == 0 {
			return fmt.Errorf("recipe %d: no materials", i)
		}
		for _, id := range recipe.Materials {
			if _, ok := l.Units[id]; !ok {
				return fmt.Errorf("recipe %d: unknown material unit %q", i, id)
			}
		}
		if recipe.UsesPool() {
			pool, ok := l.Pools[recipe.ResultPool]
			if !ok || len(pool) == 0 {
				return fmt.Errorf("recipe %d: result pool %q is missing or empty", i, recipe.ResultPool)
			}
		} else if _, ok := l.Units[recipe.Result]; !ok {
			return fmt.Errorf("recipe %d: unknown result unit %q", i, recipe.Result)
		}
	}
	for name, pool := range l.Pools {
		for _, id := range pool {
			if _, ok := l.Units[id]; !ok {
				return fmt.Errorf("pool %q: unknown unit %q", name, id)
			}
		}
	}

	for id, unit := range l.Units {
		for _, skillID := range unit.Skills {
			if _, ok := l.Skills[skillID]; !ok {
				return fmt.Errorf("unit %q: unknown skill %q", id, skillID)
			}
		}
	}

	return nil
}

func validateWeights(name string, entries []WeightEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%s weight table is empty", name)
	}
	total := 0.0
	for _, entry := range entries {
		if entry.Weight < 0 {
			return fmt.Errorf("%s weight table: negative weight for %q", name, entry.Label)
		}
		total += entry.Weight
	}
	if total <= 0 {
		return fmt.Errorf("%s weight table sums to zero", name)
	}
	return nil
}

// UnitsBy returns the unit definitions matching faction and rarity. When
// rollableOnly is set, craft-only units are excluded.
func (l *Library) UnitsBy(faction Faction, rarity Rarity, rollableOnly bool) []UnitDefinition {
	var out []UnitDefinition
	for _, unit := range l.Units {
		if unit.Faction != faction || unit.Rarity != rarity {
			continue
		}
		if rollableOnly && !unit.Rollable {
			continue
		}
		out = append(out, unit)
	}
	return out
}
