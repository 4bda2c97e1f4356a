// internal/system/crafting.go
package system

import (
	"sort"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
)

// CraftingSystem resolves combination recipes against owned-unit multisets.
// It is pure with respect to inventory: callers remove consumed materials
// and insert results themselves.
type CraftingSystem struct {
	lib *defs.Library
	rng *utils.PRNGService
}

func NewCraftingSystem(lib *defs.Library, rng *utils.PRNGService) *CraftingSystem {
	return &CraftingSystem{lib: lib, rng: rng}
}

// FindMatchingRecipe returns the recipe whose material multiset equals the
// given unit ids: order-insensitive, duplicate-sensitive.
func (s *CraftingSystem) FindMatchingRecipe(materialIDs []string) (defs.Recipe, bool) {
	sorted := make([]string, len(materialIDs))
	copy(sorted, materialIDs)
	sort.Strings(sorted)

	for _, recipe := range s.lib.Recipes {
		if len(recipe.Materials) != len(sorted) {
			continue
		}
		recipeInputs := make([]string, len(recipe.Materials))
		copy(recipeInputs, recipe.Materials)
		sort.Strings(recipeInputs)

		if equalSlices(sorted, recipeInputs) {
			return recipe, true
		}
	}
	return defs.Recipe{}, false
}

// ExecuteCombination resolves the result unit id for a material multiset.
// Pool results are drawn uniformly at random; fixed results pass through.
func (s *CraftingSystem) ExecuteCombination(materialIDs []string) (string, bool) {
	recipe, ok := s.FindMatchingRecipe(materialIDs)
	if !ok {
		return "", false
	}
	if recipe.UsesPool() {
		pool := s.lib.Pools[recipe.ResultPool]
		if len(pool) == 0 {
			return "", false
		}
		return pool[s.rng.Intn(len(pool))], true
	}
	return recipe.Result, true
}

// CheckMaterialAvailability determines whether the recipe can be satisfied
// from the owned units, excluding one unit (typically the currently selected
// one) from counting as a donor. When the count falls short but the excluded
// unit itself matches the missing material, it is added back as a fallback
// donor. Returns the concrete donor instances on success.
func (s *CraftingSystem) CheckMaterialAvailability(recipe defs.Recipe, owned []*component.CharacterInstance, excludedUnitID types.EntityID) ([]types.EntityID, bool) {
	required := make(map[string]int)
	for _, id := range recipe.Materials {
		required[id]++
	}

	var donors []types.EntityID
	var excluded *component.CharacterInstance
	byDef := make(map[string][]*component.CharacterInstance)
	for _, unit := range owned {
		if unit.ID == excludedUnitID {
			excluded = unit
			continue
		}
		byDef[unit.Def.ID] = append(byDef[unit.Def.ID], unit)
	}

	for defID, count := range required {
		available := byDef[defID]
		if len(available) < count {
			// Fall back on the excluded unit when it fills the gap.
			if excluded != nil && excluded.Def.ID == defID && len(available) == count-1 {
				available = append(available, excluded)
				excluded = nil
			} else {
				return nil, false
			}
		}
		for i := 0; i < count; i++ {
			donors = append(donors, available[i].ID)
		}
	}
	return donors, true
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
