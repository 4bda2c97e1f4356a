package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
)

func newCraftingFixture() *CraftingSystem {
	lib := &defs.Library{
		Recipes: []defs.Recipe{
			{Materials: []string{"a", "b"}, Result: "ab"},
			{Materials: []string{"a", "a"}, Result: "aa"},
			{Materials: []string{"x", "y", "y"}, ResultPool: "pool"},
		},
		Pools: map[string][]string{
			"pool": {"p1", "p2"},
		},
	}
	return NewCraftingSystem(lib, utils.NewPRNGService(1))
}

func TestFindMatchingRecipeOrderInsensitive(t *testing.T) {
	s := newCraftingFixture()

	forward, ok := s.FindMatchingRecipe([]string{"a", "b"})
	require.True(t, ok)
	backward, ok := s.FindMatchingRecipe([]string{"b", "a"})
	require.True(t, ok)
	assert.Equal(t, forward.Result, backward.Result)
}

func TestFindMatchingRecipeCountSensitive(t *testing.T) {
	s := newCraftingFixture()

	recipe, ok := s.FindMatchingRecipe([]string{"a", "a"})
	require.True(t, ok)
	assert.Equal(t, "aa", recipe.Result)

	// A duplicate multiset must not match the {a,b} recipe.
	_, ok = s.FindMatchingRecipe([]string{"b", "b"})
	assert.False(t, ok)

	// Subsets and supersets do not match either.
	_, ok = s.FindMatchingRecipe([]string{"a"})
	assert.False(t, ok)
	_, ok = s.FindMatchingRecipe([]string{"a", "b", "b"})
	assert.False(t, ok)
}

func TestExecuteCombinationFixedResult(t *testing.T) {
	s := newCraftingFixture()

	result, ok := s.ExecuteCombination([]string{"b", "a"})
	require.True(t, ok)
	assert.Equal(t, "ab", result)

	_, ok = s.ExecuteCombination([]string{"nope"})
	assert.False(t, ok)
}

func TestExecuteCombinationPoolResult(t *testing.T) {
	s := newCraftingFixture()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		result, ok := s.ExecuteCombination([]string{"y", "x", "y"})
		require.True(t, ok)
		assert.Contains(t, []string{"p1", "p2"}, result)
		seen[result] = true
	}
	// Uniform draws over 50 attempts hit both pool members.
	assert.Len(t, seen, 2)
}

func unitOf(defID string, instanceID string) *component.CharacterInstance {
	return &component.CharacterInstance{
		ID:  types.EntityID(instanceID),
		Def: defs.UnitDefinition{ID: defID},
	}
}

func TestCheckMaterialAvailability(t *testing.T) {
	s := newCraftingFixture()
	recipe := defs.Recipe{Materials: []string{"a", "a"}}

	owned := []*component.CharacterInstance{
		unitOf("a", "u1"),
		unitOf("a", "u2"),
		unitOf("b", "u3"),
	}

	donors, ok := s.CheckMaterialAvailability(recipe, owned, "")
	require.True(t, ok)
	assert.ElementsMatch(t, []types.EntityID{"u1", "u2"}, donors)
}

func TestCheckMaterialAvailabilityExcludesUnit(t *testing.T) {
	s := newCraftingFixture()
	recipe := defs.Recipe{Materials: []string{"a", "a"}}

	owned := []*component.CharacterInstance{
		unitOf("a", "u1"),
		unitOf("a", "u2"),
	}

	// Excluding one donor leaves a gap the excluded unit itself fills.
	donors, ok := s.CheckMaterialAvailability(recipe, owned, "u2")
	require.True(t, ok)
	assert.ElementsMatch(t, []types.EntityID{"u1", "u2"}, donors)

	// With only one matching unit the fallback cannot help.
	short := []*component.CharacterInstance{unitOf("a", "u1")}
	_, ok = s.CheckMaterialAvailability(recipe, short, "u1")
	assert.False(t, ok)
}
