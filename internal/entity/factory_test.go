package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/worldmap"
)

func TestNewIDIsUnique(t *testing.T) {
	seen := map[types.EntityID]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestNewMobInstanceScalesStats(t *testing.T) {
	def := defs.CreatureDefinition{ID: "MOB_T", Health: 100, Attack: 10, Defense: 4, Speed: 30, GoldReward: 5}

	mob := NewMobInstance(def, 1.5, types.PlayerZone(2), worldmap.Point{X: 1, Y: 2})
	assert.Equal(t, 150, mob.Health)
	assert.Equal(t, 150, mob.MaxHealth)
	assert.Equal(t, 15, mob.Attack)
	assert.Equal(t, 6, mob.Defense)
	assert.Equal(t, 45.0, mob.Speed)
	assert.Equal(t, types.PlayerZone(2), mob.Zone)
	assert.Equal(t, worldmap.Point{X: 1, Y: 2}, mob.Position)
	assert.NotEmpty(t, mob.ID)
	// The definition itself is untouched.
	assert.Equal(t, 100, def.Health)
}

func TestNewMobInstanceClampsMultiplier(t *testing.T) {
	def := defs.CreatureDefinition{ID: "MOB_T", Health: 100, Speed: 30}
	mob := NewMobInstance(def, 0, types.PlayerZone(0), worldmap.Point{})
	assert.Equal(t, 100, mob.Health)
	assert.Equal(t, 30.0, mob.Speed)
}

func TestNewMobInstanceRoundsScaledStats(t *testing.T) {
	def := defs.CreatureDefinition{ID: "MOB_T", Health: 15, Attack: 5}
	mob := NewMobInstance(def, 1.1, types.PlayerZone(0), worldmap.Point{})
	// 16.5 rounds up, 5.5 rounds up.
	assert.Equal(t, 17, mob.Health)
	assert.Equal(t, 6, mob.Attack)
}

func TestNewCharacterInstanceScalesByTier(t *testing.T) {
	def := defs.UnitDefinition{ID: "UNIT_T", Health: 100, Attack: 20, Defense: 10, Speed: 50}

	unit := NewCharacterInstance(def, 1.35, worldmap.Point{X: 3})
	assert.Equal(t, 135, unit.Health)
	assert.Equal(t, 27, unit.Attack)
	assert.Equal(t, 14, unit.Defense)
	// Speed is not tier-scaled.
	assert.Equal(t, 50.0, unit.Speed)
	assert.False(t, unit.Deployed)
	assert.NotNil(t, unit.Cooldowns)

	// Non-positive scale falls back to base stats.
	base := NewCharacterInstance(def, 0, worldmap.Point{})
	assert.Equal(t, 100, base.Health)
}
