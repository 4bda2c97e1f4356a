package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-defense/internal/types"
)

func TestEffectiveAttackStacksActiveBuffs(t *testing.T) {
	unit := &CharacterInstance{Attack: 10}
	unit.Buffs = []Buff{
		{Factor: 1.5, ExpiresAt: 10},
		{Factor: 2.0, ExpiresAt: 5},
	}

	assert.Equal(t, 30, unit.EffectiveAttack(0))
	// The second buff has expired by t=6.
	assert.Equal(t, 15, unit.EffectiveAttack(6))
	assert.Equal(t, 10, unit.EffectiveAttack(11))
}

func TestPruneBuffs(t *testing.T) {
	unit := &CharacterInstance{Attack: 10}
	unit.Buffs = []Buff{
		{Factor: 1.5, ExpiresAt: 10},
		{Factor: 2.0, ExpiresAt: 5},
	}

	unit.PruneBuffs(6)
	require.Len(t, unit.Buffs, 1)
	assert.Equal(t, 1.5, unit.Buffs[0].Factor)
}

func TestSkillReady(t *testing.T) {
	unit := &CharacterInstance{Cooldowns: map[string]float64{"SKILL_X": 8}}
	assert.False(t, unit.SkillReady("SKILL_X", 7))
	assert.True(t, unit.SkillReady("SKILL_X", 8))
	// Unknown skills are always ready.
	assert.True(t, unit.SkillReady("SKILL_Y", 0))
}

func TestMobSpeedMultiplierStacksSlows(t *testing.T) {
	mob := &MobInstance{Speed: 40}
	mob.Debuffs = []Debuff{
		{SlowFactor: 0.5, ExpiresAt: 10},
		{SlowFactor: 0.5, ExpiresAt: 5},
	}

	assert.Equal(t, 0.25, mob.SpeedMultiplier(0))
	assert.Equal(t, 0.5, mob.SpeedMultiplier(6))
	assert.Equal(t, 1.0, mob.SpeedMultiplier(11))

	mob.PruneDebuffs(6)
	assert.Len(t, mob.Debuffs, 1)
}

func TestInventoryRemoveUnit(t *testing.T) {
	a := &CharacterInstance{ID: "a"}
	b := &CharacterInstance{ID: "b"}
	inv := Inventory{Units: []*CharacterInstance{a, b}}

	assert.Same(t, b, inv.UnitByInstanceID("b"))
	assert.Nil(t, inv.UnitByInstanceID("c"))

	assert.True(t, inv.RemoveUnit("a"))
	assert.False(t, inv.RemoveUnit("a"))
	require.Len(t, inv.Units, 1)
	assert.Same(t, b, inv.Units[0])
}

func TestGameStateLookups(t *testing.T) {
	state := NewGameState(10, 10)
	p1 := &PlayerState{ID: "p1", Zone: types.PlayerZone(0), Alive: true}
	p2 := &PlayerState{ID: "p2", Zone: types.PlayerZone(1), Alive: false}
	state.Players = []*PlayerState{p1, p2}

	assert.Same(t, p1, state.PlayerByID("p1"))
	assert.Nil(t, state.PlayerByID("p9"))
	assert.Same(t, p2, state.PlayerByZone(types.PlayerZone(1)))
	assert.Nil(t, state.PlayerByZone(types.CentralZone()))

	alive := state.AlivePlayers()
	require.Len(t, alive, 1)
	assert.Same(t, p1, alive[0])
}

func TestPhaseEnded(t *testing.T) {
	assert.True(t, PhaseVictory.Ended())
	assert.True(t, PhaseDefeat.Ended())
	assert.False(t, PhaseIdle.Ended())
	assert.False(t, PhaseWaveIdle.Ended())
	assert.False(t, PhaseWaveActive.Ended())
}

func TestWaveStatePop(t *testing.T) {
	wave := &WaveState{Queue: []SpawnEntry{
		{CreatureID: "MOB_A"},
		{CreatureID: "MOB_B"},
	}}

	entry, ok := wave.Pop()
	require.True(t, ok)
	assert.Equal(t, "MOB_A", entry.CreatureID)

	entry, ok = wave.Pop()
	require.True(t, ok)
	assert.Equal(t, "MOB_B", entry.CreatureID)

	_, ok = wave.Pop()
	assert.False(t, ok)
}
