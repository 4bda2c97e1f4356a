package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/worldmap"
)

func newWaveFixture(t *testing.T, alivePlayers int) (*WaveSystem, *component.GameState) {
	t.Helper()
	state := component.NewGameState(10, 10)
	for i := 0; i < alivePlayers; i++ {
		state.Players = append(state.Players, &component.PlayerState{
			ID:    types.PlayerID(string(rune('A' + i))),
			Zone:  types.PlayerZone(i),
			Alive: true,
		})
	}
	lib := &defs.Library{
		Creatures: map[string]defs.CreatureDefinition{
			"MOB_WOLF": {ID: "MOB_WOLF", Health: 10, Speed: 50, GoldReward: 2},
			"MOB_BEAR": {ID: "MOB_BEAR", Health: 30, Speed: 30, GoldReward: 5},
		},
		Waves: map[int]defs.WaveDefinition{
			1: {
				Number:        1,
				SpawnInterval: 500 * time.Millisecond,
				Entries: []defs.WaveEntry{
					{CreatureID: "MOB_WOLF", Count: 3, Multiplier: 1.0},
					{CreatureID: "MOB_BEAR", Count: 2, Multiplier: 1.5},
				},
			},
		},
	}
	worldMap := worldmap.New(4, 500, 180, 120, 12)
	waveSystem := NewWaveSystem(state, lib, worldMap, utils.NewPRNGService(7), event.NewDispatcher())
	return waveSystem, state
}

func TestBuildWaveQueueConservation(t *testing.T) {
	waveSystem, _ := newWaveFixture(t, 3)

	wave, ok := waveSystem.BuildWave(1)
	require.True(t, ok)

	// (3 wolves + 2 bears) x 3 alive zones.
	assert.Len(t, wave.Queue, 15)

	perZone := map[types.Zone]map[string]int{}
	for _, spawnEntry := range wave.Queue {
		if perZone[spawnEntry.Zone] == nil {
			perZone[spawnEntry.Zone] = map[string]int{}
		}
		perZone[spawnEntry.Zone][spawnEntry.CreatureID]++
	}
	require.Len(t, perZone, 3)
	for zone, byCreature := range perZone {
		assert.Equal(t, 3, byCreature["MOB_WOLF"], "zone %v", zone)
		assert.Equal(t, 2, byCreature["MOB_BEAR"], "zone %v", zone)
	}
}

func TestBuildWaveSkipsDeadZones(t *testing.T) {
	waveSystem, state := newWaveFixture(t, 3)
	state.Players[1].Alive = false

	wave, ok := waveSystem.BuildWave(1)
	require.True(t, ok)
	assert.Len(t, wave.Queue, 10)
	for _, spawnEntry := range wave.Queue {
		assert.NotEqual(t, state.Players[1].Zone, spawnEntry.Zone)
	}
}

func TestBuildWaveUnknownNumber(t *testing.T) {
	waveSystem, _ := newWaveFixture(t, 2)
	wave, ok := waveSystem.BuildWave(99)
	assert.False(t, ok)
	assert.Nil(t, wave)
}

func TestUpdateDrainsOneSpawnPerInterval(t *testing.T) {
	waveSystem, state := newWaveFixture(t, 1)
	wave, ok := waveSystem.BuildWave(1)
	require.True(t, ok)
	require.Len(t, wave.Queue, 5)

	// Below the interval: nothing spawns.
	waveSystem.Update(0.4, wave)
	assert.Empty(t, state.Mobs)

	// Crossing the interval fires exactly one spawn, keeping the remainder.
	waveSystem.Update(0.2, wave)
	assert.Len(t, state.Mobs, 1)
	assert.Len(t, wave.Queue, 4)
	assert.InDelta(t, 0.1, wave.SpawnTimer, 1e-9)

	// A large tick fires one spawn per whole interval elapsed.
	waveSystem.Update(1.0, wave)
	assert.Len(t, state.Mobs, 3)
	assert.Len(t, wave.Queue, 2)
}

func TestUpdateEmptyQueueIsNoop(t *testing.T) {
	waveSystem, state := newWaveFixture(t, 1)
	wave := &component.WaveState{Number: 1, SpawnInterval: 0.5}

	waveSystem.Update(10, wave)
	assert.Empty(t, state.Mobs)
	assert.Zero(t, wave.SpawnTimer)

	waveSystem.Update(10, nil)
	assert.Empty(t, state.Mobs)
}

func TestSpawnScalesByMultiplier(t *testing.T) {
	waveSystem, state := newWaveFixture(t, 1)

	mob := waveSystem.Spawn("MOB_BEAR", types.PlayerZone(0), 1.5)
	require.NotNil(t, mob)
	assert.Equal(t, 45, mob.Health)
	assert.Equal(t, 45, mob.MaxHealth)
	assert.Contains(t, state.Mobs, mob.ID)
}

func TestSpawnRejectsUnknownCreatureAndCentralZone(t *testing.T) {
	waveSystem, state := newWaveFixture(t, 1)

	assert.Nil(t, waveSystem.Spawn("MOB_DRAGON", types.PlayerZone(0), 1.0))
	assert.Nil(t, waveSystem.Spawn("MOB_WOLF", types.CentralZone(), 1.0))
	assert.Empty(t, state.Mobs)
}

func TestSpawnBossStaysOutOfMobSet(t *testing.T) {
	waveSystem, state := newWaveFixture(t, 1)
	def := defs.CreatureDefinition{ID: "MOB_BOSS", Health: 100, BossFactor: 2.5}

	boss := waveSystem.SpawnBoss(def, 2.5, worldmap.Point{})
	require.NotNil(t, boss)
	assert.True(t, boss.IsBoss())
	assert.Equal(t, 250, boss.Health)
	assert.Empty(t, state.Mobs)
}
