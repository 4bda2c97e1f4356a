// internal/system/wave.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/worldmap"
)

// WaveSystem builds per-wave spawn queues and drains them on the wave's
// spawn interval.
type WaveSystem struct {
	state      *component.GameState
	lib        *defs.Library
	worldMap   *worldmap.Map
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewWaveSystem(state *component.GameState, lib *defs.Library, worldMap *worldmap.Map, rng *utils.PRNGService, dispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		state:      state,
		lib:        lib,
		worldMap:   worldMap,
		rng:        rng,
		dispatcher: dispatcher,
	}
}

// BuildWave flattens the wave definition into one queue entry per
// (creature, alive zone) pair and shuffles the result so zones do not all
// receive the same creature in lock-step. Returns false when no definition
// exists for the wave number.
func (s *WaveSystem) BuildWave(waveNumber int) (*component.WaveState, bool) {
	waveDef, ok := s.lib.Waves[waveNumber]
	if !ok {
		return nil, false
	}

	var queue []component.SpawnEntry
	for _, waveEntry := range waveDef.Entries {
		multiplier := waveEntry.Multiplier
		if multiplier <= 0 {
			multiplier = 1.0
		}
		for i := 0; i < waveEntry.Count; i++ {
			for _, player := range s.state.AlivePlayers() {
				queue = append(queue, component.SpawnEntry{
					CreatureID: waveEntry.CreatureID,
					Zone:       player.Zone,
					Multiplier: multiplier,
				})
			}
		}
	}
	s.rng.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	return &component.WaveState{
		Number:        waveNumber,
		Def:           waveDef,
		Queue:         queue,
		SpawnInterval: waveDef.SpawnInterval.Seconds(),
	}, true
}

// Update accumulates elapsed time and pops exactly one queue entry per
// elapsed spawn interval. The accumulator is decremented by the interval
// rather than reset so spawn cadence does not drift. An empty queue is a
// no-op.
func (s *WaveSystem) Update(deltaTime float64, wave *component.WaveState) {
	if wave == nil || len(wave.Queue) == 0 {
		return
	}
	wave.SpawnTimer += deltaTime
	for wave.SpawnTimer >= wave.SpawnInterval {
		wave.SpawnTimer -= wave.SpawnInterval
		spawnEntry, ok := wave.Pop()
		if !ok {
			break
		}
		s.Spawn(spawnEntry.CreatureID, spawnEntry.Zone, spawnEntry.Multiplier)
		if len(wave.Queue) == 0 {
			break
		}
	}
}

// Spawn materializes one creature in a zone and registers it with the game
// state. Returns nil for an unknown creature or the central zone, which only
// the boss routine may target.
func (s *WaveSystem) Spawn(creatureID string, zone types.Zone, multiplier float64) *component.MobInstance {
	if zone.IsCentral() {
		return nil
	}
	def, ok := s.lib.Creatures[creatureID]
	if !ok {
		return nil
	}

	pos := s.worldMap.LoopPosition(zone.Index, 0)
	mob := entity.NewMobInstance(def, multiplier, zone, pos)
	s.state.Mobs[mob.ID] = mob
	s.dispatcher.Dispatch(event.Event{Type: event.MobSpawn, Data: event.MobSpawnPayload{Instance: mob}})
	return mob
}

// SpawnBoss builds the central-arena boss instance. The caller registers it
// on the game state; the boss never joins the regular mob set.
func (s *WaveSystem) SpawnBoss(def defs.CreatureDefinition, multiplier float64, pos worldmap.Point) *component.MobInstance {
	return entity.NewMobInstance(def, multiplier, types.CentralZone(), pos)
}
