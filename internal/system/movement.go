// internal/system/movement.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/worldmap"
)

// MovementSystem advances mob path progress around each zone's loop and
// applies statue damage on completed laps. The central boss never moves and
// is not touched here.
type MovementSystem struct {
	state      *component.GameState
	cfg        *config.Config
	worldMap   *worldmap.Map
	dispatcher *event.Dispatcher
}

func NewMovementSystem(state *component.GameState, cfg *config.Config, worldMap *worldmap.Map, dispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		state:      state,
		cfg:        cfg,
		worldMap:   worldMap,
		dispatcher: dispatcher,
	}
}

func (s *MovementSystem) Update(deltaTime float64) {
	loopLength := s.worldMap.LoopLength()
	now := s.state.GameTime

	for _, mob := range s.state.Mobs {
		mob.PruneDebuffs(now)

		speed := mob.Speed * mob.SpeedMultiplier(now)
		mob.PathProgress += speed * deltaTime / loopLength

		for mob.PathProgress >= 1 {
			mob.PathProgress -= 1
			mob.LoopCount++
			s.damageStatue(mob.Zone)
		}

		mob.Position = s.worldMap.LoopPosition(mob.Zone.Index, mob.PathProgress)
	}
}

// damageStatue applies the fixed per-loop damage to the zone's statue,
// clamping health at zero and marking the owner defeated once.
func (s *MovementSystem) damageStatue(zone types.Zone) {
	player := s.state.PlayerByZone(zone)
	if player == nil || player.Statue.Health == 0 {
		return
	}

	player.Statue.Health -= s.cfg.StatueLoopDamage
	if player.Statue.Health < 0 {
		player.Statue.Health = 0
	}
	s.dispatcher.Dispatch(event.Event{Type: event.StatueDamaged, Data: event.StatueDamagedPayload{
		Zone:        zone,
		Damage:      s.cfg.StatueLoopDamage,
		RemainingHP: player.Statue.Health,
	}})

	if player.Statue.Health == 0 && player.Alive {
		player.Alive = false
		s.dispatcher.Dispatch(event.Event{Type: event.PlayerDefeated, Data: event.PlayerDefeatedPayload{
			PlayerID: player.ID,
			Zone:     zone,
		}})
	}
}
