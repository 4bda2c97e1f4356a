// internal/component/game_state.go
package component

import "go-wave-defense/internal/types"

// Phase is the top-level state of the match.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWaveIdle
	PhaseWaveActive
	PhaseVictory
	PhaseDefeat
)

// Ended reports whether the phase is terminal.
func (p Phase) Ended() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// GameState is the authoritative root aggregate. It is owned by the engine
// and mutated only through the engine's public methods.
type GameState struct {
	Phase  Phase
	Paused bool

	CurrentWave int
	TotalWaves  int

	Players []*PlayerState
	Mobs    map[types.EntityID]*MobInstance

	// CentralBoss is non-nil iff BossActive is true.
	CentralBoss *MobInstance
	BossActive  bool

	GameTime      float64 // elapsed simulated seconds
	WaveStartTime float64
	RollCost      int
}

// NewGameState creates an idle state with empty collections.
func NewGameState(totalWaves, rollCost int) *GameState {
	return &GameState{
		Phase:      PhaseIdle,
		TotalWaves: totalWaves,
		Mobs:       make(map[types.EntityID]*MobInstance),
		RollCost:   rollCost,
	}
}

// WaveInProgress reports whether a wave is currently being fought.
func (gs *GameState) WaveInProgress() bool {
	return gs.Phase == PhaseWaveActive
}

// PlayerByID returns the player with the given id, or nil.
func (gs *GameState) PlayerByID(id types.PlayerID) *PlayerState {
	for _, p := range gs.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerByZone returns the player assigned to a zone, or nil for the
// central arena.
func (gs *GameState) PlayerByZone(zone types.Zone) *PlayerState {
	if zone.IsCentral() {
		return nil
	}
	for _, p := range gs.Players {
		if p.Zone == zone {
			return p
		}
	}
	return nil
}

// AlivePlayers returns the players still defending a statue.
func (gs *GameState) AlivePlayers() []*PlayerState {
	var alive []*PlayerState
	for _, p := range gs.Players {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	return alive
}
