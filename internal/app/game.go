// internal/app/game.go
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/worldmap"
)

// Game is the authoritative simulation root. One external driver calls its
// command methods and Update; no two calls may overlap (single-threaded
// host). Commands issued against invalid state are silent no-ops returning
// zero values.
type Game struct {
	cfg        *config.Config
	lib        *defs.Library
	state      *component.GameState
	worldMap   *worldmap.Map
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	log        zerolog.Logger

	waveSystem     *system.WaveSystem
	movementSystem *system.MovementSystem
	combatSystem   *system.CombatSystem
	economySystem  *system.EconomySystem
	rollSystem     *system.RollSystem
	craftingSystem *system.CraftingSystem

	wave *component.WaveState
}

// NewGame builds an idle engine for the given players. Seed 0 randomizes
// the rng stream. Malformed configuration or definitions are the only
// construction errors.
func NewGame(cfg *config.Config, lib *defs.Library, playerIDs []types.PlayerID, seed int64, logger zerolog.Logger) (*Game, error) {
	if len(playerIDs) == 0 {
		return nil, fmt.Errorf("at least one player is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}

	worldMap := worldmap.New(len(playerIDs), cfg.ZoneRingDist, cfg.ZoneRadius, cfg.LoopRadius, cfg.LoopPathSides)
	state := component.NewGameState(cfg.TotalWaves, cfg.RollCost)
	for i, id := range playerIDs {
		zone := types.PlayerZone(i)
		state.Players = append(state.Players, &component.PlayerState{
			ID:   id,
			Zone: zone,
			Statue: component.Statue{
				Health:    cfg.StatueMaxHealth,
				MaxHealth: cfg.StatueMaxHealth,
				Position:  worldMap.ZoneCenter(i),
			},
			Inventory: component.Inventory{Gold: cfg.StartingGold},
			Alive:     true,
		})
	}

	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		cfg:        cfg,
		lib:        lib,
		state:      state,
		worldMap:   worldMap,
		rng:        rng,
		dispatcher: dispatcher,
		log:        logger,
	}
	g.economySystem = system.NewEconomySystem(state, cfg, dispatcher)
	g.waveSystem = system.NewWaveSystem(state, lib, worldMap, rng, dispatcher)
	g.movementSystem = system.NewMovementSystem(state, cfg, worldMap, dispatcher)
	g.combatSystem = system.NewCombatSystem(state, lib, g.economySystem, rng, dispatcher)
	g.rollSystem = system.NewRollSystem(state, lib, cfg, worldMap, g.economySystem, rng, dispatcher)
	g.craftingSystem = system.NewCraftingSystem(lib, rng)

	listener := &gameEventListener{game: g}
	dispatcher.Subscribe(event.MobKilled, listener)
	dispatcher.Subscribe(event.BossKilled, listener)
	dispatcher.Subscribe(event.PlayerDefeated, listener)

	return g, nil
}

// State exposes the root aggregate. Callers outside the single driver
// thread must not touch it.
func (g *Game) State() *component.GameState {
	return g.state
}

// Dispatcher exposes the event bus for subscriptions.
func (g *Game) Dispatcher() *event.Dispatcher {
	return g.dispatcher
}

// WorldMap exposes the map geometry.
func (g *Game) WorldMap() *worldmap.Map {
	return g.worldMap
}

// StartGame moves the match from idle to running and grants the initial
// free-roll allotment.
func (g *Game) StartGame() bool {
	if g.state.Phase != component.PhaseIdle {
		return false
	}
	g.state.Phase = component.PhaseWaveIdle
	for _, player := range g.state.Players {
		player.Inventory.FreeRolls += g.cfg.InitialFreeRolls
	}
	g.log.Info().Int("players", len(g.state.Players)).Msg("game started")
	g.dispatcher.Dispatch(event.Event{Type: event.GameStart})
	return true
}

// PauseGame freezes tick processing. Command methods remain callable.
func (g *Game) PauseGame() {
	if g.state.Phase == component.PhaseIdle || g.state.Phase.Ended() || g.state.Paused {
		return
	}
	g.state.Paused = true
	g.dispatcher.Dispatch(event.Event{Type: event.GamePause})
}

// ResumeGame clears the pause flag.
func (g *Game) ResumeGame() {
	if !g.state.Paused {
		return
	}
	g.state.Paused = false
	g.dispatcher.Dispatch(event.Event{Type: event.GameResume})
}

// EndGame finishes the match. Terminal and idempotent: a finished game
// ignores further commands and ticks.
func (g *Game) EndGame(victory bool) {
	if g.state.Phase.Ended() {
		return
	}
	if victory {
		g.state.Phase = component.PhaseVictory
	} else {
		g.state.Phase = component.PhaseDefeat
	}
	g.wave = nil
	g.log.Info().Bool("victory", victory).Int("wave", g.state.CurrentWave).Msg("game ended")
	g.dispatcher.Dispatch(event.Event{Type: event.GameEnd, Data: event.GameEndPayload{Victory: victory}})
}

// StartNextWave advances to the next wave. Fails while a wave is active,
// before StartGame, or after the match ended. Running past the last defined
// wave ends the match in victory.
func (g *Game) StartNextWave() bool {
	if g.state.Phase != component.PhaseWaveIdle {
		return false
	}

	next := g.state.CurrentWave + 1
	wave, ok := g.waveSystem.BuildWave(next)
	if !ok {
		g.EndGame(true)
		return false
	}

	g.state.CurrentWave = next
	g.state.Phase = component.PhaseWaveActive
	g.state.WaveStartTime = g.state.GameTime
	g.wave = wave

	for _, player := range g.state.AlivePlayers() {
		player.Inventory.FreeRolls += g.cfg.FreeRollsPerWave
	}

	isBossWave := next%g.cfg.BossWaveInterval == 0
	if isBossWave {
		g.spawnBoss(next)
	}

	g.log.Info().Int("wave", next).Bool("boss", isBossWave).Int("queued", len(wave.Queue)).Msg("wave started")
	g.dispatcher.Dispatch(event.Event{Type: event.WaveStart, Data: event.WaveStartPayload{
		Wave:       wave,
		WaveNumber: next,
		IsBossWave: isBossWave,
	}})
	return true
}

// spawnBoss places the shared boss in the central arena. Boss stats scale
// with the wave number on top of the creature's own boss factor.
func (g *Game) spawnBoss(waveNumber int) {
	def := g.lib.Creatures[g.lib.BossCreatureID]
	multiplier := (1 + float64(waveNumber)/10) * def.BossFactor

	boss := g.waveSystem.SpawnBoss(def, multiplier, g.worldMap.ArenaCenter())
	g.state.CentralBoss = boss
	g.state.BossActive = true
	g.dispatcher.Dispatch(event.Event{Type: event.BossSpawn, Data: event.BossSpawnPayload{Instance: boss}})
}

// SpawnMob materializes a single creature outside the normal wave queue.
func (g *Game) SpawnMob(creatureID string, zone types.Zone, multiplier float64) *component.MobInstance {
	if g.state.Phase == component.PhaseIdle || g.state.Phase.Ended() {
		return nil
	}
	return g.waveSystem.Spawn(creatureID, zone, multiplier)
}

// Roll draws a weighted-random unit for the player.
func (g *Game) Roll(playerID types.PlayerID) *component.CharacterInstance {
	if g.state.Phase == component.PhaseIdle || g.state.Phase.Ended() {
		return nil
	}
	return g.rollSystem.Roll(g.state.PlayerByID(playerID))
}

// DealDamage applies raw damage with flat mitigation to a mob or the boss.
func (g *Game) DealDamage(attackerID, targetID types.EntityID, rawDamage int) (int, bool) {
	if g.state.Phase.Ended() {
		return 0, false
	}
	return g.combatSystem.DealDamage(attackerID, targetID, rawDamage)
}

// Update advances the simulation by deltaTime seconds. The driver is
// responsible for clamping large deltas. No-op while idle, paused, or
// ended.
func (g *Game) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	if g.state.Paused || g.state.Phase == component.PhaseIdle || g.state.Phase.Ended() {
		return
	}

	g.state.GameTime += deltaTime

	if g.state.Phase == component.PhaseWaveActive {
		g.waveSystem.Update(deltaTime, g.wave)
	}
	g.movementSystem.Update(deltaTime)
	g.combatSystem.Update(deltaTime)
	g.economySystem.Update(deltaTime)
}

// maybeCompleteWave finishes the active wave once the queue is drained and
// no mob or boss remains. Safe to call repeatedly; only the first call for
// a wave fires.
func (g *Game) maybeCompleteWave() {
	if g.state.Phase != component.PhaseWaveActive || g.wave == nil {
		return
	}
	if len(g.wave.Queue) > 0 || len(g.state.Mobs) > 0 || g.state.BossActive {
		return
	}

	completed := g.wave.Number
	bonus := g.wave.Def.BonusGold
	g.wave = nil

	for _, player := range g.state.AlivePlayers() {
		if bonus > 0 {
			g.economySystem.AwardGold(player, bonus)
		}
	}
	g.dispatcher.Dispatch(event.Event{Type: event.WaveComplete, Data: event.WaveCompletePayload{WaveNumber: completed}})

	if completed >= g.state.TotalWaves {
		g.EndGame(true)
		return
	}
	g.state.Phase = component.PhaseWaveIdle
}

// checkDefeat ends the match once every player has lost their statue.
func (g *Game) checkDefeat() {
	if len(g.state.AlivePlayers()) == 0 {
		g.EndGame(false)
	}
}

// gameEventListener routes simulation events back into state-machine
// transitions.
type gameEventListener struct {
	game *Game
}

func (l *gameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.MobKilled, event.BossKilled:
		l.game.maybeCompleteWave()
	case event.PlayerDefeated:
		l.game.checkDefeat()
	}
}
