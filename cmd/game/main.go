// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/worldmap"
)

// maxDelta bounds the simulated step so a stalled host cannot make the
// engine skip multiple discrete events in one tick. Clamping is the
// driver's job, not the engine's.
const maxDelta = 0.25

func main() {
	configDir := flag.String("config", ".", "directory containing game.cfg.json")
	defsPath := flag.String("defs", "", "definitions JSON file (built-in set when empty)")
	players := flag.Int("players", 2, "number of simulated players")
	seed := flag.Int64("seed", 0, "rng seed, 0 for time-based")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	cfg, err := config.Load(*configDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	lib := defs.DefaultLibrary()
	if *defsPath != "" {
		lib, err = defs.LoadLibrary(*defsPath)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to load definitions")
		}
		logger.Info().Str("path", *defsPath).Int("creatures", len(lib.Creatures)).Int("units", len(lib.Units)).Msg("definitions loaded")
	}

	playerIDs := make([]types.PlayerID, *players)
	for i := range playerIDs {
		playerIDs[i] = types.PlayerID(string(rune('A' + i)))
	}

	game, err := app.NewGame(cfg, lib, playerIDs, *seed, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build game")
	}

	subscribeEventLog(game, logger)
	runAutopilot(game, logger)
}

// subscribeEventLog mirrors the interesting simulation events onto the log.
func subscribeEventLog(game *app.Game, logger zerolog.Logger) {
	listener := event.ListenerFunc(func(e event.Event) {
		switch payload := e.Data.(type) {
		case event.WaveStartPayload:
			logger.Info().Int("wave", payload.WaveNumber).Bool("boss", payload.IsBossWave).Msg("wave start")
		case event.WaveCompletePayload:
			logger.Info().Int("wave", payload.WaveNumber).Msg("wave complete")
		case event.StatueDamagedPayload:
			logger.Warn().Int("zone", payload.Zone.Index).Int("hp", payload.RemainingHP).Msg("statue damaged")
		case event.PlayerDefeatedPayload:
			logger.Warn().Str("player", string(payload.PlayerID)).Msg("player defeated")
		case event.BossKilledPayload:
			logger.Info().Str("boss", payload.Boss.Def.Name).Msg("boss down")
		case event.GameEndPayload:
			logger.Info().Bool("victory", payload.Victory).Msg("game end")
		}
	})
	for _, eventType := range []event.EventType{
		event.WaveStart, event.WaveComplete, event.StatueDamaged,
		event.PlayerDefeated, event.BossKilled, event.GameEnd,
	} {
		game.Dispatcher().Subscribe(eventType, listener)
	}
}

// runAutopilot plays an unattended session: start, spend the free rolls,
// pick heroes, chase mobs, and advance waves until the match ends.
func runAutopilot(game *app.Game, logger zerolog.Logger) {
	state := game.State()
	game.StartGame()
	for _, player := range state.Players {
		for game.Roll(player.ID) != nil {
		}
		if len(player.Inventory.Units) > 0 {
			game.SelectHero(player.ID, player.Inventory.Units[0].ID)
		}
	}

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(10 * time.Minute)

	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxDelta {
				dt = maxDelta
			}

			if state.Phase == component.PhaseWaveIdle {
				game.StartNextWave()
			}
			steerHeroes(game, dt)
			game.Update(dt)

			if state.Phase.Ended() {
				logger.Info().Float64("simTime", state.GameTime).Msg("session finished")
				return
			}
		case <-deadline:
			logger.Error().Msg("session timed out")
			return
		}
	}
}

// steerHeroes is the driver-side interpolation MoveHero leaves to the host:
// walk each hero toward its nearest target at unit speed.
func steerHeroes(game *app.Game, dt float64) {
	state := game.State()
	for _, player := range state.Players {
		hero := player.Hero
		if !player.Alive || hero == nil {
			continue
		}

		target, ok := nearestThreat(state, player)
		if !ok {
			continue
		}
		game.MoveHero(player.ID, target.X, target.Y)

		step := hero.Speed * dt
		if dist := worldmap.Dist(hero.Position, target); dist > step {
			hero.Position.X += (target.X - hero.Position.X) / dist * step
			hero.Position.Y += (target.Y - hero.Position.Y) / dist * step
		} else {
			hero.Position = target
		}
	}
}

func nearestThreat(state *component.GameState, player *component.PlayerState) (worldmap.Point, bool) {
	best := worldmap.Point{}
	bestDist := -1.0
	for _, mob := range state.Mobs {
		if mob.Zone != player.Zone {
			continue
		}
		d := worldmap.Dist(player.Hero.Position, mob.Position)
		if bestDist < 0 || d < bestDist {
			best, bestDist = mob.Position, d
		}
	}
	if bestDist < 0 && state.BossActive {
		return state.CentralBoss.Position, true
	}
	return best, bestDist >= 0
}
