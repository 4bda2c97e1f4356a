// internal/event/types.go
package event

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
)

const (
	GameStart       EventType = "GameStart"
	GamePause       EventType = "GamePause"
	GameResume      EventType = "GameResume"
	GameEnd         EventType = "GameEnd"
	WaveStart       EventType = "WaveStart"
	WaveComplete    EventType = "WaveComplete"
	MobSpawn        EventType = "MobSpawn"
	MobKilled       EventType = "MobKilled"
	BossSpawn       EventType = "BossSpawn"
	BossKilled      EventType = "BossKilled"
	StatueDamaged   EventType = "StatueDamaged"
	PlayerDefeated  EventType = "PlayerDefeated"
	GoldChanged     EventType = "GoldChanged"
	Roll            EventType = "Roll"
	HeroSelected    EventType = "HeroSelected"
	HeroMoveCommand EventType = "HeroMoveCommand"
	SkillUsed       EventType = "SkillUsed"
	Damage          EventType = "Damage"
	UnitCombined    EventType = "UnitCombined"
)

// GameEndPayload reports how the match ended.
type GameEndPayload struct {
	Victory bool
}

// WaveStartPayload is published when a wave begins spawning.
type WaveStartPayload struct {
	Wave       *component.WaveState
	WaveNumber int
	IsBossWave bool
}

// WaveCompletePayload is published when every mob of a wave is gone.
type WaveCompletePayload struct {
	WaveNumber int
}

// MobSpawnPayload carries a freshly materialized mob.
type MobSpawnPayload struct {
	Instance *component.MobInstance
}

// MobKilledPayload reports a regular mob death.
type MobKilledPayload struct {
	Mob      *component.MobInstance
	KillerID types.EntityID
}

// BossSpawnPayload carries the central boss instance.
type BossSpawnPayload struct {
	Instance *component.MobInstance
}

// BossKilledPayload reports the cooperative boss kill.
type BossKilledPayload struct {
	Boss     *component.MobInstance
	KillerID types.EntityID
}

// StatueDamagedPayload is published once per completed enemy lap.
type StatueDamagedPayload struct {
	Zone        types.Zone
	Damage      int
	RemainingHP int
}

// PlayerDefeatedPayload reports a statue reaching zero health.
type PlayerDefeatedPayload struct {
	PlayerID types.PlayerID
	Zone     types.Zone
}

// GoldChangedPayload reports any currency mutation, including passive income.
type GoldChangedPayload struct {
	PlayerID  types.PlayerID
	Amount    int
	Total     int
	IsPassive bool
}

// RollPayload carries the unit produced by a successful roll.
type RollPayload struct {
	PlayerID  types.PlayerID
	Character *component.CharacterInstance
}

// HeroSelectedPayload reports a unit being promoted to hero.
type HeroSelectedPayload struct {
	PlayerID types.PlayerID
	Hero     *component.CharacterInstance
}

// HeroMoveCommandPayload is emitted for the driver's own interpolation; the
// core does not move the hero itself.
type HeroMoveCommandPayload struct {
	PlayerID types.PlayerID
	Hero     *component.CharacterInstance
	TargetX  float64
	TargetY  float64
}

// SkillUsedPayload reports a successfully triggered skill.
type SkillUsedPayload struct {
	PlayerID types.PlayerID
	Skill    defs.SkillDefinition
	TargetX  float64
	TargetY  float64
}

// UnitCombinedPayload reports a successful combination: the consumed
// material instances and the crafted result.
type UnitCombinedPayload struct {
	PlayerID types.PlayerID
	Consumed []types.EntityID
	Result   *component.CharacterInstance
}

// DamagePayload reports resolved damage against a mob or the boss.
type DamagePayload struct {
	AttackerID types.EntityID
	TargetID   types.EntityID
	Damage     int
	IsBoss     bool
}
