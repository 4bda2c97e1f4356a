// internal/entity/factory.go
package entity

import (
	"math"

	"github.com/google/uuid"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/worldmap"
)

// NewID mints an instance id. IDs are unique for the lifetime of the
// process and never reused.
func NewID() types.EntityID {
	return types.EntityID(uuid.New().String())
}

// NewMobInstance builds a live mob from a creature definition, scaling its
// base stats by multiplier. Multipliers at or below zero count as 1.
func NewMobInstance(def defs.CreatureDefinition, multiplier float64, zone types.Zone, pos worldmap.Point) *component.MobInstance {
	if multiplier <= 0 {
		multiplier = 1.0
	}
	health := scaleStat(def.Health, multiplier)
	return &component.MobInstance{
		ID:        NewID(),
		Def:       def,
		Health:    health,
		MaxHealth: health,
		Attack:    scaleStat(def.Attack, multiplier),
		Defense:   scaleStat(def.Defense, multiplier),
		Speed:     def.Speed * multiplier,
		Position:  pos,
		Zone:      zone,
	}
}

// NewCharacterInstance builds a live unit from a definition, scaling its
// base stats by the rarity tier multiplier.
func NewCharacterInstance(def defs.UnitDefinition, tierScale float64, pos worldmap.Point) *component.CharacterInstance {
	if tierScale <= 0 {
		tierScale = 1.0
	}
	health := scaleStat(def.Health, tierScale)
	return &component.CharacterInstance{
		ID:        NewID(),
		Def:       def,
		Health:    health,
		MaxHealth: health,
		Attack:    scaleStat(def.Attack, tierScale),
		Defense:   scaleStat(def.Defense, tierScale),
		Speed:     def.Speed,
		Position:  pos,
		Cooldowns: make(map[string]float64),
	}
}

func scaleStat(base int, multiplier float64) int {
	return int(math.Round(float64(base) * multiplier))
}
