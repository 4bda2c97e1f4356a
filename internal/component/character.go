// internal/component/character.go
package component

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/worldmap"
)

// Buff is a timed stat boost on a character.
type Buff struct {
	Factor    float64 // multiplies attack while active
	ExpiresAt float64
}

// CharacterInstance is a live player-owned unit. Owned by exactly one
// player's inventory for its whole lifetime.
type CharacterInstance struct {
	ID  types.EntityID
	Def defs.UnitDefinition

	Health    int
	MaxHealth int
	Attack    int
	Defense   int
	Speed     float64

	Position worldmap.Point
	Deployed bool

	// Cooldowns maps skill id to the simulated-time instant it is ready
	// again.
	Cooldowns map[string]float64
	Buffs     []Buff

	// FireCooldown counts down between auto-attacks.
	FireCooldown float64
}

// EffectiveAttack folds active buffs into the attack stat.
func (c *CharacterInstance) EffectiveAttack(now float64) int {
	attack := float64(c.Attack)
	for _, b := range c.Buffs {
		if b.ExpiresAt > now {
			attack *= b.Factor
		}
	}
	return int(attack)
}

// SkillReady reports whether a skill is off cooldown at the given time.
func (c *CharacterInstance) SkillReady(skillID string, now float64) bool {
	return c.Cooldowns[skillID] <= now
}

// PruneBuffs drops expired buffs.
func (c *CharacterInstance) PruneBuffs(now float64) {
	active := c.Buffs[:0]
	for _, b := range c.Buffs {
		if b.ExpiresAt > now {
			active = append(active, b)
		}
	}
	c.Buffs = active
}

// HasPassive reports whether the unit definition carries the given passive
// skill.
func (c *CharacterInstance) HasPassive(lib *defs.Library, kind defs.SkillKind) (defs.SkillDefinition, bool) {
	for _, id := range c.Def.Skills {
		if skill, ok := lib.Skills[id]; ok && skill.Kind == kind {
			return skill, true
		}
	}
	return defs.SkillDefinition{}, false
}
