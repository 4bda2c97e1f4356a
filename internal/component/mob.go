// internal/component/mob.go
package component

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/worldmap"
)

// Debuff is a timed negative effect on a mob.
type Debuff struct {
	// SlowFactor multiplies movement speed while the debuff is active.
	SlowFactor float64
	// ExpiresAt is the simulated-time instant the debuff wears off.
	ExpiresAt float64
}

// MobInstance is a live hostile creature. Stats are scaled copies of the
// definition's base stats and mutate independently of it.
type MobInstance struct {
	ID  types.EntityID
	Def defs.CreatureDefinition

	Health    int
	MaxHealth int
	Attack    int
	Defense   int
	Speed     float64

	Position worldmap.Point
	// PathProgress runs 0..1 around the zone loop and wraps on completion.
	// Meaningless for the central boss, which never moves.
	PathProgress float64
	LoopCount    int

	Zone    types.Zone
	Debuffs []Debuff
}

// IsBoss reports whether the mob is the shared central boss.
func (m *MobInstance) IsBoss() bool {
	return m.Zone.IsCentral()
}

// SpeedMultiplier folds active debuffs into a single movement factor.
func (m *MobInstance) SpeedMultiplier(now float64) float64 {
	mult := 1.0
	for _, d := range m.Debuffs {
		if d.ExpiresAt > now && d.SlowFactor > 0 {
			mult *= d.SlowFactor
		}
	}
	return mult
}

// PruneDebuffs drops expired debuffs.
func (m *MobInstance) PruneDebuffs(now float64) {
	active := m.Debuffs[:0]
	for _, d := range m.Debuffs {
		if d.ExpiresAt > now {
			active = append(active, d)
		}
	}
	m.Debuffs = active
}
