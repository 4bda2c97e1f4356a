// internal/app/skills.go
package app

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/worldmap"
)

// SelectHero promotes an owned unit to the player's hero. The unit stays in
// the inventory; re-selecting just repoints the hero reference.
func (g *Game) SelectHero(playerID types.PlayerID, unitID types.EntityID) bool {
	player := g.state.PlayerByID(playerID)
	if player == nil || !player.Alive {
		return false
	}
	unit := player.Inventory.UnitByInstanceID(unitID)
	if unit == nil {
		return false
	}

	player.Hero = unit
	g.dispatcher.Dispatch(event.Event{Type: event.HeroSelected, Data: event.HeroSelectedPayload{
		PlayerID: playerID,
		Hero:     unit,
	}})
	return true
}

// MoveHero validates a move order and publishes it for the driver's own
// interpolation. The core does not move the hero itself; the driver writes
// the hero's position back as it animates the move.
func (g *Game) MoveHero(playerID types.PlayerID, x, y float64) bool {
	player := g.state.PlayerByID(playerID)
	if player == nil || !player.Alive || player.Hero == nil {
		return false
	}

	g.dispatcher.Dispatch(event.Event{Type: event.HeroMoveCommand, Data: event.HeroMoveCommandPayload{
		PlayerID: playerID,
		Hero:     player.Hero,
		TargetX:  x,
		TargetY:  y,
	}})
	return true
}

// UseSkill triggers one of the hero's skills at a target point. Fails
// silently for unknown or passive skills, a skill on cooldown, or a dead
// player.
func (g *Game) UseSkill(playerID types.PlayerID, skillID string, targetX, targetY float64) bool {
	if g.state.Phase == component.PhaseIdle || g.state.Phase.Ended() {
		return false
	}
	player := g.state.PlayerByID(playerID)
	if player == nil || !player.Alive || player.Hero == nil {
		return false
	}
	hero := player.Hero

	if !heroKnowsSkill(hero, skillID) {
		return false
	}
	skill, ok := g.lib.Skills[skillID]
	if !ok || skill.Kind == defs.SkillPassive {
		return false
	}
	now := g.state.GameTime
	if !hero.SkillReady(skillID, now) {
		return false
	}
	hero.Cooldowns[skillID] = now + skill.Cooldown

	switch skill.Kind {
	case defs.SkillActive:
		g.resolveAreaSkill(hero, skill, worldmap.Point{X: targetX, Y: targetY})
	case defs.SkillBuff:
		hero.Buffs = append(hero.Buffs, component.Buff{
			Factor:    skill.BuffFactor,
			ExpiresAt: now + skill.BuffDuration,
		})
	}

	g.dispatcher.Dispatch(event.Event{Type: event.SkillUsed, Data: event.SkillUsedPayload{
		PlayerID: playerID,
		Skill:    skill,
		TargetX:  targetX,
		TargetY:  targetY,
	}})
	return true
}

// resolveAreaSkill damages every mob (boss included) within the skill
// radius of the target point, applying the skill's slow to survivors.
func (g *Game) resolveAreaSkill(hero *component.CharacterInstance, skill defs.SkillDefinition, target worldmap.Point) {
	now := g.state.GameTime

	var targets []types.EntityID
	for id, mob := range g.state.Mobs {
		if worldmap.Dist(target, mob.Position) <= skill.Radius {
			targets = append(targets, id)
		}
	}
	if g.state.BossActive && worldmap.Dist(target, g.state.CentralBoss.Position) <= skill.Radius {
		targets = append(targets, g.state.CentralBoss.ID)
	}

	attack := hero.EffectiveAttack(now)
	for _, id := range targets {
		victim := g.mobByID(id)
		if victim == nil {
			continue
		}
		damage := system.ResolveAttack(attack, victim.Defense, skill.DamageMultiplier)
		g.combatSystem.ApplyDamage(hero.ID, id, damage)

		// Slow only what survived the hit.
		if skill.SlowFactor > 0 {
			if survivor := g.mobByID(id); survivor != nil {
				survivor.Debuffs = append(survivor.Debuffs, component.Debuff{
					SlowFactor: skill.SlowFactor,
					ExpiresAt:  now + skill.SlowDuration,
				})
			}
		}
	}
}

func (g *Game) mobByID(id types.EntityID) *component.MobInstance {
	if g.state.BossActive && g.state.CentralBoss.ID == id {
		return g.state.CentralBoss
	}
	return g.state.Mobs[id]
}

func heroKnowsSkill(hero *component.CharacterInstance, skillID string) bool {
	for _, id := range hero.Def.Skills {
		if id == skillID {
			return true
		}
	}
	return false
}

// Combine consumes owned material units matching a recipe and inserts the
// crafted result into the same inventory. The resolver itself never touches
// the inventory; this is the mutating caller.
func (g *Game) Combine(playerID types.PlayerID, materialInstanceIDs []types.EntityID) *component.CharacterInstance {
	if g.state.Phase == component.PhaseIdle || g.state.Phase.Ended() {
		return nil
	}
	player := g.state.PlayerByID(playerID)
	if player == nil || !player.Alive {
		return nil
	}

	// Materials form a multiset of distinct owned instances; the same
	// instance cannot serve as two donors.
	seen := make(map[types.EntityID]bool, len(materialInstanceIDs))
	defIDs := make([]string, 0, len(materialInstanceIDs))
	for _, instanceID := range materialInstanceIDs {
		if seen[instanceID] {
			return nil
		}
		seen[instanceID] = true
		unit := player.Inventory.UnitByInstanceID(instanceID)
		if unit == nil {
			return nil
		}
		defIDs = append(defIDs, unit.Def.ID)
	}

	resultID, ok := g.craftingSystem.ExecuteCombination(defIDs)
	if !ok {
		return nil
	}
	resultDef, ok := g.lib.Units[resultID]
	if !ok {
		return nil
	}

	for _, instanceID := range materialInstanceIDs {
		if player.Hero != nil && player.Hero.ID == instanceID {
			player.Hero = nil
		}
		player.Inventory.RemoveUnit(instanceID)
	}

	pos := g.worldMap.RandomPointInZone(player.Zone.Index, g.rng.Float64)
	result := entity.NewCharacterInstance(resultDef, g.cfg.TierScale(string(resultDef.Rarity)), pos)
	result.Deployed = true
	player.Inventory.Units = append(player.Inventory.Units, result)

	g.dispatcher.Dispatch(event.Event{Type: event.UnitCombined, Data: event.UnitCombinedPayload{
		PlayerID: playerID,
		Consumed: materialInstanceIDs,
		Result:   result,
	}})
	return result
}

// Crafting exposes the pure recipe resolver for availability queries.
func (g *Game) Crafting() *system.CraftingSystem {
	return g.craftingSystem
}
