// internal/system/combat.go
package system

import (
	"math"

	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/worldmap"
)

// passiveProcChance is how often a passive extra-hit skill triggers on an
// auto-attack.
const passiveProcChance = 0.2

// CombatSystem resolves damage against mobs and the central boss, handles
// deaths, and runs hero auto-attacks.
//
// Two damage formulas coexist on purpose: ResolveAttack for unit-vs-unit
// combat halves defense, DealDamage subtracts it flat. See the design notes
// before unifying them.
type CombatSystem struct {
	state      *component.GameState
	lib        *defs.Library
	economy    *EconomySystem
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
}

func NewCombatSystem(state *component.GameState, lib *defs.Library, economy *EconomySystem, rng *utils.PRNGService, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		state:      state,
		lib:        lib,
		economy:    economy,
		rng:        rng,
		dispatcher: dispatcher,
	}
}

// ResolveAttack computes unit-combat damage: max(1, attack - defense/2)
// scaled by the skill multiplier, floored, never below 1.
func ResolveAttack(attack, defense int, multiplier float64) int {
	base := math.Max(1, float64(attack)-float64(defense)/2)
	damage := int(math.Floor(base * multiplier))
	if damage < 1 {
		damage = 1
	}
	return damage
}

// DealDamage applies raw damage to the mob or boss with the given target id
// using flat mitigation: max(1, raw - defense). Returns the effective damage
// and false for an unknown target.
func (s *CombatSystem) DealDamage(attackerID, targetID types.EntityID, rawDamage int) (int, bool) {
	target, isBoss := s.findTarget(targetID)
	if target == nil {
		return 0, false
	}

	effective := rawDamage - target.Defense
	if effective < 1 {
		effective = 1
	}
	s.applyDamage(attackerID, target, effective, isBoss)
	return effective, true
}

// ApplyDamage applies already-resolved damage (no further mitigation) to the
// mob or boss with the given target id.
func (s *CombatSystem) ApplyDamage(attackerID, targetID types.EntityID, damage int) bool {
	target, isBoss := s.findTarget(targetID)
	if target == nil {
		return false
	}
	s.applyDamage(attackerID, target, damage, isBoss)
	return true
}

func (s *CombatSystem) findTarget(targetID types.EntityID) (*component.MobInstance, bool) {
	if s.state.BossActive && s.state.CentralBoss.ID == targetID {
		return s.state.CentralBoss, true
	}
	if mob, ok := s.state.Mobs[targetID]; ok {
		return mob, false
	}
	return nil, false
}

func (s *CombatSystem) applyDamage(attackerID types.EntityID, target *component.MobInstance, damage int, isBoss bool) {
	target.Health -= damage
	s.dispatcher.Dispatch(event.Event{Type: event.Damage, Data: event.DamagePayload{
		AttackerID: attackerID,
		TargetID:   target.ID,
		Damage:     damage,
		IsBoss:     isBoss,
	}})

	if target.Health > 0 {
		return
	}
	if isBoss {
		s.handleBossKill(attackerID, target)
	} else {
		s.handleMobKill(attackerID, target)
	}
}

// handleMobKill removes the mob and pays its bounty to the killing player,
// identified by matching the attacker id against deployed heroes.
func (s *CombatSystem) handleMobKill(killerID types.EntityID, mob *component.MobInstance) {
	delete(s.state.Mobs, mob.ID)

	if killer := s.playerForHero(killerID); killer != nil && killer.Alive {
		s.economy.AwardGold(killer, mob.Def.GoldReward)
	}
	s.dispatcher.Dispatch(event.Event{Type: event.MobKilled, Data: event.MobKilledPayload{
		Mob:      mob,
		KillerID: killerID,
	}})
}

// handleBossKill clears boss state and pays the bounty to every alive
// player; the boss is a cooperative kill.
func (s *CombatSystem) handleBossKill(killerID types.EntityID, boss *component.MobInstance) {
	s.state.CentralBoss = nil
	s.state.BossActive = false

	for _, player := range s.state.AlivePlayers() {
		s.economy.AwardGold(player, boss.Def.GoldReward)
	}
	s.dispatcher.Dispatch(event.Event{Type: event.BossKilled, Data: event.BossKilledPayload{
		Boss:     boss,
		KillerID: killerID,
	}})
}

func (s *CombatSystem) playerForHero(heroID types.EntityID) *component.PlayerState {
	for _, player := range s.state.Players {
		if player.Hero != nil && player.Hero.ID == heroID {
			return player
		}
	}
	return nil
}

// Update runs hero auto-attacks: each deployed hero acquires the nearest
// mob (or the boss) in range and attacks on its fire-rate cooldown.
func (s *CombatSystem) Update(deltaTime float64) {
	now := s.state.GameTime
	for _, player := range s.state.Players {
		hero := player.Hero
		if !player.Alive || hero == nil || !hero.Deployed {
			continue
		}
		hero.PruneBuffs(now)

		hero.FireCooldown -= deltaTime
		if hero.FireCooldown > 0 {
			continue
		}

		targetID, ok := s.nearestTargetInRange(hero.Position, hero.Def.AttackRange)
		if !ok {
			// No banking shots while idle.
			hero.FireCooldown = 0
			continue
		}

		multiplier := 1.0
		if passive, ok := hero.HasPassive(s.lib, defs.SkillPassive); ok && s.rng.Float64() < passiveProcChance {
			multiplier = passive.DamageMultiplier
		}

		target, _ := s.findTarget(targetID)
		damage := ResolveAttack(hero.EffectiveAttack(now), target.Defense, multiplier)
		s.applyDamage(hero.ID, target, damage, target.IsBoss())

		// Carry the overshoot so coarse ticks do not erode the fire rate.
		if hero.Def.FireRate > 0 {
			hero.FireCooldown += 1.0 / hero.Def.FireRate
		}
	}
}

func (s *CombatSystem) nearestTargetInRange(from worldmap.Point, attackRange float64) (types.EntityID, bool) {
	var nearest types.EntityID
	found := false
	minDistance := math.MaxFloat64

	consider := func(id types.EntityID, pos worldmap.Point) {
		distance := worldmap.Dist(from, pos)
		if distance <= attackRange && distance < minDistance {
			minDistance = distance
			nearest = id
			found = true
		}
	}

	for id, mob := range s.state.Mobs {
		consider(id, mob.Position)
	}
	if s.state.BossActive {
		consider(s.state.CentralBoss.ID, s.state.CentralBoss.Position)
	}
	return nearest, found
}
