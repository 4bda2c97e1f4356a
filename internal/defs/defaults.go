// internal/defs/defaults.go
package defs

import "time"

// DefaultLibrary returns the built-in definition set. External data loaded
// through LoadLibrary replaces it wholesale; there is no merging.
func DefaultLibrary() *Library {
	lib := &Library{
		Creatures: map[string]CreatureDefinition{},
		Units:     map[string]UnitDefinition{},
		Skills:    map[string]SkillDefinition{},
		Waves:     map[int]WaveDefinition{},
	}

	creatures := []CreatureDefinition{
		{ID: "MOB_WOLF", Name: "Wolf", Health: 60, Attack: 8, Defense: 2, Speed: 42, GoldReward: 4},
		{ID: "MOB_BOAR", Name: "Boar", Health: 110, Attack: 10, Defense: 6, Speed: 30, GoldReward: 6},
		{ID: "MOB_RAPTOR", Name: "Raptor", Health: 80, Attack: 12, Defense: 3, Speed: 60, GoldReward: 6},
		{ID: "MOB_GOLEM", Name: "Golem", Health: 260, Attack: 16, Defense: 14, Speed: 20, GoldReward: 12},
		{ID: "MOB_WYRM", Name: "Wyrm", Health: 180, Attack: 18, Defense: 8, Speed: 36, GoldReward: 10},
		{ID: "MOB_ANCIENT_TURTLE", Name: "Ancient Turtle", Health: 900, Attack: 30, Defense: 20, Speed: 0, GoldReward: 60, BossFactor: 2.5},
	}
	for _, def := range creatures {
		lib.Creatures[def.ID] = def
	}
	lib.BossCreatureID = "MOB_ANCIENT_TURTLE"

	skills := []SkillDefinition{
		{ID: "SKILL_CLEAVE", Name: "Cleave", Kind: SkillActive, Cooldown: 6, DamageMultiplier: 2.0, Radius: 60},
		{ID: "SKILL_WAR_CRY", Name: "War Cry", Kind: SkillBuff, Cooldown: 12, BuffFactor: 1.5, BuffDuration: 5},
		{ID: "SKILL_DOUBLE_STRIKE", Name: "Double Strike", Kind: SkillPassive, Cooldown: 0, DamageMultiplier: 2.0},
		{ID: "SKILL_FROST_NOVA", Name: "Frost Nova", Kind: SkillActive, Cooldown: 9, DamageMultiplier: 1.5, Radius: 80, SlowFactor: 0.5, SlowDuration: 3},
	}
	for _, def := range skills {
		lib.Skills[def.ID] = def
	}

	units := []UnitDefinition{
		{ID: "UNIT_FOOTMAN", Name: "Footman", Faction: FactionHuman, Rarity: RarityCommon, Health: 120, Attack: 14, Defense: 6, Speed: 50, AttackRange: 30, FireRate: 1.0, Rollable: true},
		{ID: "UNIT_ARCHER", Name: "Archer", Faction: FactionHuman, Rarity: RarityCommon, Health: 90, Attack: 18, Defense: 2, Speed: 50, AttackRange: 120, FireRate: 1.2, Rollable: true},
		{ID: "UNIT_CLERIC", Name: "Cleric", Faction: FactionHuman, Rarity: RaritySpecial, Health: 100, Attack: 16, Defense: 4, Speed: 48, AttackRange: 90, FireRate: 0.9, Rollable: true},
		{ID: "UNIT_KNIGHT", Name: "Knight", Faction: FactionHuman, Rarity: RarityRare, Health: 220, Attack: 26, Defense: 12, Speed: 46, AttackRange: 35, FireRate: 0.8, Rollable: true, Skills: []string{"SKILL_CLEAVE"}},
		{ID: "UNIT_PALADIN", Name: "Paladin", Faction: FactionHuman, Rarity: RarityLegendary, Health: 320, Attack: 34, Defense: 18, Speed: 44, AttackRange: 35, FireRate: 0.8, Rollable: true, Skills: []string{"SKILL_CLEAVE", "SKILL_WAR_CRY"}},
		{ID: "UNIT_ARCHANGEL", Name: "Archangel", Faction: FactionHuman, Rarity: RarityMythic, Health: 420, Attack: 46, Defense: 22, Speed: 52, AttackRange: 60, FireRate: 1.0, Rollable: false, Skills: []string{"SKILL_WAR_CRY", "SKILL_DOUBLE_STRIKE"}},
		{ID: "UNIT_WOLFRIDER", Name: "Wolfrider", Faction: FactionBeast, Rarity: RarityCommon, Health: 110, Attack: 16, Defense: 4, Speed: 64, AttackRange: 30, FireRate: 1.1, Rollable: true},
		{ID: "UNIT_SHAMAN", Name: "Shaman", Faction: FactionBeast, Rarity: RaritySpecial, Health: 95, Attack: 20, Defense: 3, Speed: 50, AttackRange: 100, FireRate: 0.9, Rollable: true, Skills: []string{"SKILL_FROST_NOVA"}},
		{ID: "UNIT_BERSERKER", Name: "Berserker", Faction: FactionBeast, Rarity: RarityRare, Health: 200, Attack: 30, Defense: 8, Speed: 58, AttackRange: 30, FireRate: 1.2, Rollable: true, Skills: []string{"SKILL_DOUBLE_STRIKE"}},
		{ID: "UNIT_CHIEFTAIN", Name: "Chieftain", Faction: FactionBeast, Rarity: RarityLegendary, Health: 340, Attack: 38, Defense: 14, Speed: 54, AttackRange: 35, FireRate: 0.9, Rollable: true, Skills: []string{"SKILL_WAR_CRY", "SKILL_CLEAVE"}},
		{ID: "UNIT_PRIMAL_SPIRIT", Name: "Primal Spirit", Faction: FactionBeast, Rarity: RarityMythic, Health: 400, Attack: 48, Defense: 16, Speed: 60, AttackRange: 80, FireRate: 1.0, Rollable: false, Skills: []string{"SKILL_FROST_NOVA", "SKILL_DOUBLE_STRIKE"}},
	}
	for _, def := range units {
		lib.Units[def.ID] = def
	}

	waves := []WaveDefinition{
		{Number: 1, Entries: []WaveEntry{{CreatureID: "MOB_WOLF", Count: 5}}, SpawnInterval: time.Millisecond * 800, BonusGold: 10},
		{Number: 2, Entries: []WaveEntry{{CreatureID: "MOB_WOLF", Count: 7}}, SpawnInterval: time.Millisecond * 800, BonusGold: 10},
		{Number: 3, Entries: []WaveEntry{{CreatureID: "MOB_WOLF", Count: 5}, {CreatureID: "MOB_BOAR", Count: 3}}, SpawnInterval: time.Millisecond * 700, BonusGold: 12},
		{Number: 4, Entries: []WaveEntry{{CreatureID: "MOB_BOAR", Count: 6}}, SpawnInterval: time.Second, BonusGold: 14},
		{Number: 5, Entries: []WaveEntry{{CreatureID: "MOB_RAPTOR", Count: 8}}, SpawnInterval: time.Millisecond * 500, BonusGold: 16},
		{Number: 6, Entries: []WaveEntry{{CreatureID: "MOB_RAPTOR", Count: 6}, {CreatureID: "MOB_BOAR", Count: 4, Multiplier: 1.2}}, SpawnInterval: time.Millisecond * 600, BonusGold: 18},
		{Number: 7, Entries: []WaveEntry{{CreatureID: "MOB_WYRM", Count: 6}}, SpawnInterval: time.Millisecond * 900, BonusGold: 20},
		{Number: 8, Entries: []WaveEntry{{CreatureID: "MOB_GOLEM", Count: 4}}, SpawnInterval: time.Millisecond * 1200, BonusGold: 24},
		{Number: 9, Entries: []WaveEntry{{CreatureID: "MOB_WYRM", Count: 5, Multiplier: 1.3}, {CreatureID: "MOB_RAPTOR", Count: 5, Multiplier: 1.3}}, SpawnInterval: time.Millisecond * 500, BonusGold: 28},
		{Number: 10, Entries: []WaveEntry{{CreatureID: "MOB_GOLEM", Count: 4, Multiplier: 1.5}, {CreatureID: "MOB_WYRM", Count: 4, Multiplier: 1.5}}, SpawnInterval: time.Millisecond * 800, BonusGold: 40},
	}
	for _, def := range waves {
		lib.Waves[def.Number] = def
	}

	lib.Recipes = []Recipe{
		{Materials: []string{"UNIT_FOOTMAN", "UNIT_FOOTMAN", "UNIT_ARCHER"}, Result: "UNIT_KNIGHT"},
		{Materials: []string{"UNIT_WOLFRIDER", "UNIT_WOLFRIDER", "UNIT_SHAMAN"}, Result: "UNIT_BERSERKER"},
		{Materials: []string{"UNIT_KNIGHT", "UNIT_CLERIC", "UNIT_CLERIC"}, Result: "UNIT_PALADIN"},
		{Materials: []string{"UNIT_PALADIN", "UNIT_CHIEFTAIN"}, ResultPool: "POOL_MYTHIC"},
	}
	lib.Pools = map[string][]string{
		"POOL_MYTHIC": {"UNIT_ARCHANGEL", "UNIT_PRIMAL_SPIRIT"},
	}

	lib.RarityWeights = []WeightEntry{
		{Label: string(RarityCommon), Weight: 60},
		{Label: string(RaritySpecial), Weight: 25},
		{Label: string(RarityRare), Weight: 12},
		{Label: string(RarityLegendary), Weight: 2.5},
		{Label: string(RarityMythic), Weight: 0.5},
	}
	lib.FactionWeights = []WeightEntry{
		{Label: string(FactionHuman), Weight: 55},
		{Label: string(FactionBeast), Weight: 45},
	}

	return lib
}
