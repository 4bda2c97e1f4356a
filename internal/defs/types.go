// internal/defs/types.go
package defs

// Faction splits the unit roster for the two-way faction draw.
type Faction string

const (
	FactionHuman Faction = "HUMAN"
	FactionBeast Faction = "BEAST"
)

// Rarity orders unit tiers from most to least common.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RaritySpecial   Rarity = "SPECIAL"
	RarityRare      Rarity = "RARE"
	RarityLegendary Rarity = "LEGENDARY"
	RarityMythic    Rarity = "MYTHIC"
)

// RarityOrder lists rarities from lowest to highest; index 0 is the
// fallback tier used when a roll finds no candidates.
var RarityOrder = []Rarity{RarityCommon, RaritySpecial, RarityRare, RarityLegendary, RarityMythic}

// SkillKind discriminates skill behavior.
type SkillKind string

const (
	SkillActive  SkillKind = "ACTIVE"  // targeted area damage
	SkillBuff    SkillKind = "BUFF"    // timed self stat boost
	SkillPassive SkillKind = "PASSIVE" // extra-hit multiplier on auto-attacks
)

// WeightEntry is one bucket of a weighted draw table.
type WeightEntry struct {
	Label  string  `json:"label"`
	Weight float64 `json:"weight"`
}
