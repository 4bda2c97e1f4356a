// internal/defs/units.go
package defs

// UnitDefinition holds all the static data for a player-controllable unit.
type UnitDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Faction     Faction `json:"faction"`
	Rarity      Rarity  `json:"rarity"`
	Health      int     `json:"health"`
	Attack      int     `json:"attack"`
	Defense     int     `json:"defense"`
	Speed       float64 `json:"speed"`
	AttackRange float64 `json:"attack_range"`
	FireRate    float64 `json:"fire_rate"` // attacks per second
	// Rollable marks units that can come out of a roll. Craft-only results
	// are excluded from the first candidate pass but reachable through the
	// relaxed passes.
	Rollable bool     `json:"rollable"`
	Skills   []string `json:"skills,omitempty"` // skill ids
}

// SkillDefinition describes one hero ability.
type SkillDefinition struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Kind     SkillKind `json:"kind"`
	Cooldown float64   `json:"cooldown"` // seconds of simulated time
	// DamageMultiplier feeds the unit-combat formula for ACTIVE and PASSIVE
	// skills. 1.0 means a plain attack.
	DamageMultiplier float64 `json:"damage_multiplier,omitempty"`
	Radius           float64 `json:"radius,omitempty"` // area of effect for ACTIVE skills
	BuffFactor       float64 `json:"buff_factor,omitempty"`
	BuffDuration     float64 `json:"buff_duration,omitempty"`
	SlowFactor       float64 `json:"slow_factor,omitempty"`
	SlowDuration     float64 `json:"slow_duration,omitempty"`
}
