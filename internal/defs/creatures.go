// internal/defs/creatures.go
package defs

// CreatureDefinition holds all the static data for a hostile creature type.
type CreatureDefinition struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Health     int     `json:"health"`
	Attack     int     `json:"attack"`
	Defense    int     `json:"defense"`
	Speed      float64 `json:"speed"`
	GoldReward int     `json:"gold_reward"`
	// BossFactor is the extra stat multiplier applied when this creature is
	// spawned as the central boss. Zero for regular creatures.
	BossFactor float64 `json:"boss_factor,omitempty"`
}
