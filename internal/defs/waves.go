// internal/defs/waves.go
package defs

import "time"

// WaveEntry is one (creature, count) block of a wave's composition.
type WaveEntry struct {
	CreatureID string  `json:"creature_id"`
	Count      int     `json:"count"`
	Multiplier float64 `json:"multiplier,omitempty"` // stat multiplier, 1.0 when omitted
}

// WaveDefinition describes the composition and pacing of one wave. The same
// composition is replicated into every alive player zone.
type WaveDefinition struct {
	Number        int           `json:"number"`
	Entries       []WaveEntry   `json:"entries"`
	SpawnInterval time.Duration `json:"spawn_interval"`
	BonusGold     int           `json:"bonus_gold,omitempty"`
}
