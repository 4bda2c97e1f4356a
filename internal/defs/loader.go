// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// libraryFile mirrors the on-disk shape of a full definition set.
type libraryFile struct {
	Creatures      []CreatureDefinition `json:"creatures"`
	Units          []UnitDefinition     `json:"units"`
	Skills         []SkillDefinition    `json:"skills"`
	Waves          []WaveDefinition     `json:"waves"`
	Recipes        []Recipe             `json:"recipes"`
	Pools          map[string][]string  `json:"pools"`
	BossCreatureID string               `json:"boss_creature_id"`
	RarityWeights  []WeightEntry        `json:"rarity_weights"`
	FactionWeights []WeightEntry        `json:"faction_weights"`
}

// LoadLibrary reads a definition file and returns a validated Library.
func LoadLibrary(path string) (*Library, error) {
	file, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file: %w", err)
	}

	var raw libraryFile
	if err := json.Unmarshal(file, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	lib := &Library{
		Creatures:      make(map[string]CreatureDefinition, len(raw.Creatures)),
		Units:          make(map[string]UnitDefinition, len(raw.Units)),
		Skills:         make(map[string]SkillDefinition, len(raw.Skills)),
		Waves:          make(map[int]WaveDefinition, len(raw.Waves)),
		Recipes:        raw.Recipes,
		Pools:          raw.Pools,
		BossCreatureID: raw.BossCreatureID,
		RarityWeights:  raw.RarityWeights,
		FactionWeights: raw.FactionWeights,
	}
	for _, def := range raw.Creatures {
		lib.Creatures[def.ID] = def
	}
	for _, def := range raw.Units {
		lib.Units[def.ID] = def
	}
	for _, def := range raw.Skills {
		lib.Skills[def.ID] = def
	}
	for _, def := range raw.Waves {
		lib.Waves[def.Number] = def
	}

	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}
	return lib, nil
}
