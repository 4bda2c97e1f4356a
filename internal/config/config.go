// internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config carries every tuning knob the engine consumes at construction.
type Config struct {
	StartingGold     int     `mapstructure:"startingGold"`
	RollCost         int     `mapstructure:"rollCost"`
	InitialFreeRolls int     `mapstructure:"initialFreeRolls"`
	FreeRollsPerWave int     `mapstructure:"freeRollsPerWave"`
	IncomeInterval   float64 `mapstructure:"incomeInterval"` // seconds of simulated time
	IncomeAmount     int     `mapstructure:"incomeAmount"`
	StatueMaxHealth  int     `mapstructure:"statueMaxHealth"`
	StatueLoopDamage int     `mapstructure:"statueLoopDamage"`
	TotalWaves       int     `mapstructure:"totalWaves"`
	BossWaveInterval int     `mapstructure:"bossWaveInterval"`

	// Map geometry. Player zones sit on a ring around the central arena.
	ZoneRadius    float64 `mapstructure:"zoneRadius"`    // radius of one player zone
	LoopRadius    float64 `mapstructure:"loopRadius"`    // radius of the mob loop inside a zone
	ZoneRingDist  float64 `mapstructure:"zoneRingDist"`  // distance from map center to each zone center
	LoopPathSides int     `mapstructure:"loopPathSides"` // loop path is a regular polygon with this many corners

	// TierScaling multiplies a rolled unit's stats by rarity label.
	TierScaling map[string]float64 `mapstructure:"tierScaling"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("startingGold", 20)
	v.SetDefault("rollCost", 10)
	v.SetDefault("initialFreeRolls", 3)
	v.SetDefault("freeRollsPerWave", 1)
	v.SetDefault("incomeInterval", 10.0)
	v.SetDefault("incomeAmount", 5)
	v.SetDefault("statueMaxHealth", 100)
	v.SetDefault("statueLoopDamage", 10)
	v.SetDefault("totalWaves", 10)
	v.SetDefault("bossWaveInterval", 5)
	v.SetDefault("zoneRadius", 180.0)
	v.SetDefault("loopRadius", 120.0)
	v.SetDefault("zoneRingDist", 500.0)
	v.SetDefault("loopPathSides", 12)
	v.SetDefault("tierScaling", map[string]float64{
		"COMMON":    1.0,
		"SPECIAL":   1.15,
		"RARE":      1.35,
		"LEGENDARY": 1.6,
		"MYTHIC":    2.0,
	})
}

// Load reads game.cfg.json from configDir, falling back to defaults for any
// missing key. A missing file is not an error; a malformed one is.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("game.cfg")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without touching the
// filesystem.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always unmarshal cleanly.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate rejects values that would starve or wedge the simulation.
func (c *Config) Validate() error {
	if c.TotalWaves <= 0 {
		return fmt.Errorf("totalWaves must be positive, got %d", c.TotalWaves)
	}
	if c.BossWaveInterval <= 0 {
		return fmt.Errorf("bossWaveInterval must be positive, got %d", c.BossWaveInterval)
	}
	if c.IncomeInterval <= 0 {
		return fmt.Errorf("incomeInterval must be positive, got %v", c.IncomeInterval)
	}
	if c.StatueMaxHealth <= 0 {
		return fmt.Errorf("statueMaxHealth must be positive, got %d", c.StatueMaxHealth)
	}
	if c.RollCost <= 0 {
		return fmt.Errorf("rollCost must be positive, got %d", c.RollCost)
	}
	if c.LoopRadius <= 0 || c.ZoneRadius <= 0 || c.ZoneRingDist <= 0 {
		return fmt.Errorf("map geometry must be positive")
	}
	if c.LoopPathSides < 3 {
		return fmt.Errorf("loopPathSides must be at least 3, got %d", c.LoopPathSides)
	}
	return nil
}

// TierScale returns the stat multiplier for a rarity label, defaulting to 1.
// The lookup is case-insensitive because viper lowercases config keys.
func (c *Config) TierScale(label string) float64 {
	for key, scale := range c.TierScaling {
		if strings.EqualFold(key, label) && scale > 0 {
			return scale
		}
	}
	return 1.0
}
