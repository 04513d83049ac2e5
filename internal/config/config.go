// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the farm simulation.
package config

import "fmt"

// Relocation policies for agents whose target crop was consumed.
const (
	RelocateRandom = "random" // Uniform pick among adjacent candidates
	RelocateFirst  = "first"  // First candidate in N, S, W, E order
)

// FarmConfig contains all configuration for one farm variant.
type FarmConfig struct {
	Grid       GridConfig    `yaml:"grid"`
	Economy    EconomyConfig `yaml:"economy"`
	Crops      []CropConfig  `yaml:"crops"`
	Plague     PlagueConfig  `yaml:"plague"`
	Difficulty string        `yaml:"difficulty,omitempty"` // Informational: preset applied, if any
}

// GridConfig defines the field dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// EconomyConfig defines the player's money parameters.
type EconomyConfig struct {
	StartingMoney int `yaml:"starting_money"`
	PesticideCost int `yaml:"pesticide_cost"`
}

// CropConfig is the kind-specific record of one plantable crop.
type CropConfig struct {
	Kind           string    `yaml:"kind"`
	Name           string    `yaml:"name"`
	StageDurations []float64 `yaml:"stage_durations"` // Seconds spent in Seedling, Growing, Mature
	PlantingCost   int       `yaml:"planting_cost"`
	HarvestReward  int       `yaml:"harvest_reward"`
	MaxHP          float64   `yaml:"max_hp"`
}

// PlagueConfig defines hostile agent behavior and spawn policy.
type PlagueConfig struct {
	BaseDamage      float64           `yaml:"base_damage"`    // Damage per second at multiplier 1.0
	SpawnCooldown   float64           `yaml:"spawn_cooldown"` // Seconds between spawn attempts
	Relocation      string            `yaml:"relocation"`     // "random" or "first"
	VulnerableCount int               `yaml:"vulnerable_count"`
	VulnerableKinds []string          `yaml:"vulnerable_kinds,omitempty"` // Overrides the random pick
	Cooperation     CooperationConfig `yaml:"cooperation"`
	Population      PopulationConfig  `yaml:"population"`
}

// CooperationConfig defines the damage multiplier: min(1 + step*n, cap).
type CooperationConfig struct {
	Step float64 `yaml:"step"`
	Cap  float64 `yaml:"cap"`
}

// PopulationConfig defines the agent cap: base + consumed/per_step, clamped to max.
// MaxCap <= 0 means unbounded.
type PopulationConfig struct {
	BaseCap      int `yaml:"base_cap"`
	CropsPerStep int `yaml:"crops_per_step"`
	MaxCap       int `yaml:"max_cap"`
}

// StageCount is the number of timed growth stages before Ready.
const StageCount = 3

// Crop returns the crop config for kind and whether it exists.
func (c FarmConfig) Crop(kind string) (CropConfig, bool) {
	for _, cc := range c.Crops {
		if cc.Kind == kind {
			return cc, true
		}
	}
	return CropConfig{}, false
}

// CheapestPlantingCost returns the lowest planting cost in the catalog.
func (c FarmConfig) CheapestPlantingCost() int {
	cheapest := 0
	for i, cc := range c.Crops {
		if i == 0 || cc.PlantingCost < cheapest {
			cheapest = cc.PlantingCost
		}
	}
	return cheapest
}

// Validate checks the configuration and reports the first invalid field.
func (c FarmConfig) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("grid: rows and cols must be positive, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Economy.StartingMoney < 0 {
		return fmt.Errorf("economy: starting_money cannot be negative, got %d", c.Economy.StartingMoney)
	}
	if c.Economy.PesticideCost < 0 {
		return fmt.Errorf("economy: pesticide_cost cannot be negative, got %d", c.Economy.PesticideCost)
	}
	if len(c.Crops) == 0 {
		return fmt.Errorf("crops: at least one crop kind is required")
	}

	seen := make(map[string]bool, len(c.Crops))
	for _, cc := range c.Crops {
		if cc.Kind == "" {
			return fmt.Errorf("crops: kind cannot be empty")
		}
		if seen[cc.Kind] {
			return fmt.Errorf("crop %s: duplicate kind", cc.Kind)
		}
		seen[cc.Kind] = true

		if len(cc.StageDurations) != StageCount {
			return fmt.Errorf("crop %s: stage_durations needs %d entries, got %d", cc.Kind, StageCount, len(cc.StageDurations))
		}
		for i, d := range cc.StageDurations {
			if d < 0 {
				return fmt.Errorf("crop %s: stage_durations[%d] cannot be negative, got %g", cc.Kind, i, d)
			}
		}
		if cc.PlantingCost < 0 {
			return fmt.Errorf("crop %s: planting_cost cannot be negative, got %d", cc.Kind, cc.PlantingCost)
		}
		if cc.HarvestReward < 0 {
			return fmt.Errorf("crop %s: harvest_reward cannot be negative, got %d", cc.Kind, cc.HarvestReward)
		}
		if cc.MaxHP <= 0 {
			return fmt.Errorf("crop %s: max_hp must be positive, got %g", cc.Kind, cc.MaxHP)
		}
	}

	p := c.Plague
	if p.BaseDamage < 0 {
		return fmt.Errorf("plague: base_damage cannot be negative, got %g", p.BaseDamage)
	}
	if p.SpawnCooldown < 0 {
		return fmt.Errorf("plague: spawn_cooldown cannot be negative, got %g", p.SpawnCooldown)
	}
	switch p.Relocation {
	case RelocateRandom, RelocateFirst:
	default:
		return fmt.Errorf("plague: unknown relocation policy %q", p.Relocation)
	}
	if p.Cooperation.Step < 0 {
		return fmt.Errorf("plague: cooperation.step cannot be negative, got %g", p.Cooperation.Step)
	}
	if p.Cooperation.Cap < 1 {
		return fmt.Errorf("plague: cooperation.cap must be at least 1, got %g", p.Cooperation.Cap)
	}
	if p.Population.BaseCap < 0 {
		return fmt.Errorf("plague: population.base_cap cannot be negative, got %d", p.Population.BaseCap)
	}
	if p.Population.CropsPerStep <= 0 {
		return fmt.Errorf("plague: population.crops_per_step must be positive, got %d", p.Population.CropsPerStep)
	}
	if p.Population.MaxCap > 0 && p.Population.MaxCap < p.Population.BaseCap {
		return fmt.Errorf("plague: population.max_cap %d is below base_cap %d", p.Population.MaxCap, p.Population.BaseCap)
	}
	for _, k := range p.VulnerableKinds {
		if !seen[k] {
			return fmt.Errorf("plague: vulnerable kind %q is not in the crop catalog", k)
		}
	}
	if len(p.VulnerableKinds) == 0 && (p.VulnerableCount < 1 || p.VulnerableCount > len(c.Crops)) {
		return fmt.Errorf("plague: vulnerable_count must be in [1,%d], got %d", len(c.Crops), p.VulnerableCount)
	}

	return nil
}

// Clone returns a deep copy so presets can be applied without aliasing slices.
func (c FarmConfig) Clone() FarmConfig {
	out := c
	out.Crops = make([]CropConfig, len(c.Crops))
	for i, cc := range c.Crops {
		cc.StageDurations = append([]float64(nil), cc.StageDurations...)
		out.Crops[i] = cc
	}
	out.Plague.VulnerableKinds = append([]string(nil), c.Plague.VulnerableKinds...)
	return out
}
