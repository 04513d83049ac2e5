package config

import (
	_ "embed"
)

// Variant identifiers. Each has its own embedded default YAML.
const (
	VariantFarm    = "farm"
	VariantClassic = "farm_classic"
)

//go:embed defaults/farm.yaml
var defaultFarmYAML []byte

//go:embed defaults/farm_classic.yaml
var defaultClassicYAML []byte

// DefaultFarmConfig returns the reference configuration.
func DefaultFarmConfig() FarmConfig {
	return FarmConfig{
		Grid: GridConfig{Rows: 5, Cols: 5},
		Economy: EconomyConfig{
			StartingMoney: 250,
			PesticideCost: 30,
		},
		Crops: []CropConfig{
			{
				Kind:           "carrot",
				Name:           "Carrot",
				StageDurations: []float64{5, 5, 5},
				PlantingCost:   20,
				HarvestReward:  35,
				MaxHP:          100,
			},
			{
				Kind:           "potato",
				Name:           "Potato",
				StageDurations: []float64{6, 6, 6},
				PlantingCost:   25,
				HarvestReward:  45,
				MaxHP:          100,
			},
		},
		Plague: PlagueConfig{
			BaseDamage:      20,
			SpawnCooldown:   5.0,
			Relocation:      RelocateRandom,
			VulnerableCount: 1,
			Cooperation: CooperationConfig{
				Step: 0.5,
				Cap:  3.0,
			},
			Population: PopulationConfig{
				BaseCap:      2,
				CropsPerStep: 2,
				MaxCap:       10,
			},
		},
	}
}

// DefaultClassicConfig returns the classic balance: 0.25 per neighbour up to
// 2x, one starting pest and an unbounded population.
func DefaultClassicConfig() FarmConfig {
	return FarmConfig{
		Grid: GridConfig{Rows: 5, Cols: 5},
		Economy: EconomyConfig{
			StartingMoney: 100,
			PesticideCost: 40,
		},
		Crops: []CropConfig{
			{
				Kind:           "carrot",
				Name:           "Carrot",
				StageDurations: []float64{3, 5, 7},
				PlantingCost:   10,
				HarvestReward:  25,
				MaxHP:          100,
			},
			{
				Kind:           "potato",
				Name:           "Potato",
				StageDurations: []float64{5, 5, 5},
				PlantingCost:   15,
				HarvestReward:  35,
				MaxHP:          100,
			},
		},
		Plague: PlagueConfig{
			BaseDamage:      10,
			SpawnCooldown:   5.0,
			Relocation:      RelocateRandom,
			VulnerableCount: 1,
			VulnerableKinds: []string{"carrot"},
			Cooperation: CooperationConfig{
				Step: 0.25,
				Cap:  2.0,
			},
			Population: PopulationConfig{
				BaseCap:      1,
				CropsPerStep: 2,
				MaxCap:       0,
			},
		},
	}
}

// DefaultFor returns the hardcoded default for a variant.
// Unknown variants get the reference configuration.
func DefaultFor(variant string) FarmConfig {
	if variant == VariantClassic {
		return DefaultClassicConfig()
	}
	return DefaultFarmConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantFarm:
		return defaultFarmYAML
	case VariantClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}
