package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFarm loads the configuration for a farm variant.
// Search order: customPath -> ~/.farm/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
func LoadFarm(variant, customPath string) (FarmConfig, error) {
	filename := variant + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FarmConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FarmConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(variant); data != nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}
	return DefaultFor(variant), nil // Fallback to hardcoded if embed fails
}

// Parse decodes YAML on top of zero values and validates the result.
// Missing optional fields get the reference defaults.
func Parse(data []byte) (FarmConfig, error) {
	var cfg FarmConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FarmConfig{}, err
	}
	applyFallbacks(&cfg)
	if err := cfg.Validate(); err != nil {
		return FarmConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg FarmConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// applyFallbacks fills fields that are commonly omitted in hand-written files.
func applyFallbacks(cfg *FarmConfig) {
	for i := range cfg.Crops {
		if cfg.Crops[i].MaxHP == 0 {
			cfg.Crops[i].MaxHP = 100
		}
		if cfg.Crops[i].Name == "" {
			cfg.Crops[i].Name = cfg.Crops[i].Kind
		}
	}
	if cfg.Plague.Relocation == "" {
		cfg.Plague.Relocation = RelocateRandom
	}
	if cfg.Plague.VulnerableCount == 0 && len(cfg.Plague.VulnerableKinds) == 0 {
		cfg.Plague.VulnerableCount = 1
	}
	if cfg.Plague.Cooperation.Cap == 0 {
		cfg.Plague.Cooperation.Cap = 1
	}
	if cfg.Plague.Population.CropsPerStep == 0 {
		cfg.Plague.Population.CropsPerStep = 2
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".farm", "configs", filename)
}
