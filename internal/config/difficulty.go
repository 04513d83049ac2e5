package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScale holds the multipliers a preset applies on top of a variant.
type presetScale struct {
	money    float64 // starting money
	cooldown float64 // spawn cooldown
	damage   float64 // base damage per second
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {money: 1.5, cooldown: 1.5, damage: 0.75},
	DifficultyNormal: {money: 1.0, cooldown: 1.0, damage: 1.0},
	DifficultyHard:   {money: 0.75, cooldown: 0.6, damage: 1.5},
}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(s)
	if _, ok := presetScales[p]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", s)
	}
	return p, nil
}

// Presets lists the known presets in increasing difficulty.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ApplyFarmPreset returns a copy of cfg scaled by the preset.
// Unknown presets leave the values untouched.
func ApplyFarmPreset(cfg FarmConfig, preset DifficultyPreset) FarmConfig {
	out := cfg.Clone()
	scale, ok := presetScales[preset]
	if !ok {
		return out
	}
	out.Difficulty = string(preset)
	out.Economy.StartingMoney = int(math.Round(float64(cfg.Economy.StartingMoney) * scale.money))
	out.Plague.SpawnCooldown = cfg.Plague.SpawnCooldown * scale.cooldown
	out.Plague.BaseDamage = cfg.Plague.BaseDamage * scale.damage
	return out
}
