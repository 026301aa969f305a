package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
// Presets only change how many atoms a random layout hides.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// Presets lists the presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert}

// AtomsForPreset returns the random-layout atom count for a preset.
// Unknown presets play as normal.
func AtomsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyHard:
		return 5
	case DifficultyExpert:
		return 6
	default:
		return 4
	}
}

// ParsePreset parses a preset name, case-insensitively.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or expert)", s)
}

// ApplyPreset switches the config to a preset. An explicit atom count
// is dropped so the preset takes effect.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Game.Difficulty = preset
	cfg.Game.RandomAtoms = 0
}
