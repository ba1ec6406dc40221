package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ApplySnakePreset adjusts pacing for a preset. An empty preset leaves the
// config untouched; normal keeps the loaded pacing; fixed disables the speed-up.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	switch preset {
	case "", DifficultyNormal:
	case DifficultyEasy:
		cfg.Pacing.BaseIntervalMs = 150
		cfg.Pacing.MinIntervalMs = 80
		cfg.Pacing.IntervalDecreasePerPointMs = 1
	case DifficultyHard:
		cfg.Pacing.BaseIntervalMs = 70
		cfg.Pacing.MinIntervalMs = 35
		cfg.Pacing.IntervalDecreasePerPointMs = 3
	case DifficultyFixed:
		cfg.Pacing.IntervalDecreasePerPointMs = 0
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, preset)
	}
	return nil
}
