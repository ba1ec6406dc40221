package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Size: 20,
		},
		Pacing: PacingConfig{
			BaseIntervalMs:             100,
			MinIntervalMs:              50,
			IntervalDecreasePerPointMs: 2,
		},
		Input: InputConfig{
			DirectionPolicy: PolicyImmediate,
		},
		Apple: AppleConfig{
			AvoidSnake: false,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
