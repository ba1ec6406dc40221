// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Direction policies accepted by input.direction_policy.
const (
	PolicyImmediate = "immediate"
	PolicyBuffered  = "buffered"
)

// SnakeConfig contains every tunable of the game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Pacing PacingConfig `yaml:"pacing"`
	Input  InputConfig  `yaml:"input"`
	Apple  AppleConfig  `yaml:"apple"`
}

// BoardConfig defines the square grid.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// PacingConfig defines how the clock speeds up with the score.
type PacingConfig struct {
	BaseIntervalMs             int `yaml:"base_interval_ms"`
	MinIntervalMs              int `yaml:"min_interval_ms"`
	IntervalDecreasePerPointMs int `yaml:"interval_decrease_per_point_ms"`
}

// InputConfig defines how direction keys are applied.
type InputConfig struct {
	DirectionPolicy string `yaml:"direction_policy"` // "immediate" or "buffered"
}

// AppleConfig defines apple placement.
type AppleConfig struct {
	AvoidSnake bool `yaml:"avoid_snake"` // Never spawn on the snake
}

// Base returns the interval at zero points.
func (p PacingConfig) Base() time.Duration {
	return time.Duration(p.BaseIntervalMs) * time.Millisecond
}

// Min returns the interval floor.
func (p PacingConfig) Min() time.Duration {
	return time.Duration(p.MinIntervalMs) * time.Millisecond
}

// DecreasePerPoint returns the reduction applied per point.
func (p PacingConfig) DecreasePerPoint() time.Duration {
	return time.Duration(p.IntervalDecreasePerPointMs) * time.Millisecond
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Board.Size < snake.MinBoardSize {
		return fmt.Errorf("%w: board size %d is smaller than %d", ErrInvalidConfig, c.Board.Size, snake.MinBoardSize)
	}
	p := c.Pacing
	if p.MinIntervalMs <= 0 {
		return fmt.Errorf("%w: min_interval_ms must be positive, got %d", ErrInvalidConfig, p.MinIntervalMs)
	}
	if p.BaseIntervalMs < p.MinIntervalMs {
		return fmt.Errorf("%w: base_interval_ms %d is below min_interval_ms %d", ErrInvalidConfig, p.BaseIntervalMs, p.MinIntervalMs)
	}
	if p.IntervalDecreasePerPointMs < 0 {
		return fmt.Errorf("%w: interval_decrease_per_point_ms must not be negative", ErrInvalidConfig)
	}
	switch c.Input.DirectionPolicy {
	case PolicyImmediate, PolicyBuffered:
	default:
		return fmt.Errorf("%w: unknown direction_policy %q", ErrInvalidConfig, c.Input.DirectionPolicy)
	}
	return nil
}
