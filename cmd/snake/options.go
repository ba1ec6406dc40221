package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// settings are the global flags that shape the effective configuration.
type settings struct {
	configPath string
	difficulty string
	boardSize  int
	policy     string
}

func globalSettings() settings {
	return settings{
		configPath: flagConfig,
		difficulty: flagDifficulty,
		boardSize:  flagBoardSize,
		policy:     flagPolicy,
	}
}

// effectiveConfig loads the config file, then applies the difficulty
// preset and flag overrides, in that order.
func effectiveConfig(s settings) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(s.configPath)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplySnakePreset(&cfg, config.DifficultyPreset(s.difficulty)); err != nil {
		return cfg, err
	}
	if s.boardSize != 0 {
		cfg.Board.Size = s.boardSize
	}
	if s.policy != "" {
		cfg.Input.DirectionPolicy = s.policy
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func pacingFor(cfg config.SnakeConfig) snake.Pacing {
	return snake.Pacing{
		Base:             cfg.Pacing.Base(),
		Min:              cfg.Pacing.Min(),
		DecreasePerPoint: cfg.Pacing.DecreasePerPoint(),
	}
}

func spawnerFor(cfg config.SnakeConfig, seed int64) snake.Spawner {
	rng := rand.New(rand.NewSource(seed))
	if cfg.Apple.AvoidSnake {
		return snake.FreeCellSpawner{Rng: rng}
	}
	return snake.UniformSpawner{Rng: rng}
}

func engineOptions(cfg config.SnakeConfig, sp snake.Spawner, logger *log.Logger, m *engine.Metrics) (engine.Options, error) {
	policy, err := engine.ParsePolicy(cfg.Input.DirectionPolicy)
	if err != nil {
		return engine.Options{}, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	return engine.Options{
		BoardSize: cfg.Board.Size,
		Pacing:    pacingFor(cfg),
		Policy:    policy,
		Spawner:   sp,
		Logger:    logger,
		Metrics:   m,
	}, nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
}
