package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagLogFile string
	flagStats   bool
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Steer
  Space        - Start, pause, resume, restart after game over
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Config pacing (100ms, -2ms per point, floor 50ms)
  hard   - Fast start, steep speed-up
  fixed  - No speed-up

Examples:
  snake play
  snake play --difficulty hard
  snake play --policy buffered --log-file /tmp/snake.log
  snake play --stats`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log at debug level")
	playCmd.Flags().BoolVar(&flagStats, "stats", false, "Print session statistics on exit")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(globalSettings())
	if err != nil {
		return err
	}

	rcfg, err := terminalConfig(cfg, os.Stdout)
	if err != nil {
		return err
	}

	logOut := io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := newLogger(logOut, level)

	reg := prometheus.NewRegistry()
	metrics, err := engine.NewMetrics(reg)
	if err != nil {
		return err
	}

	opts, err := engineOptions(cfg, spawnerFor(cfg, rcfg.ResolvedSeed()), logger, metrics)
	if err != nil {
		return err
	}
	eng, err := engine.New(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := tui.Run(ctx, eng, rcfg)

	if flagStats {
		if err := metrics.WriteSummary(os.Stdout); err != nil {
			logger.Warn("could not write statistics", "error", err)
		}
	}
	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// terminalConfig checks that out is a terminal large enough for the
// configured board plus the help line.
func terminalConfig(cfg config.SnakeConfig, out *os.File) (core.RuntimeConfig, error) {
	fd := int(out.Fd())
	if !term.IsTerminal(fd) {
		return core.RuntimeConfig{}, errors.New("play needs an interactive terminal; try 'snake sim'")
	}
	rcfg := core.DefaultConfig()
	rcfg.Seed = flagSeed
	if w, h, err := term.GetSize(fd); err == nil {
		rcfg.ScreenW, rcfg.ScreenH = w, h
	}
	width, height := rcfg.ScreenW, rcfg.ScreenH
	needW, needH := snake.RequiredSize(cfg.Board.Size)
	needH++ // Help line
	if width < needW || height < needH {
		return core.RuntimeConfig{}, fmt.Errorf("terminal is %dx%d, board size %d needs at least %dx%d",
			width, height, cfg.Board.Size, needW, needH)
	}
	return rcfg, nil
}
