package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const tickToken = "tick"

var (
	flagEvents  string
	flagApples  string
	flagVerbose bool
	flagNoBoard bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Replay a scripted event sequence without a terminal",
	Long: `Feeds a comma-separated list of events through the game one at a
time and prints the world after each of them.

Events:
  tick                  - One clock tick
  space                 - Start, pause, resume or restart
  ArrowUp, ArrowDown,
  ArrowLeft, ArrowRight - Steer

Any other key is ignored. --apples pins apple positions ("x,y;x,y;...");
the last one repeats once the list is used up.

Examples:
  snake sim --events "space,tick,ArrowUp,tick"
  snake sim --events "space,tick,tick" --apples "8,10;3,3"
  snake sim --events "space,tick" --seed 42 --policy buffered`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagEvents, "events", "", "Comma-separated events (required)")
	simCmd.Flags().StringVar(&flagApples, "apples", "", "Fixed apple positions, \"x,y;x,y\"")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every engine decision to stderr")
	simCmd.Flags().BoolVar(&flagNoBoard, "no-board", false, "Skip drawing the final board")
	_ = simCmd.MarkFlagRequired("events")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(globalSettings())
	if err != nil {
		return err
	}
	steps, err := parseEvents(flagEvents)
	if err != nil {
		return err
	}

	var sp snake.Spawner
	if flagApples != "" {
		cells, parseErr := parseCells(flagApples)
		if parseErr != nil {
			return parseErr
		}
		sp = snake.NewFixedSpawner(cells...)
	} else {
		seed := core.RuntimeConfig{Seed: flagSeed}.ResolvedSeed()
		sp = spawnerFor(cfg, seed)
	}

	policy, err := engine.ParsePolicy(cfg.Input.DirectionPolicy)
	if err != nil {
		return err
	}

	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	out := cmd.OutOrStdout()
	fold := engine.NewFold(cfg.Board.Size, policy, sp)
	simulate(out, fold, steps, logger)
	if !flagNoBoard {
		drawBoard(out, fold.World(), cfg.Board.Size)
	}
	return nil
}

// parseEvents splits an event list, accepting "space" for the space key.
func parseEvents(s string) ([]string, error) {
	var steps []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		switch strings.ToLower(tok) {
		case "":
			continue
		case tickToken:
			steps = append(steps, tickToken)
		case "space":
			steps = append(steps, core.KeySpace)
		default:
			steps = append(steps, tok)
		}
	}
	if len(steps) == 0 {
		return nil, errors.New("no events given")
	}
	return steps, nil
}

// parseCells reads "x,y;x,y" into cells.
func parseCells(s string) ([]snake.Cell, error) {
	var cells []snake.Cell
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("apple %q: want x,y", pair)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("apple %q: %w", pair, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("apple %q: %w", pair, err)
		}
		cells = append(cells, snake.Cell{X: x, Y: y})
	}
	return cells, nil
}

// simulate applies each step to f and prints the world that follows it.
func simulate(w io.Writer, f *engine.Fold, steps []string, logger *log.Logger) {
	fmt.Fprintf(w, "%4s  %-10s  %s\n", "step", "event", describe(f))
	for i, step := range steps {
		before := f.World()
		if step == tickToken {
			f.Tick()
		} else {
			a := core.ActionForKey(step)
			if a == core.ActionNone {
				logger.Warn("ignoring unknown key", "key", step)
				continue
			}
			if !f.Handle(a) {
				logger.Debug("action ignored", "action", a, "status", before.Status)
			}
		}
		after := f.World()
		if after.Status == snake.StatusGameOver && before.Status != snake.StatusGameOver {
			logger.Info("game over", "step", i+1, "points", after.Points)
		}
		fmt.Fprintf(w, "%4d  %-10s  %s\n", i+1, eventLabel(step), describe(f))
	}
}

func eventLabel(step string) string {
	if step == core.KeySpace {
		return "space"
	}
	return step
}

func describe(f *engine.Fold) string {
	w := f.World()
	return fmt.Sprintf("status=%s points=%d length=%d head=%s apple=%s dir=%s",
		w.Status, w.Points, len(w.Snake), w.Head(), w.Apple, f.Direction())
}

func drawBoard(w io.Writer, world snake.World, boardSize int) {
	screen := core.NewScreen(snake.RequiredSize(boardSize))
	snake.Render(world, boardSize, screen)
	fmt.Fprintln(w, screen.String())
}
