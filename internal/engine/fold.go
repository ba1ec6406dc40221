// Package engine turns asynchronous input and timer ticks into a strictly
// ordered event sequence and folds it through snake.Transition.
package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Policy decides how direction keys pressed between ticks are applied.
type Policy int

const (
	// PolicyImmediate accepts every key that does not reverse the latest
	// accepted direction, so the newest accepted key steers the next tick.
	PolicyImmediate Policy = iota
	// PolicyBuffered checks keys against the direction the snake actually
	// moved on its last tick and lets the last valid key win. At most one
	// turn takes effect per tick.
	PolicyBuffered
)

// ParsePolicy maps a config name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "immediate":
		return PolicyImmediate, nil
	case "buffered":
		return PolicyBuffered, nil
	}
	return PolicyImmediate, fmt.Errorf("engine: unknown direction policy %q", name)
}

func (p Policy) String() string {
	if p == PolicyBuffered {
		return "buffered"
	}
	return "immediate"
}

// Fold is the single-consumer reducer behind the engine. It owns the
// current World and the committed direction and applies one event at a
// time. It is not safe for concurrent use and never starts goroutines or
// timers, so it can be driven directly by tests and scripted simulations.
type Fold struct {
	boardSize int
	policy    Policy
	spawner   snake.Spawner

	world     snake.World
	heading   snake.Direction // Direction of the most recent tick
	committed snake.Direction // Direction the next tick will use
}

// NewFold creates a fold positioned at a fresh NotStarted world.
func NewFold(boardSize int, policy Policy, sp snake.Spawner) *Fold {
	f := &Fold{
		boardSize: boardSize,
		policy:    policy,
		spawner:   sp,
	}
	f.reset()
	return f
}

func (f *Fold) reset() {
	f.world = snake.NewWorld(f.boardSize, f.spawner)
	f.heading = snake.InitialDirection
	f.committed = snake.InitialDirection
}

// World returns the latest committed world.
func (f *Fold) World() snake.World {
	return f.world
}

// Direction returns the direction the next tick will move in.
func (f *Fold) Direction() snake.Direction {
	return f.committed
}

// Over reports whether the current run has ended.
func (f *Fold) Over() bool {
	return f.world.Status == snake.StatusGameOver
}

// Handle dispatches an input action and reports whether it was accepted.
func (f *Fold) Handle(a core.Action) bool {
	if a == core.ActionToggle {
		f.Toggle()
		return true
	}
	if d, ok := directionFor(a); ok {
		return f.Steer(d)
	}
	return false
}

// Steer proposes a new direction. Proposals are accepted only while
// Playing, and a proposal that reverses the reference direction is
// silently dropped.
func (f *Fold) Steer(d snake.Direction) bool {
	if f.world.Status != snake.StatusPlaying {
		return false
	}
	ref := f.committed
	if f.policy == PolicyBuffered {
		ref = f.heading
	}
	if d == ref.Opposite() {
		return false
	}
	f.committed = d
	return true
}

// Toggle applies the start/pause/resume table. Toggling after GameOver
// restarts from a freshly initialized world and reports true.
func (f *Fold) Toggle() (restarted bool) {
	if f.Over() {
		f.reset()
		restarted = true
	}
	f.world = snake.Transition(f.boardSize, f.committed, snake.EventToggleStatus, f.world, f.spawner)
	return restarted
}

// Tick advances the world by one clock tick in the committed direction.
func (f *Fold) Tick() {
	if f.world.Status != snake.StatusPlaying {
		return
	}
	f.world = snake.Transition(f.boardSize, f.committed, snake.EventClockTick, f.world, f.spawner)
	f.heading = f.committed
}

func directionFor(a core.Action) (snake.Direction, bool) {
	switch a {
	case core.ActionUp:
		return snake.DirUp, true
	case core.ActionDown:
		return snake.DirDown, true
	case core.ActionLeft:
		return snake.DirLeft, true
	case core.ActionRight:
		return snake.DirRight, true
	}
	return 0, false
}
