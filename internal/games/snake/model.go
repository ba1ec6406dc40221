// Package snake holds the snake world model and its pure transition
// function. Nothing here touches timers, terminals or goroutines; the
// engine package sequences events and the platform layer draws the result.
package snake

import "fmt"

// Cell is a board coordinate. Cells compare by value.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell one move in direction d.
func (c Cell) Step(d Direction) Cell {
	switch d {
	case DirUp:
		return Cell{X: c.X, Y: c.Y - 1}
	case DirDown:
		return Cell{X: c.X, Y: c.Y + 1}
	case DirLeft:
		return Cell{X: c.X - 1, Y: c.Y}
	case DirRight:
		return Cell{X: c.X + 1, Y: c.Y}
	}
	return c
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is the snake's heading.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Status is the game's lifecycle state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is one discrete input to Transition.
type Event int

const (
	EventClockTick Event = iota
	EventToggleStatus
)

func (e Event) String() string {
	switch e {
	case EventClockTick:
		return "clock_tick"
	case EventToggleStatus:
		return "toggle_status"
	default:
		return "unknown"
	}
}

// World is an immutable snapshot of one game instant.
//
// Snake is head-first. Transition never writes to the backing array of an
// input World, so snapshots may be shared freely between goroutines as long
// as callers treat Snake as read-only.
type World struct {
	Snake  []Cell
	Apple  Cell
	Points int
	Status Status
}

// Head returns the snake's first cell. It panics with ErrMissingHead when
// the snake is empty, which means an invariant was broken upstream.
func (w World) Head() Cell {
	if len(w.Snake) == 0 {
		panic(ErrMissingHead)
	}
	return w.Snake[0]
}

// Tail returns every cell after the head. It panics with ErrMissingTail
// when the snake is empty.
func (w World) Tail() []Cell {
	if len(w.Snake) == 0 {
		panic(ErrMissingTail)
	}
	return w.Snake[1:]
}

func contains(cells []Cell, c Cell) bool {
	for _, seg := range cells {
		if seg == c {
			return true
		}
	}
	return false
}
