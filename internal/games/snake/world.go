package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// InitialDirection is the heading a fresh run starts with.
const InitialDirection = DirLeft

// MinBoardSize is the smallest board that holds the starting snake.
const MinBoardSize = 14

// InitialSnake returns a fresh copy of the starting snake, head first.
func InitialSnake() []Cell {
	return []Cell{
		{X: 9, Y: 10},
		{X: 10, Y: 10},
		{X: 11, Y: 10},
		{X: 12, Y: 10},
		{X: 13, Y: 10},
	}
}

// NewWorld builds the world a run starts from: the starting snake, an apple
// placed by sp, zero points and status NotStarted.
func NewWorld(boardSize int, sp Spawner) World {
	body := InitialSnake()
	return World{
		Snake:  body,
		Apple:  sp.Spawn(boardSize, body),
		Points: 0,
		Status: StatusNotStarted,
	}
}

// Rand is the subset of *math/rand.Rand the spawners need.
type Rand interface {
	Intn(n int) int
}

// Spawner chooses where a new apple appears.
type Spawner interface {
	Spawn(boardSize int, snake []Cell) Cell
}

// UniformSpawner places apples uniformly over the whole board. The apple
// may land on the snake.
type UniformSpawner struct {
	Rng Rand
}

// Spawn implements Spawner.
func (s UniformSpawner) Spawn(boardSize int, _ []Cell) Cell {
	return Cell{X: s.Rng.Intn(boardSize), Y: s.Rng.Intn(boardSize)}
}

// FreeCellSpawner places apples uniformly over the cells the snake does not
// occupy, and falls back to uniform placement when none is free.
type FreeCellSpawner struct {
	Rng Rand
}

// Spawn implements Spawner.
func (s FreeCellSpawner) Spawn(boardSize int, snake []Cell) Cell {
	occupied := make(map[Cell]bool, len(snake))
	for _, seg := range snake {
		occupied[seg] = true
	}

	board := core.Square(boardSize)
	free := make([]Cell, 0, board.Area())
	for y := range boardSize {
		for x := range boardSize {
			c := Cell{X: x, Y: y}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return UniformSpawner(s).Spawn(boardSize, snake)
	}
	return free[s.Rng.Intn(len(free))]
}

// FixedSpawner replays a fixed sequence of apple positions, repeating the
// last one when exhausted. Used by tests and scripted simulations.
type FixedSpawner struct {
	cells []Cell
	next  int
}

// NewFixedSpawner creates a spawner that returns cells in order.
func NewFixedSpawner(cells ...Cell) *FixedSpawner {
	return &FixedSpawner{cells: cells}
}

// Spawn implements Spawner.
func (s *FixedSpawner) Spawn(_ int, _ []Cell) Cell {
	if len(s.cells) == 0 {
		return Cell{}
	}
	c := s.cells[min(s.next, len(s.cells)-1)]
	s.next++
	return c
}
