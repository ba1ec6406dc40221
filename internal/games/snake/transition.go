package snake

import "errors"

// Invariant violations. Transition panics with these; they never describe a
// recoverable condition.
var (
	ErrMissingHead = errors.New("snake: snake has no head")
	ErrMissingTail = errors.New("snake: snake has no tail")
)

// Transition computes the world that follows w after ev, with the snake
// heading in dir. The input world is never modified. sp is consulted only
// when an apple is eaten.
//
// A tick that would move the head into a wall or the body ends the game
// without committing the move: the returned world keeps w's snake, apple
// and points and only flips Status to GameOver.
func Transition(boardSize int, dir Direction, ev Event, w World, sp Spawner) World {
	switch ev {
	case EventClockTick:
		if w.Status != StatusPlaying {
			return w
		}
		return tick(boardSize, dir, w, sp)
	case EventToggleStatus:
		w.Status = NextStatus(w.Status)
		return w
	}
	return w
}

func tick(boardSize int, dir Direction, w World, sp Spawner) World {
	nextHead := w.Head().Step(dir)
	ate := nextHead == w.Apple

	kept := w.Snake
	if !ate {
		kept = kept[:len(kept)-1]
	}
	nextSnake := make([]Cell, 0, len(kept)+1)
	nextSnake = append(nextSnake, nextHead)
	nextSnake = append(nextSnake, kept...)

	if IsColliding(boardSize, nextSnake) {
		w.Status = StatusGameOver
		return w
	}

	next := World{
		Snake:  nextSnake,
		Apple:  w.Apple,
		Points: w.Points,
		Status: w.Status,
	}
	if ate {
		next.Apple = sp.Spawn(boardSize, nextSnake)
		next.Points++
	}
	return next
}

// NextStatus applies the toggle table. GameOver goes to Playing; callers
// that restart are responsible for resetting the rest of the world first.
func NextStatus(s Status) Status {
	switch s {
	case StatusNotStarted, StatusPaused, StatusGameOver:
		return StatusPlaying
	case StatusPlaying:
		return StatusPaused
	}
	return s
}
