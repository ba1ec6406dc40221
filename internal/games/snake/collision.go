package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// IsColliding reports whether the snake's head hits its own body or a wall.
func IsColliding(boardSize int, snake []Cell) bool {
	return IsSelfCollision(snake) || IsWallCollision(boardSize, snake)
}

// IsSelfCollision reports whether the head lies on any tail segment.
func IsSelfCollision(snake []Cell) bool {
	w := World{Snake: snake}
	return contains(w.Tail(), w.Head())
}

// IsWallCollision reports whether the head is outside the board.
func IsWallCollision(boardSize int, snake []Cell) bool {
	head := World{Snake: snake}.Head()
	return !core.Square(boardSize).Contains(head.X, head.Y)
}
