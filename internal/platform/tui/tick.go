// Package tui provides the Bubble Tea front end for the snake engine.
// It forwards key presses to the engine and redraws on every committed world.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// WorldMsg carries a world committed by the engine.
type WorldMsg snake.World

// engineStoppedMsg is sent when the engine loop exits with an error.
type engineStoppedMsg struct {
	err error
}

// waitForWorld blocks until the engine publishes the next world.
func waitForWorld(updates <-chan snake.World) tea.Cmd {
	return func() tea.Msg {
		w, ok := <-updates
		if !ok {
			return nil
		}
		return WorldMsg(w)
	}
}
