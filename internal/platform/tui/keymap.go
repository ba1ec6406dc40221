package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Steer  key.Binding // Help only; never matched
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Steer, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Steer: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("←↑↓→/wasd", "steer"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to the raw key name the engine
// understands. It returns "" for unbound keys and reports quit requests.
func (k KeyMap) MapKey(msg tea.KeyMsg) (name string, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return "", true
	case key.Matches(msg, k.Up):
		return core.KeyArrowUp, false
	case key.Matches(msg, k.Down):
		return core.KeyArrowDown, false
	case key.Matches(msg, k.Left):
		return core.KeyArrowLeft, false
	case key.Matches(msg, k.Right):
		return core.KeyArrowRight, false
	case key.Matches(msg, k.Toggle):
		return core.KeySpace, false
	}
	return "", false
}
