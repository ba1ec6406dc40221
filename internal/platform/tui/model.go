package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Engine is the part of engine.Engine the front end talks to.
type Engine interface {
	SendKey(key string) bool
	Current() snake.World
	Updates() <-chan snake.World
	BoardSize() int
}

// Model is the Bubble Tea model that draws the engine's world.
type Model struct {
	engine   Engine
	world    snake.World
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	err      error
	quitting bool
}

// NewModel creates a model sized from cfg until the first resize arrives.
func NewModel(e Engine, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false
	return Model{
		engine: e,
		world:  e.Current(),
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init starts listening for committed worlds.
func (m Model) Init() tea.Cmd {
	return waitForWorld(m.engine.Updates())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		name, quit := m.keys.MapKey(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		if name != "" {
			m.engine.SendKey(name)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// Last row is reserved for the help line.
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case WorldMsg:
		m.world = snake.World(msg)
		return m, waitForWorld(m.engine.Updates())

	case engineStoppedMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the current world and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snake.Render(m.world, m.engine.BoardSize(), m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Err returns the engine error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Runner is an Engine with a blocking event loop.
type Runner interface {
	Engine
	Run(ctx context.Context) error
}

// Run drives e on its own goroutine and shows it until the user quits,
// ctx is cancelled or the engine fails.
func Run(ctx context.Context, e Runner, cfg core.RuntimeConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		NewModel(e, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	engineErr := make(chan error, 1)
	go func() {
		err := e.Run(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			p.Send(engineStoppedMsg{err: err})
		}
		engineErr <- err
	}()

	_, uiErr := p.Run()
	cancel()
	if err := <-engineErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if uiErr != nil && !errors.Is(uiErr, tea.ErrProgramKilled) {
		return uiErr
	}
	return nil
}
