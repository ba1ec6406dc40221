package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderPlaying(t *testing.T) {
	w := World{
		Snake:  InitialSnake(),
		Apple:  Cell{X: 2, Y: 3},
		Points: 7,
		Status: StatusPlaying,
	}
	width, height := RequiredSize(20)
	s := core.NewScreen(width, height)

	Render(w, 20, s)

	if !strings.Contains(s.Row(0), "Points: 7") {
		t.Errorf("HUD missing points: %q", s.Row(0))
	}

	// Board origin is (1, 3): border column plus the HUD rows and top border.
	if got := s.GetCell(1+9, 3+10); got.Rune != 'O' || got.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected bright green O", got)
	}
	if got := s.Get(1+13, 3+10); got != 'o' {
		t.Errorf("tail cell = %q, expected o", got)
	}
	if got := s.GetCell(1+2, 3+3); got.Rune != '*' || got.Color != core.ColorBrightRed {
		t.Errorf("apple cell = %+v, expected red *", got)
	}
	if s.Get(0, 2) != '┌' || s.Get(width-1, height-1) != '┘' {
		t.Error("board border missing")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		status Status
		text   string
	}{
		{StatusNotStarted, "Press Space to start"},
		{StatusPaused, "Paused"},
		{StatusGameOver, "Game Over"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			w := World{Snake: InitialSnake(), Apple: Cell{1, 1}, Status: tt.status}
			width, height := RequiredSize(20)
			s := core.NewScreen(width, height)

			Render(w, 20, s)

			if !strings.Contains(s.String(), tt.text) {
				t.Errorf("expected overlay %q in:\n%s", tt.text, s.String())
			}
		})
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := core.NewScreen(30, 10)
	Render(World{Snake: InitialSnake(), Status: StatusPlaying}, 20, s)

	if !strings.Contains(s.String(), "Window too small") {
		t.Error("expected too-small notice")
	}
}

func TestRenderOverlayFitsNarrowBoard(t *testing.T) {
	w := World{Snake: InitialSnake(), Apple: Cell{X: 0, Y: 0}, Status: StatusPaused}
	width, height := RequiredSize(MinBoardSize)
	s := core.NewScreen(width, height)

	Render(w, MinBoardSize, s)

	// The message box is as wide as the board frame, never wider.
	top := "┌" + strings.Repeat("─", width-2) + "┐"
	if got := s.Row(7); got != top {
		t.Errorf("overlay top = %q, expected %q", got, top)
	}
	if got := s.Row(10); []rune(got)[0] != '│' || []rune(got)[width-1] != '│' {
		t.Errorf("overlay text row not boxed: %q", got)
	}
}
