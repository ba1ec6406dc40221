package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2 // Status line plus separator

// RequiredSize returns the screen size needed to draw a board of boardSize.
func RequiredSize(boardSize int) (width, height int) {
	return boardSize + 2, boardSize + 2 + hudHeight
}

// Render draws w onto dst: a status line, the bordered board, the apple,
// the snake and an overlay for every status other than Playing.
func Render(w World, boardSize int, dst *core.Screen) {
	dst.Clear()

	renderHUD(w, dst)

	needW, needH := RequiredSize(boardSize)
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		return
	}

	frame := core.NewRect((dst.Width()-needW)/2, hudHeight, needW, needH-hudHeight)
	dst.DrawBox(frame, core.ColorGray)

	originX, originY := frame.X+1, frame.Y+1
	board := core.Square(boardSize)
	plot := func(c Cell, r rune, color core.Color) {
		if board.Contains(c.X, c.Y) {
			dst.SetColored(originX+c.X, originY+c.Y, r, color)
		}
	}

	plot(w.Apple, '*', core.ColorBrightRed)
	for i := len(w.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			plot(w.Snake[i], 'O', core.ColorBrightGreen)
		} else {
			plot(w.Snake[i], 'o', core.ColorGreen)
		}
	}

	switch w.Status {
	case StatusNotStarted:
		renderOverlay(dst, frame, "Snake", "Press Space to start")
	case StatusPaused:
		renderOverlay(dst, frame, "Paused", "Press Space to resume")
	case StatusGameOver:
		renderOverlay(dst, frame, "Game Over", "Space to restart")
	}
}

func renderHUD(w World, dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Points: %d  Length: %d  [%s]", w.Points, len(w.Snake), w.Status)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a boxed two-line message centered on the board frame.
func renderOverlay(dst *core.Screen, frame core.Rect, line1, line2 string) {
	boxW := core.Clamp(max(len(line1), len(line2))+4, 0, frame.W)
	boxH := 5
	box := core.NewRect(frame.X+(frame.W-boxW)/2, frame.Y+(frame.H-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)

	drawCentered(dst, box, box.Y+1, line1, core.ColorBrightWhite)
	drawCentered(dst, box, box.Y+3, line2, core.ColorDefault)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, c core.Color) {
	runes := []rune(text)
	inner := box.W - 2
	if len(runes) > inner {
		runes = runes[:max(inner, 0)]
	}
	x := box.X + 1 + (inner-len(runes))/2
	dst.DrawText(x, y, string(runes), c)
}
